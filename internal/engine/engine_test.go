package engine

import (
	"reflect"
	"testing"
)

func TestParseBackend(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Backend
		wantErr bool
	}{
		{"empty selects default", "", Default, false},
		{"coregex", "coregex", Coregex, false},
		{"re2 upper case", "RE2", RE2, false},
		{"std with spaces", "  std ", Std, false},
		{"unknown", "pcre", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBackend(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBackend(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseBackend(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBackendValid(t *testing.T) {
	for _, b := range Backends() {
		if !b.Valid() {
			t.Errorf("%q.Valid() = false", b)
		}
	}
	if Backend("onig").Valid() {
		t.Error(`"onig".Valid() = true`)
	}
}

func TestCompileUnknownBackend(t *testing.T) {
	if _, err := Compile(Backend("onig"), "a"); err == nil {
		t.Fatal("Compile with unknown backend succeeded")
	}
}

// TestBackendsAgree checks every backend against the same submatch layout.
func TestBackendsAgree(t *testing.T) {
	tests := []struct {
		expr    string
		input   string
		groups  int
		matched bool
		want    []int
	}{
		{`((a)(b))`, "ab", 3, true, []int{0, 2, 0, 2, 0, 1, 1, 2}},
		{`((a)(b))`, "xab", 3, true, []int{1, 3, 1, 3, 1, 2, 2, 3}},
		{`((a)(b))`, "xy", 3, false, nil},
		{`(x(\d+)|y(\w+))`, "x42", 3, true, []int{0, 3, 0, 3, 1, 3, -1, -1}},
		{`(\d+)`, "abc 123 def", 1, true, []int{4, 7, 4, 7}},
		{`(foo)`, "", 1, false, nil},
		{`(((a)|b)+)`, "abcd", 3, true, []int{0, 2, 0, 2, 1, 2, 0, 1}},
		{`(((a)|b)+)`, "bbc", 3, true, []int{0, 2, 0, 2, 1, 2, -1, -1}},
		{`((foo|foobar))`, "foobar", 2, true, []int{0, 3, 0, 3, 0, 3}},
		{`((.*?)(b))`, "abcd", 3, true, []int{0, 2, 0, 2, 0, 1, 1, 2}},
		{`((.))`, "é", 2, true, []int{0, 2, 0, 2, 0, 2}},
	}

	for _, b := range Backends() {
		for _, tt := range tests {
			t.Run(string(b)+"/"+tt.expr+"/"+tt.input, func(t *testing.T) {
				p, err := Compile(b, tt.expr)
				if err != nil {
					t.Fatalf("Compile(%q) error: %v", tt.expr, err)
				}
				if got := p.NumGroups(); got != tt.groups {
					t.Errorf("NumGroups() = %d, want %d", got, tt.groups)
				}
				if got := p.MatchString(tt.input); got != tt.matched {
					t.Errorf("MatchString(%q) = %v, want %v", tt.input, got, tt.matched)
				}
				if got := p.FindStringSubmatchIndex(tt.input); !reflect.DeepEqual(got, tt.want) {
					t.Errorf("FindStringSubmatchIndex(%q) = %v, want %v", tt.input, got, tt.want)
				}
			})
		}
	}
}

func TestCompileInvalid(t *testing.T) {
	for _, b := range Backends() {
		t.Run(string(b), func(t *testing.T) {
			if _, err := Compile(b, "(abc"); err == nil {
				t.Errorf("Compile(%q) with %s succeeded, want error", "(abc", b)
			}
		})
	}
}
