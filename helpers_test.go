package rexspan

import "testing"

// compileAll compiles expr with every backend and runs fn for each.
func compileAll(t *testing.T, expr string, fn func(t *testing.T, p *Pattern)) {
	t.Helper()
	for _, backend := range Backends() {
		t.Run(backend, func(t *testing.T) {
			config := DefaultConfig()
			config.Backend = backend
			p, err := CompileWithConfig(expr, config)
			if err != nil {
				t.Fatalf("CompileWithConfig(%q, %s) error: %v", expr, backend, err)
			}
			defer p.Close()
			fn(t, p)
		})
	}
}

// spans builds a span slice from begin/end pairs.
func spans(pairs ...int) []Span {
	out := make([]Span, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Span{Begin: pairs[i], End: pairs[i+1]})
	}
	return out
}
