package rexspan

import (
	"testing"
)

// \b sees only the window that starts at the offset: the byte before the
// offset is treated as the start of text.
func TestWordBoundaryAtOffset(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		offset  int
		want    Span // group 0
	}{
		{"word_start_match", `\bword`, "hello word", 0, Span{6, 10}},
		{"word_start_no_match_inside", `\bword`, "sword", 0, Unmatched},
		{"word_start_inside_at_offset", `\bword`, "sword", 1, Span{1, 5}},
		{"word_end_match", `word\b`, "word!", 0, Span{0, 4}},
		{"word_end_no_match_inside", `word\b`, "words", 0, Unmatched},
		{"whole_word_after_offset", `\bword\b`, "a word here", 1, Span{2, 6}},
		{"whole_word_embedded", `\bword\b`, "swords", 0, Unmatched},
		{"underscore_is_word_char", `\b_test\b`, "a _test here", 0, Span{2, 7}},
		{"digit_is_word_char", `\btest123\b`, "x test123 y", 2, Span{2, 9}},
		{"second_occurrence", `\bthe\b`, "the cat and the dog", 1, Span{12, 15}},
		{"non_word_boundary", `\Bor`, "or word", 0, Span{4, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compileAll(t, tt.pattern, func(t *testing.T, p *Pattern) {
				got, err := p.Capture(tt.input, tt.offset)
				if err != nil {
					t.Fatalf("Capture error: %v", err)
				}
				if got[0] != tt.want {
					t.Errorf("Capture(%q, %d)[0] = %v, want %v", tt.input, tt.offset, got[0], tt.want)
				}
			})
		})
	}
}
