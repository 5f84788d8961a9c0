package rexspan

import (
	"fmt"
	"unicode/utf8"
)

// Capture runs one unanchored match of the pattern against input[offset:]
// and returns the span of every group, NumGroups spans in declaration order
// with the synthetic whole-match group first.
//
// Spans are offsets into input, not into the window starting at offset.
// Groups that did not participate are Unmatched; if the pattern does not
// match at all every span is Unmatched. An offset at or past the end of
// input returns an empty slice without running the engine.
//
// Offsets count bytes. An offset that lands inside a valid multibyte UTF-8
// sequence fails with ErrInvalidOffset.
//
// Example:
//
//	p := rexspan.MustCompile(`(a)(b)`)
//	spans, _ := p.Capture("xab", 1)
//	// spans = [{1,3} {1,2} {2,3}]
func (p *Pattern) Capture(input string, offset int) ([]Span, error) {
	progs, err := p.load()
	if err != nil {
		return nil, err
	}
	if err := checkOffset(input, offset); err != nil {
		return nil, err
	}
	if offset >= len(input) {
		return []Span{}, nil
	}

	spans, _ := p.capture(progs, input, offset)
	if p.collapse {
		for i, s := range spans {
			if s.Begin == s.End {
				spans[i] = Unmatched
			}
		}
	}
	return spans, nil
}

// CaptureAt is Capture with offset 0.
func (p *Pattern) CaptureAt(input string) ([]Span, error) {
	return p.Capture(input, 0)
}

// checkOffset rejects negative offsets and offsets that split a valid
// UTF-8 sequence. Bytes of invalid sequences are each their own position.
func checkOffset(input string, offset int) error {
	if offset < 0 {
		return ErrInvalidOffset
	}
	if offset == 0 || offset >= len(input) || utf8.RuneStart(input[offset]) {
		return nil
	}
	for start := offset - 1; start >= 0 && offset-start < utf8.UTFMax; start-- {
		if !utf8.RuneStart(input[start]) {
			continue
		}
		if _, size := utf8.DecodeRuneInString(input[start:]); size > 1 && start+size > offset {
			return fmt.Errorf("%w: %d is inside the UTF-8 sequence at %d", ErrInvalidOffset, offset, start)
		}
		break
	}
	return nil
}

// capture fills one slot per group from a single engine call and reports
// whether the pattern matched. The caller has checked the offset.
func (p *Pattern) capture(progs *programs, input string, offset int) ([]Span, bool) {
	spans := make([]Span, p.groups)
	for i := range spans {
		spans[i] = Unmatched
	}

	// The window shares the backing array of input, so engine indices
	// translate back by adding the window start.
	window := input[offset:]
	idx := progs.partial.FindStringSubmatchIndex(window)
	if idx == nil {
		return spans, false
	}

	// idx[0:2] is the engine's whole match; our group i is engine group i+1.
	for i := range spans {
		lo := 2 * (i + 1)
		if lo+1 >= len(idx) || idx[lo] < 0 || idx[lo+1] < 0 {
			continue
		}
		spans[i] = Span{Begin: offset + idx[lo], End: offset + idx[lo+1]}
	}
	return spans, true
}
