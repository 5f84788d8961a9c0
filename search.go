package rexspan

// Search runs the same match as Capture and returns one span chosen from
// the groups: the group whose begin is strictly greater than every earlier
// candidate, starting from group 0 with a begin of 0. In effect the
// rightmost-starting group wins, ties go to the lower index, and group 0 is
// returned when no group starts after position 0.
//
// ok is false when the pattern does not match or offset is at or past the
// end of input. Offsets are validated as in Capture.
//
// Example:
//
//	p := rexspan.MustCompile(`(a)x(bc)`)
//	span, ok, _ := p.Search("axbc", 0)
//	// span = {2,4}, ok = true
func (p *Pattern) Search(input string, offset int) (span Span, ok bool, err error) {
	progs, err := p.load()
	if err != nil {
		return Unmatched, false, err
	}
	if err := checkOffset(input, offset); err != nil {
		return Unmatched, false, err
	}
	if offset >= len(input) {
		return Unmatched, false, nil
	}

	spans, matched := p.capture(progs, input, offset)
	if !matched {
		return Unmatched, false, nil
	}
	return spans[selectRightmost(spans)], true, nil
}

// selectRightmost returns the index of the chosen span. The initial best
// begin is 0, not group 0's begin, so a later group starting at 0 never
// displaces group 0.
func selectRightmost(spans []Span) int {
	best, bestBegin := 0, 0
	for i, s := range spans {
		if s.Begin > bestBegin {
			best, bestBegin = i, s.Begin
		}
	}
	return best
}
