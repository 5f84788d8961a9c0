package rexspan

import "strconv"

// Span is the boundary of one capturing group: byte offsets into the
// original input, or Unmatched when the group did not participate.
type Span struct {
	Begin int `json:"begin"`
	End   int `json:"end"`
}

// Unmatched is the span of a group that took no part in the match.
var Unmatched = Span{Begin: -1, End: -1}

// Matched reports whether s is a real span rather than Unmatched.
func (s Span) Matched() bool {
	return s.Begin >= 0 && s.End >= s.Begin
}

// Len returns the length of the span, or 0 if unmatched.
func (s Span) Len() int {
	if !s.Matched() {
		return 0
	}
	return s.End - s.Begin
}

// Text returns input[s.Begin:s.End], or "" if unmatched or out of range.
func (s Span) Text(input string) string {
	if !s.Matched() || s.End > len(input) {
		return ""
	}
	return input[s.Begin:s.End]
}

// String formats the span as {begin,end}.
func (s Span) String() string {
	return "{" + strconv.Itoa(s.Begin) + "," + strconv.Itoa(s.End) + "}"
}
