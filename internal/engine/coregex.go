package engine

import (
	"regexp"

	"github.com/coregx/coregex"
)

// coregexProgram uses coregex as a fast rejecter in front of the stdlib
// program. coregex answers "is there a match at all" for ASCII input;
// spans always come from the reference program, because coregex's
// submatch positions do not follow leftmost-first semantics for every
// expression (alternation, lazy and repeated groups) and its '.' does not
// consume multibyte runes.
type coregexProgram struct {
	fast *coregex.Regex
	ref  *regexp.Regexp
}

func compileCoregex(expr string) (Program, error) {
	ref, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}

	fast, err := coregex.Compile(expr)
	if err != nil {
		return nil, err
	}

	return &coregexProgram{fast: fast, ref: ref}, nil
}

// NumGroups comes from the reference program: coregex counts the whole
// match in NumSubexp, stdlib does not.
func (p *coregexProgram) NumGroups() int {
	return p.ref.NumSubexp()
}

func (p *coregexProgram) MatchString(s string) bool {
	if !isASCII(s) {
		return p.ref.MatchString(s)
	}
	return p.fast.MatchString(s)
}

func (p *coregexProgram) FindStringSubmatchIndex(s string) []int {
	if isASCII(s) && !p.fast.MatchString(s) {
		return nil
	}
	return p.ref.FindStringSubmatchIndex(s)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
