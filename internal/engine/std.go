package engine

import (
	"regexp"
)

// stdProgram runs expressions on the standard library regexp package.
// It is the reference the other backends are checked against.
type stdProgram struct {
	re *regexp.Regexp
}

func compileStd(expr string) (Program, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &stdProgram{re: re}, nil
}

func (p *stdProgram) NumGroups() int {
	return p.re.NumSubexp()
}

func (p *stdProgram) MatchString(s string) bool {
	return p.re.MatchString(s)
}

func (p *stdProgram) FindStringSubmatchIndex(s string) []int {
	return p.re.FindStringSubmatchIndex(s)
}
