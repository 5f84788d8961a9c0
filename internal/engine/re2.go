package engine

import (
	"github.com/wasilibs/go-re2"
)

// re2Program runs expressions on RE2 through wasilibs/go-re2.
type re2Program struct {
	re *re2.Regexp
}

func compileRE2(expr string) (Program, error) {
	re, err := re2.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &re2Program{re: re}, nil
}

func (p *re2Program) NumGroups() int {
	return p.re.NumSubexp()
}

func (p *re2Program) MatchString(s string) bool {
	return p.re.MatchString(s)
}

func (p *re2Program) FindStringSubmatchIndex(s string) []int {
	return p.re.FindStringSubmatchIndex(s)
}
