package rexspan_test

import (
	"fmt"

	"github.com/coregx/rexspan"
)

// ExampleCompile demonstrates compilation and the synthetic whole-match group.
func ExampleCompile() {
	p, err := rexspan.Compile(`(a)(b)`)
	if err != nil {
		panic(err)
	}
	defer p.Close()

	fmt.Println(p.NumGroups())
	fmt.Println(p.Expr())
	// Output:
	// 3
	// ((a)(b))
}

// ExamplePattern_Match demonstrates full-match checks.
func ExamplePattern_Match() {
	p := rexspan.MustCompile(`\d+`)

	whole, _ := p.Match("12345")
	part, _ := p.Match("id 12345")
	fmt.Println(whole, part)
	// Output: true false
}

// ExamplePattern_Capture demonstrates offsets relative to the original input.
func ExamplePattern_Capture() {
	p := rexspan.MustCompile(`(a)(b)`)

	spans, _ := p.Capture("xab", 1)
	fmt.Println(spans)

	spans, _ = p.Capture("xy", 0)
	fmt.Println(spans)

	spans, _ = p.Capture("xab", 3)
	fmt.Println(len(spans))
	// Output:
	// [{1,3} {1,2} {2,3}]
	// [{-1,-1} {-1,-1} {-1,-1}]
	// 0
}

// ExamplePattern_Search demonstrates the rightmost-begin selection.
func ExamplePattern_Search() {
	p := rexspan.MustCompile(`(\w+)=(\w+)`)
	input := "set key=value"

	span, ok, _ := p.Search(input, 0)
	fmt.Println(span, ok, span.Text(input))

	_, ok, _ = p.Search("no pairs", 0)
	fmt.Println(ok)
	// Output:
	// {8,13} true value
	// false
}

// ExampleHandle demonstrates construct-once, release-once ownership.
func ExampleHandle() {
	h := rexspan.NewHandle(func(p *rexspan.Pattern) {
		fmt.Println("released", p)
	})

	fmt.Println(h.Construct(`a+`, rexspan.DefaultConfig()))
	fmt.Println(h.Construct(`b+`, rexspan.DefaultConfig()))
	h.Release()
	h.Release()
	// Output:
	// <nil>
	// regexp2 already constructed
	// released a+
}
