package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"

	"github.com/coregx/rexspan"
)

// readInput returns the text to match: the positional argument if present,
// else the contents of file, else standard input. One trailing newline is
// dropped from file and stdin input.
func (a *app) readInput(args []string, file string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	var data []byte
	var err error
	if file != "" {
		data, err = afero.ReadFile(a.fs, file)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
	} else {
		data, err = io.ReadAll(a.in)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	s := string(data)
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, nil
}

// printer renders results as text or JSON.
type printer struct {
	out       io.Writer
	json      bool
	color     bool
	highlight lipgloss.Style
	dim       lipgloss.Style
}

func (a *app) printer() *printer {
	renderer := lipgloss.NewRenderer(a.out)
	return &printer{
		out:       a.out,
		json:      a.v.GetString(keyFormat) == "json",
		color:     !a.v.GetBool(keyNoColor),
		highlight: renderer.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("212")),
		dim:       renderer.NewStyle().Faint(true),
	}
}

func (p *printer) match(ok bool) error {
	if p.json {
		return p.encode(map[string]bool{"match": ok})
	}
	_, err := fmt.Fprintln(p.out, ok)
	return err
}

func (p *printer) captures(input string, spans []rexspan.Span) error {
	if p.json {
		return p.encode(spans)
	}

	if len(spans) == 0 {
		_, err := fmt.Fprintln(p.out, p.faint("offset is past the end of the input"))
		return err
	}

	for i, s := range spans {
		text := p.faint("-")
		if s.Matched() {
			text = fmt.Sprintf("%q", s.Text(input))
		}
		if _, err := fmt.Fprintf(p.out, "%d\t%s\t%s\n", i, s, text); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) search(input string, s rexspan.Span, ok bool) error {
	if p.json {
		if !ok {
			return p.encode(nil)
		}
		return p.encode(s)
	}

	if !ok {
		_, err := fmt.Fprintln(p.out, p.faint("no match"))
		return err
	}

	if _, err := fmt.Fprintf(p.out, "%s\t%q\n", s, s.Text(input)); err != nil {
		return err
	}
	if p.color {
		line := input[:s.Begin] + p.highlight.Render(input[s.Begin:s.End]) + input[s.End:]
		if _, err := fmt.Fprintln(p.out, line); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) faint(s string) string {
	if !p.color {
		return s
	}
	return p.dim.Render(s)
}

func (p *printer) encode(v interface{}) error {
	enc := json.NewEncoder(p.out)
	return enc.Encode(v)
}
