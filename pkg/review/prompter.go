package review

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TermPrompter is the line-oriented DecisionProvider for a terminal.
// "y" accepts, "q" quits, anything else skips. End of input quits.
type TermPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTermPrompter reads decisions from in and writes prompts to out.
func NewTermPrompter(in io.Reader, out io.Writer) *TermPrompter {
	return &TermPrompter{in: bufio.NewReader(in), out: out}
}

// Next presents a candidate and reads one decision line.
func (p *TermPrompter) Next(card Card) (Decision, error) {
	fmt.Fprintln(p.out, strings.Repeat("=", 60))
	fmt.Fprintf(p.out, "Word: %s\n", card.Word)
	fmt.Fprintf(p.out, "Definition: %s\n", textOr(card.Definition, "[no definition found]"))
	fmt.Fprintf(p.out, "Example: %s\n\n", textOr(card.Example, "[no example sentence found]"))
	fmt.Fprint(p.out, "Add to dictionary? [y]es / [n]o / [q]uit: ")

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		// Input exhausted: treat as quit so the session still saves.
		return Quit, nil
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y":
		return Accept, nil
	case "q":
		return Quit, nil
	default:
		return Skip, nil
	}
}

func textOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
