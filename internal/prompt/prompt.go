// internal/prompt/prompt.go
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads interactive answers from in and writes questions to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a prompter over the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Line asks for a non-empty line, re-asking while the answer is empty.
func (p *Prompter) Line(label string) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s: ", label)

		answer, err := p.read()
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		fmt.Fprintln(p.out, "A value is required.")
	}
}

// Confirm asks a yes/no question. Only "y" and "yes" (case-insensitive)
// count as affirmative; everything else, including an empty answer, is a no.
func (p *Prompter) Confirm(label string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", label)

	answer, err := p.read()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// Select shows a numbered list and reads a choice. A number in range picks
// that option; any other non-empty answer is returned as free text, so the
// user can type a path that is not in the listing.
func (p *Prompter) Select(label string, options []string) (string, error) {
	for i, option := range options {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, option)
	}

	for {
		fmt.Fprintf(p.out, "%s (number or path): ", label)

		answer, err := p.read()
		if err != nil {
			return "", err
		}
		if answer == "" {
			fmt.Fprintln(p.out, "A value is required.")
			continue
		}

		if n, err := strconv.Atoi(answer); err == nil {
			if n < 1 || n > len(options) {
				fmt.Fprintf(p.out, "Enter a number between 1 and %d.\n", len(options))
				continue
			}
			return options[n-1], nil
		}
		return answer, nil
	}
}

// Choose shows a numbered list and reads a choice, accepting only a number
// in range. An empty answer picks def when def is a valid index. Returns the
// zero-based index.
func (p *Prompter) Choose(label string, options []string, def int) (int, error) {
	for i, option := range options {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, option)
	}

	for {
		if def >= 0 && def < len(options) {
			fmt.Fprintf(p.out, "%s [%d]: ", label, def+1)
		} else {
			fmt.Fprintf(p.out, "%s: ", label)
		}

		answer, err := p.read()
		if err != nil {
			return 0, err
		}
		if answer == "" && def >= 0 && def < len(options) {
			return def, nil
		}

		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintf(p.out, "Enter a number between 1 and %d.\n", len(options))
			continue
		}
		return n - 1, nil
	}
}

func (p *Prompter) read() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
