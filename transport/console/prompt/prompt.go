// Package prompt reads typed answers from the console line by line.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter asks questions on out and reads answers from in. Malformed
// answers are asked again; the only errors it returns come from the input
// running out.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// String asks for one line of text and returns it trimmed.
func (p *Prompter) String(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read %s: %w", label, err)
		}

		return "", fmt.Errorf("failed to read %s: %w", label, io.EOF)
	}

	return strings.TrimSpace(p.scanner.Text()), nil
}

// Int keeps asking until the answer parses as a whole number.
func (p *Prompter) Int(label string) (int, error) {
	for {
		text, err := p.String(label)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a whole number.")

			continue
		}

		return value, nil
	}
}

// Float keeps asking until the answer parses as a number.
func (p *Prompter) Float(label string) (float64, error) {
	for {
		text, err := p.String(label)
		if err != nil {
			return 0, err
		}

		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a number.")

			continue
		}

		return value, nil
	}
}

// Choice lists the options by position and keeps asking until one of them is
// picked. The chosen option is returned as written in the list.
func (p *Prompter) Choice(label string, options []string) (string, error) {
	for i, option := range options {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, option)
	}

	for {
		pick, err := p.Int(label)
		if err != nil {
			return "", err
		}

		if pick < 1 || pick > len(options) {
			fmt.Fprintf(p.out, "Please pick between 1 and %d.\n", len(options))

			continue
		}

		return options[pick-1], nil
	}
}
