package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Prompter asks the user a yes/no question.
type Prompter interface {
	// Interactive reports whether a human can answer.
	Interactive() bool
	// Confirm returns true only for an explicit yes.
	Confirm(question string) (bool, error)
}

// TerminalPrompter reads answers line by line from In.
type TerminalPrompter struct {
	In          io.Reader
	Out         io.Writer
	interactive bool
	scanner     *bufio.Scanner
}

// NewTerminalPrompter returns a prompter on stdin/stderr. It is interactive
// only when stdin is a terminal.
func NewTerminalPrompter() *TerminalPrompter {
	fd := os.Stdin.Fd()
	return NewPrompter(os.Stdin, os.Stderr, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}

// NewPrompter returns a prompter on arbitrary streams.
func NewPrompter(in io.Reader, out io.Writer, interactive bool) *TerminalPrompter {
	return &TerminalPrompter{In: in, Out: out, interactive: interactive}
}

// Interactive reports whether input comes from a terminal.
func (p *TerminalPrompter) Interactive() bool {
	return p.interactive
}

// Confirm writes "question [y/N] " and reads one answer line.
// End of input counts as no.
func (p *TerminalPrompter) Confirm(question string) (bool, error) {
	if p.scanner == nil {
		p.scanner = bufio.NewScanner(p.In)
	}

	fmt.Fprintf(p.Out, "%s [y/N] ", question)

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return false, fmt.Errorf("failed to read answer: %w", err)
		}
		return false, nil
	}

	response := strings.TrimSpace(strings.ToLower(p.scanner.Text()))
	return response == "y" || response == "yes", nil
}
