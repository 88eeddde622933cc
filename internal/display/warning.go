package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// String renders the warning without color.
func (w Warning) String() string {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		if len(w.Files) == 1 {
			b.WriteString("    Affected file:\n")
		} else {
			b.WriteString("    Affected files:\n")
		}
		for i, file := range w.Files {
			fmt.Fprintf(&b, "      %d. %s\n", i+1, file)
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	return b.String()
}

// Display writes the warning to out in yellow.
func (w Warning) Display(out io.Writer) {
	fmt.Fprint(out, color.New(color.FgYellow).Sprint(w.String()))
}

// WarnUnknownCPU is shown when CPU names neither x86 nor x64.
func WarnUnknownCPU(cpu string) Warning {
	return Warning{
		Title:      "Unknown CPU",
		Message:    fmt.Sprintf("CPU=%s is not x86 or x64; bitness and target fields expand to ??", cpu),
		Suggestion: "Set CPU=x86 or CPU=x64 (or pass --cpu)",
	}
}

// WarnHistory is shown when a run could not be recorded.
func WarnHistory(dbPath string, err error) Warning {
	return Warning{
		Title:      "Generation history not recorded",
		Message:    err.Error(),
		Files:      []string{dbPath},
		Suggestion: "Check the database path or disable history with --no-history",
	}
}
