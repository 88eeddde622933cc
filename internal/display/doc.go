// Package display formats user-facing warnings for gen-make.
//
// A warning has a title and optional message, related files and a
// suggestion:
//
//	display.Warning{
//	    Title:      "Unknown CPU",
//	    Message:    "CPU=arm64 is not x86 or x64; %t, %b and %T expand to ??",
//	    Suggestion: "Set CPU=x86 or CPU=x64",
//	}.Display(os.Stderr)
//
// Output is yellow when color is enabled (see github.com/fatih/color) and
// plain otherwise. All functions accept io.Writer for testability.
package display
