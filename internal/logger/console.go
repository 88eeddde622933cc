// Package logger provides logging implementations for gen-make runs.
//
// Loggers write leveled, timestamped lines and a summary of each makefile
// generation. Implementations are thread-safe and support various output
// destinations (console, file).
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Summary describes one finished generation run.
type Summary struct {
	Generator string
	Output    string
	Sources   int
	VPaths    int
	Duration  time.Duration
	DryRun    bool
}

// ConsoleLogger logs run progress to a writer with timestamps and thread safety.
// All output is prefixed with [HH:MM:SS] timestamps.
// It supports log level filtering to control message verbosity.
// Color output is automatically enabled for terminal output (os.Stdout/os.Stderr).
type ConsoleLogger struct {
	writer      io.Writer
	level       Level
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		level:       ParseLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if w == os.Stdout || w == os.Stderr {
		// color.NoColor honors NO_COLOR and non-TTY output
		return !color.NoColor
	}
	return false
}

// Level returns the normalized level the logger filters on.
func (cl *ConsoleLogger) Level() string {
	return cl.level.String()
}

// LogTrace logs a trace-level message (most verbose).
// Format: "[HH:MM:SS] [TRACE] <message>"
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel(LevelTrace, message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel(LevelDebug, message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel(LevelInfo, message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel(LevelWarn, message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel(LevelError, message)
}

func (cl *ConsoleLogger) logWithLevel(level Level, message string) {
	if cl.writer == nil || level < cl.level {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	tag := level.tag()
	if c, ok := levelColors[level]; ok && cl.colorOutput {
		tag = c.Sprint(tag)
	}
	fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", timestamp(), tag, message)
}

var levelColors = map[Level]*color.Color{
	LevelTrace: color.New(color.FgHiBlack),
	LevelDebug: color.New(color.FgCyan),
	LevelInfo:  color.New(color.FgBlue),
	LevelWarn:  color.New(color.FgYellow),
	LevelError: color.New(color.FgRed),
}

// LogSummary logs the outcome of a generation run at INFO level.
// Format:
//
//	[HH:MM:SS] === Generation Summary ===
//	[HH:MM:SS] Generator: <name>
//	[HH:MM:SS] Output: <file>
//	[HH:MM:SS] Sources: <n>
//	[HH:MM:SS] VPATHs: <n>
//	[HH:MM:SS] Duration: <d>
func (cl *ConsoleLogger) LogSummary(s Summary) {
	if cl.writer == nil || LevelInfo < cl.level {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	header := "=== Generation Summary ==="
	output := s.Output
	if s.DryRun {
		output += " (dry run)"
	}
	if cl.colorOutput {
		header = color.New(color.Bold).Sprint(header)
		output = color.New(color.FgGreen).Sprint(output)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s\n", ts, header)
	fmt.Fprintf(&b, "[%s] Generator: %s\n", ts, s.Generator)
	fmt.Fprintf(&b, "[%s] Output: %s\n", ts, output)
	fmt.Fprintf(&b, "[%s] Sources: %d\n", ts, s.Sources)
	fmt.Fprintf(&b, "[%s] VPATHs: %d\n", ts, s.VPaths)
	fmt.Fprintf(&b, "[%s] Duration: %s\n", ts, formatDuration(s.Duration))

	cl.writer.Write([]byte(b.String()))
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// formatDuration converts a time.Duration to a human-readable string.
// Examples: "120ms", "5s", "1m30s", "2h15m"
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Hour:
		hours := d / time.Hour
		minutes := (d % time.Hour) / time.Minute
		if minutes == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		return fmt.Sprintf("%dh%dm", hours, minutes)
	case d >= time.Minute:
		minutes := d / time.Minute
		seconds := (d % time.Minute) / time.Second
		if seconds == 0 {
			return fmt.Sprintf("%dm", minutes)
		}
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	case d >= time.Second:
		return fmt.Sprintf("%ds", int64(d.Seconds()))
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}
