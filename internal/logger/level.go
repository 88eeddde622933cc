package logger

import "strings"

// Level orders messages by severity. A logger drops messages below its
// level.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"trace", "debug", "info", "warn", "error"}

// String returns the lowercase name used in configuration.
func (l Level) String() string {
	if l < LevelTrace || l > LevelError {
		return "info"
	}
	return levelNames[l]
}

// tag is the bracketed form written in front of each line.
func (l Level) tag() string {
	return strings.ToUpper(l.String())
}

// ParseLevel maps a configured level name to a Level, ignoring case and
// surrounding space. Empty or unknown names give LevelInfo.
func ParseLevel(name string) Level {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range levelNames {
		if n == name {
			return Level(i)
		}
	}
	return LevelInfo
}
