package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

type Level int

const (
	InfoLevel Level = iota
	DebugLevel
	WarnLevel
	ErrorLevel
	DefaultLevel Level = InfoLevel
)

var levels = map[Level]slog.Level{
	DebugLevel: slog.LevelDebug,
	InfoLevel:  slog.LevelInfo,
	WarnLevel:  slog.LevelWarn,
	ErrorLevel: slog.LevelError,
}

// ParseLevel maps a level name (debug, info, warn, error) to a Level.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return DebugLevel, nil
	case "info", "":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return DefaultLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// Type selects the output encoding.
type Type int

const (
	TypeText Type = iota
	TypeJSON
)
