package logger

import (
	"io"
	"log/slog"
	"os"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Options struct {
	Buffer io.Writer
	Level  Level
	Type   Type
}

var DefaultLogger = New(Options{os.Stderr, DefaultLevel, TypeText})

type logger struct {
	*slog.Logger
}

// New returns a Logger writing to opts.Buffer, or stderr when it is nil.
func New(opts Options) Logger {
	out := opts.Buffer
	if out == nil {
		out = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{Level: levels[opts.Level]}

	var handler slog.Handler
	switch opts.Type {
	case TypeJSON:
		handler = slog.NewJSONHandler(out, handlerOpts)
	case TypeText:
		fallthrough
	default:
		handler = slog.NewTextHandler(out, handlerOpts)
	}
	return &logger{
		Logger: slog.New(handler),
	}
}
