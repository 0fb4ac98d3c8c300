// Package logging provides structured logging for the containers and their tooling.
// With logging, you can use context to add logging details to your call stack.
// Entries are written by logrus, so formatting and level handling follow its conventions.
package logging

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

type Logger struct {
	Out io.Writer

	// Level is the logging level.
	// The default Level is LevelInfo.
	Level Level
	// JSON switches the output to JSON formatted entries.
	// By default, entries are written in logfmt style text.
	JSON bool

	init   sync.Once
	logger *logrus.Logger
}

func (l *Logger) Debug(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelDebug, msg, ds...)
}

func (l *Logger) Info(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelInfo, msg, ds...)
}

func (l *Logger) Warn(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelWarn, msg, ds...)
}

func (l *Logger) Error(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelError, msg, ds...)
}

// Log writes an entry at the given level.
// Details from the context come first, so explicitly passed details can override them.
func (l *Logger) Log(ctx context.Context, level Level, msg string, ds ...Detail) {
	lg := l.get()
	lvl := level.logrus()
	if !lg.IsLevelEnabled(lvl) {
		return
	}
	fields := logrus.Fields{}
	for _, group := range [][]Detail{detailsFrom(ctx), ds} {
		for _, d := range group {
			if d == nil {
				continue
			}
			d.addTo(fields)
		}
	}
	lg.WithFields(fields).Log(lvl, msg)
}

// Enabled tells if entries at the given level would be written.
func (l *Logger) Enabled(level Level) bool {
	return l.get().IsLevelEnabled(level.logrus())
}

// SetLevel changes the logging level of an already used Logger.
func (l *Logger) SetLevel(level Level) {
	l.Level = level
	l.get().SetLevel(level.logrus())
}

func (l *Logger) get() *logrus.Logger {
	l.init.Do(func() {
		lg := logrus.New()
		lg.SetOutput(l.out())
		lg.SetLevel(l.Level.logrus())
		if l.JSON {
			lg.SetFormatter(&logrus.JSONFormatter{})
		} else {
			lg.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
		}
		l.logger = lg
	})
	return l.logger
}

func (l *Logger) out() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stderr
}
