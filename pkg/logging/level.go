package logging

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/szmathias/dscontainers/pkg/errorkit"
)

const (
	LevelTrace Level = "trace"
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

const ErrUnknownLevel errorkit.Error = "unknown logging level"

type Level string

func (ll Level) String() string { return string(ll) }

func (ll Level) logrus() logrus.Level {
	switch ll {
	case LevelTrace:
		return logrus.TraceLevel
	case LevelDebug:
		return logrus.DebugLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	default: // zero Level value is considered as LevelInfo
		return logrus.InfoLevel
	}
}

// ParseLevel accepts the level names case-insensitively, "warning" included.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return "", ErrUnknownLevel.F("%q", s)
}
