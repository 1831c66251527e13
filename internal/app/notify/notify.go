// Package notify carries transient user-facing notifications ("toasts").
package notify

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// DefaultTTL is the fixed display lifetime of a toast.
const DefaultTTL = 4 * time.Second

type Toast struct {
	ID      string
	Level   Level
	Message string
	TTL     time.Duration
}

func New(level Level, message string) Toast {
	return Toast{
		ID:      uuid.NewString(),
		Level:   level,
		Message: message,
		TTL:     DefaultTTL,
	}
}

// Notifier receives toasts raised by the contest controller and pollers.
type Notifier interface {
	Notify(Toast)
}

// LogNotifier writes toasts to the structured log, which is all the CLI
// front end needs.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{log: log.With().Str("component", "notify").Logger()}
}

func (n *LogNotifier) Notify(t Toast) {
	event := n.log.Info()
	switch t.Level {
	case LevelError:
		event = n.log.Error()
	case LevelWarning:
		event = n.log.Warn()
	}
	event.Str("level", string(t.Level)).Msg(t.Message)
}
