// Package tasks implements the scheduled maintenance tasks of the bot.
package tasks

import (
	"log/slog"

	"github.com/edgard/jinjadialog/internal/jinja"
)

// TaskDeps contains the dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger   *slog.Logger
	Registry *jinja.Registry
}
