package handlers

import (
	"log/slog"

	"github.com/edgard/jinjadialog/internal/config"
	"github.com/edgard/jinjadialog/internal/jinja"
)

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger   *slog.Logger
	Config   *config.Config
	Registry *jinja.Registry
	Texts    Texts
}

// Texts are the reply widgets rendered by the handlers.
type Texts struct {
	Welcome      *jinja.Text
	Help         *jinja.Text
	Unauthorized *jinja.Text
	CacheCleared *jinja.Text
	RenderError  *jinja.Text
}

// NewTexts creates reply widgets for the configured message templates.
func NewTexts(registry *jinja.Registry, messages config.MessagesConfig) Texts {
	return Texts{
		Welcome:      jinja.NewText(registry, messages.Welcome, nil),
		Help:         jinja.NewText(registry, messages.Help, nil),
		Unauthorized: jinja.NewText(registry, messages.Unauthorized, nil),
		CacheCleared: jinja.NewText(registry, messages.CacheCleared, nil),
		RenderError:  jinja.NewText(registry, messages.RenderError, nil),
	}
}
