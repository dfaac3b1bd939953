package jinja

import (
	"context"

	"github.com/edgard/jinjadialog/internal/dialog"
)

// Text is a dialog text widget rendered from a Jinja template. The template is
// resolved in the environment attached to the bot handling the update.
type Text struct {
	dialog.Visibility

	template string
	registry *Registry
}

var _ dialog.Text = (*Text)(nil)

// NewText creates a widget for template. registry must not be nil. A nil when
// leaves the widget always visible.
func NewText(registry *Registry, template string, when dialog.Condition) *Text {
	if registry == nil {
		panic("jinja: NewText requires a registry")
	}
	return &Text{
		Visibility: dialog.Visibility{When: when},
		template:   template,
		registry:   registry,
	}
}

// Template returns the template identifier of the widget.
func (t *Text) Template() string {
	return t.template
}

// RenderText implements dialog.Text. Hidden widgets render as an empty string.
func (t *Text) RenderText(ctx context.Context, data map[string]any, manager dialog.Manager) (string, error) {
	if !t.IsVisible(data, manager) {
		return "", nil
	}
	bot, err := dialog.Bot(manager)
	if err != nil {
		return "", err
	}
	return t.registry.Lookup(bot).Render(ctx, t.template, data)
}
