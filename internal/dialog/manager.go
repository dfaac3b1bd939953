// Package dialog defines the contracts shared by dialog widgets: the manager
// that exposes middleware data for the active update, visibility conditions,
// and the text widget interface.
package dialog

import (
	"context"
	"errors"
)

// BotKey is the middleware data key holding the bot that received the update.
const BotKey = "bot"

// ErrBotNotFound is returned when the manager's middleware data has no bot entry.
var ErrBotNotFound = errors.New("dialog: no bot in middleware data")

// Manager exposes the data collected by middleware for the update being handled.
type Manager interface {
	MiddlewareData() map[string]any
}

// Data is a static Manager backed by a plain map.
type Data map[string]any

// MiddlewareData implements Manager.
func (d Data) MiddlewareData() map[string]any {
	return d
}

// Bot returns the bot stored under BotKey in the manager's middleware data.
func Bot(m Manager) (any, error) {
	if m == nil {
		return nil, ErrBotNotFound
	}
	b, ok := m.MiddlewareData()[BotKey]
	if !ok || b == nil {
		return nil, ErrBotNotFound
	}
	return b, nil
}

// Text is a widget producing a piece of message text.
type Text interface {
	RenderText(ctx context.Context, data map[string]any, manager Manager) (string, error)
}
