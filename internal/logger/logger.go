// Package logger builds the application slog logger and the update logging
// middleware for the Telegram client.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/jinjadialog/internal/telegram"
)

// ParseLevel maps a configured level name to a slog level. Unknown names
// fall back to info.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a logger writing to stdout, as JSON when jsonOutput is
// set and as text otherwise.
func NewLogger(levelStr string, jsonOutput bool) *slog.Logger {
	return New(os.Stdout, levelStr, jsonOutput)
}

// New is NewLogger with an explicit destination.
func New(w io.Writer, levelStr string, jsonOutput bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(levelStr)}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Middleware logs every update with its chat, sender and handling time.
func Middleware(log *slog.Logger) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			startTime := time.Now()
			entry := log.With(updateAttrs(update)...)

			entry.InfoContext(ctx, "Processing update")
			next(ctx, b, update)
			entry.InfoContext(ctx, "Finished processing update", "duration", time.Since(startTime))
		}
	}
}

func updateAttrs(update *models.Update) []any {
	attrs := []any{"update_type", telegram.UpdateKind(update)}
	if update == nil {
		return attrs
	}
	attrs = append(attrs, "update_id", update.ID)

	chat, user := telegram.EventContext(update)
	if chat != nil {
		attrs = append(attrs, "chat_id", chat.ID)
	}
	if user != nil {
		attrs = append(attrs, "user_id", user.ID)
	}

	switch {
	case update.Message != nil:
		attrs = append(attrs, "message_id", update.Message.ID, "text_preview", truncateString(update.Message.Text, 50))
	case update.CallbackQuery != nil:
		attrs = append(attrs, "callback_query_id", update.CallbackQuery.ID, "data", update.CallbackQuery.Data)
	}
	return attrs
}

func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."
	}
	return string(r[:maxLen-3]) + "..."
}
