package handlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/jinjadialog/internal/dialog"
	"github.com/edgard/jinjadialog/internal/telegram"
)

// fallbackReply is sent when even the error template cannot be rendered.
const fallbackReply = "Something went wrong."

// baseData returns the template variables shared by every command reply.
func baseData(deps HandlerDeps, update *models.Update, command string) map[string]any {
	data := map[string]any{"command": command}

	chat, user := telegram.EventContext(update)
	if chat != nil {
		data["chat_id"] = chat.ID
		data["chat_title"] = chat.Title
	}
	if user != nil {
		data["user_id"] = user.ID
		data["user_name"] = displayName(user)
		data["username"] = user.Username
	}
	if deps.Config != nil && deps.Config.Telegram.BotInfo != nil {
		data["bot_username"] = deps.Config.Telegram.BotInfo.Username
	}
	return data
}

func displayName(user *models.User) string {
	switch {
	case user.FirstName != "" && user.LastName != "":
		return user.FirstName + " " + user.LastName
	case user.FirstName != "":
		return user.FirstName
	case user.Username != "":
		return user.Username
	default:
		return fmt.Sprintf("user %d", user.ID)
	}
}

// renderReply renders text within the configured timeout. When rendering
// fails the error widget is used instead, and the error is returned.
func renderReply(ctx context.Context, deps HandlerDeps, text dialog.Text, data map[string]any, manager dialog.Manager) (string, error) {
	if deps.Config != nil && deps.Config.Templates.RenderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, deps.Config.Templates.RenderTimeout)
		defer cancel()
	}

	out, err := text.RenderText(ctx, data, manager)
	if err == nil {
		return out, nil
	}
	renderErr := fmt.Errorf("failed to render reply: %w", err)

	if deps.Texts.RenderError == nil {
		return fallbackReply, renderErr
	}
	out, err = deps.Texts.RenderError.RenderText(ctx, data, manager)
	if err != nil {
		return fallbackReply, renderErr
	}
	return out, renderErr
}

// reply renders text for update and sends it to the update's chat with HTML
// parse mode.
func reply(ctx context.Context, b *bot.Bot, update *models.Update, deps HandlerDeps, log *slog.Logger, text dialog.Text, data map[string]any) {
	chat, _ := telegram.EventContext(update)
	if chat == nil {
		log.WarnContext(ctx, "Cannot reply to update without chat", "update_id", update.ID)
		return
	}

	out, err := renderReply(ctx, deps, text, data, telegram.NewManager(b, update))
	if err != nil {
		log.ErrorContext(ctx, "Failed to render reply template", "error", err, "chat_id", chat.ID)
	}

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chat.ID,
		Text:      out,
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send reply", "error", err, "chat_id", chat.ID)
		return
	}
	log.DebugContext(ctx, "Sent reply", "chat_id", chat.ID)
}
