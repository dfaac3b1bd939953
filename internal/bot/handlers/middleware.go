// Package handlers contains the Telegram command handlers, their registration
// table and middleware. Replies are rendered from Jinja text widgets.
package handlers

import (
	"context"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// IsAdmin reports whether update was sent by the configured administrator.
func IsAdmin(deps HandlerDeps, update *models.Update) bool {
	if update == nil || update.Message == nil || update.Message.From == nil || deps.Config == nil {
		return false
	}
	return update.Message.From.ID == deps.Config.Telegram.AdminUserID
}

// AdminOnly stops updates from anyone but the administrator and answers them
// with the unauthorized template.
func AdminOnly(deps HandlerDeps, command string) tgbot.Middleware {
	return func(next tgbot.HandlerFunc) tgbot.HandlerFunc {
		return func(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
			if update.Message == nil || update.Message.From == nil {
				next(ctx, bot, update)
				return
			}

			if !IsAdmin(deps, update) {
				log := deps.Logger.With("middleware", "AdminOnly")
				log.WarnContext(ctx, "Unauthorized access attempt",
					"user_id", update.Message.From.ID,
					"chat_id", update.Message.Chat.ID,
					"command", command)
				reply(ctx, bot, update, deps, log, deps.Texts.Unauthorized, baseData(deps, update, command))
				return
			}

			next(ctx, bot, update)
		}
	}
}
