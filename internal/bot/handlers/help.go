package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewHelpHandler returns a handler for the /help command listing commands.
func NewHelpHandler(deps HandlerDeps, commands []Command) bot.HandlerFunc {
	return helpHandler{deps: deps, commands: commands}.Handle
}

type helpHandler struct {
	deps     HandlerDeps
	commands []Command
}

func (h helpHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "help")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Help handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	log.InfoContext(ctx, "Handling /help command", "chat_id", update.Message.Chat.ID, "user_id", update.Message.From.ID)
	reply(ctx, b, update, h.deps, log, h.deps.Texts.Help, h.data(update))
}

func (h helpHandler) data(update *models.Update) map[string]any {
	data := baseData(h.deps, update, "help")

	isAdmin := IsAdmin(h.deps, update)

	commands := make([]map[string]any, 0, len(h.commands))
	for _, c := range h.commands {
		if c.Description == "" || (c.AdminOnly && !isAdmin) {
			continue
		}
		commands = append(commands, map[string]any{
			"name":        c.Name,
			"description": c.Description,
			"admin":       c.AdminOnly,
		})
	}
	data["commands"] = commands
	data["is_admin"] = isAdmin
	return data
}
