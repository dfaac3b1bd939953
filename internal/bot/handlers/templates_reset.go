package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewTemplatesResetHandler returns a handler for /templates_reset, which drops
// the compiled templates of every environment.
func NewTemplatesResetHandler(deps HandlerDeps) bot.HandlerFunc {
	return templatesResetHandler{deps}.Handle
}

type templatesResetHandler struct {
	deps HandlerDeps
}

func (h templatesResetHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "templates_reset")

	if update.Message == nil || update.Message.From == nil {
		log.ErrorContext(ctx, "Templates reset handler called with nil Message or From", "update_id", update.ID)
		return
	}

	cleaned := h.deps.Registry.CleanCaches()
	log.InfoContext(ctx, "Admin cleared template caches",
		"chat_id", update.Message.Chat.ID,
		"user_id", update.Message.From.ID,
		"environments", cleaned)

	data := baseData(h.deps, update, "templates_reset")
	data["environments"] = cleaned
	reply(ctx, b, update, h.deps, log, h.deps.Texts.CacheCleared, data)
}
