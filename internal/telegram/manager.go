package telegram

import (
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/jinjadialog/internal/dialog"
)

// Middleware data keys set by NewManager, next to dialog.BotKey.
const (
	EventUpdateKey   = "event_update"
	EventChatKey     = "event_chat"
	EventFromUserKey = "event_from_user"
)

// NewManager collects the middleware data of update for dialog widgets.
func NewManager(b *bot.Bot, update *models.Update) dialog.Data {
	data := dialog.Data{}
	if b != nil {
		data[dialog.BotKey] = b
	}
	if update == nil {
		return data
	}

	data[EventUpdateKey] = update
	chat, user := EventContext(update)
	if chat != nil {
		data[EventChatKey] = chat
	}
	if user != nil {
		data[EventFromUserKey] = user
	}
	return data
}

// EventContext returns the chat and sender of update when it carries them.
func EventContext(update *models.Update) (*models.Chat, *models.User) {
	if update == nil {
		return nil, nil
	}

	var msg *models.Message
	switch {
	case update.Message != nil:
		msg = update.Message
	case update.EditedMessage != nil:
		msg = update.EditedMessage
	case update.ChannelPost != nil:
		msg = update.ChannelPost
	case update.CallbackQuery != nil:
		cq := update.CallbackQuery
		user := &cq.From
		switch {
		case cq.Message.Message != nil:
			return &cq.Message.Message.Chat, user
		case cq.Message.InaccessibleMessage != nil:
			return &cq.Message.InaccessibleMessage.Chat, user
		}
		return nil, user
	}

	if msg == nil {
		return nil, nil
	}
	return &msg.Chat, msg.From
}

// UpdateKind names the payload of update for logging.
func UpdateKind(update *models.Update) string {
	switch {
	case update == nil:
		return "none"
	case update.Message != nil:
		return "message"
	case update.EditedMessage != nil:
		return "edited_message"
	case update.ChannelPost != nil:
		return "channel_post"
	case update.CallbackQuery != nil:
		return "callback_query"
	default:
		return "other"
	}
}
