package handlers

import (
	tgbot "github.com/go-telegram/bot"

	"github.com/edgard/jinjadialog/internal/telegram"
)

// Command describes a bot command for registration and /help.
type Command struct {
	Name        string
	Description string
	AdminOnly   bool
}

// Commands lists the commands handled by the bot.
var Commands = []Command{
	{Name: "start", Description: "Show the welcome message"},
	{Name: "help", Description: "List available commands"},
	{Name: "templates_reset", Description: "Drop compiled message templates", AdminOnly: true},
}

// RegisterAllCommands returns the registration table of every command.
func RegisterAllCommands(deps HandlerDeps) map[string]telegram.RegisteredHandler {
	factories := map[string]tgbot.HandlerFunc{
		"start":           NewStartHandler(deps),
		"help":            NewHelpHandler(deps, Commands),
		"templates_reset": NewTemplatesResetHandler(deps),
	}

	handlers := make(map[string]telegram.RegisteredHandler, len(Commands))
	for _, c := range Commands {
		h := telegram.RegisteredHandler{
			HandlerType: tgbot.HandlerTypeMessageText,
			Pattern:     c.Name,
			MatchType:   tgbot.MatchTypeCommandStartOnly,
			Handler:     factories[c.Name],
			Description: c.Description,
		}
		if c.AdminOnly {
			h.Middleware = []tgbot.Middleware{AdminOnly(deps, c.Name)}
		}
		handlers["/"+c.Name] = h
	}
	return handlers
}
