package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bot",
		Short: "Telegram bot with Jinja message templates",
		Long: `bot runs a Telegram bot whose replies are Jinja templates rendered in a
template environment attached to the bot. The render command renders a
template locally with the same environment settings.`,
		SilenceUsage: true,
	}

	root.AddCommand(newRunCmd(), newRenderCmd())
	return root
}
