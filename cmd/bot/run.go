package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/spf13/cobra"

	"github.com/edgard/jinjadialog/internal/bot"
	"github.com/edgard/jinjadialog/internal/bot/handlers"
	"github.com/edgard/jinjadialog/internal/bot/tasks"
	"github.com/edgard/jinjadialog/internal/config"
	"github.com/edgard/jinjadialog/internal/jinja"
	"github.com/edgard/jinjadialog/internal/logger"
	"github.com/edgard/jinjadialog/internal/telegram"
)

func newRunCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the Telegram bot",
		Args:  cobra.NoArgs,
		// run logs its own failures.
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "./config.yaml", "path to configuration file")
	return cmd
}

// run wires configuration, templates, the Telegram client and the scheduler,
// then blocks until ctx is cancelled.
func run(ctx context.Context, configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", configPath, "error", err)
		return err
	}

	log := logger.NewLogger(cfg.Logger.Level, cfg.Logger.JSON)
	slog.SetDefault(log)
	log.Info("Logger initialized", "level", cfg.Logger.Level, "json", cfg.Logger.JSON)

	templateOpts, err := bot.TemplateOptions(cfg.Templates)
	if err != nil {
		log.Error("Failed to prepare template environment", "error", err)
		return err
	}
	registry := jinja.NewRegistry(log, nil)

	hDeps := handlers.HandlerDeps{
		Logger:   log,
		Config:   cfg,
		Registry: registry,
		Texts:    handlers.NewTexts(registry, cfg.Messages),
	}
	tDeps := tasks.TaskDeps{
		Logger:   log,
		Registry: registry,
	}

	tg, err := telegram.NewTelegramBot(cfg.Telegram.Token, log, tgbot.WithMiddlewares(logger.Middleware(log)))
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return err
	}

	env, err := registry.Setup(tg, templateOpts...)
	if err != nil {
		log.Error("Failed to attach template environment", "error", err)
		return err
	}
	log.Info("Template environment attached",
		"autoescape", env.Autoescape(),
		"async", env.IsAsync(),
		"catalog", cfg.Templates.Catalog)

	cfg.Telegram.BotInfo, err = tg.GetMe(ctx)
	if err != nil {
		log.Error("Failed to get bot info", "error", err)
		return err
	}
	log.Info("Retrieved bot info", "bot_id", cfg.Telegram.BotInfo.ID, "bot_username", cfg.Telegram.BotInfo.Username)

	if _, err := telegram.RegisterHandlers(tg, log, handlers.RegisterAllCommands(hDeps)); err != nil {
		log.Error("Failed to register Telegram handlers", "error", err)
		return err
	}

	sched, err := bot.NewScheduler(log, &cfg.Scheduler, tasks.RegisterAllTasks(tDeps))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return err
	}
	app := bot.NewBot(log, tg, sched)

	log.Info("Starting bot")
	runErr := app.Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		time.Sleep(time.Second)
		return runErr
	}

	log.Info("Bot stopped gracefully")
	return nil
}
