// Package config loads and validates the bot configuration from a YAML file,
// BOT_* environment variables and built-in defaults.
package config

import (
	"time"

	"github.com/go-telegram/bot/models"
)

// Config is the root configuration of the bot.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Messages  MessagesConfig  `mapstructure:"messages"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// LoggerConfig controls log level and output format.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds Bot API credentials and the administrator account.
type TelegramConfig struct {
	Token       string `mapstructure:"token"         validate:"required"`
	AdminUserID int64  `mapstructure:"admin_user_id" validate:"required,gt=0"`

	// BotInfo is filled at startup from getMe.
	BotInfo *models.User `mapstructure:"-" validate:"-"`
}

// TemplatesConfig configures the template environment attached to the bot.
type TemplatesConfig struct {
	Autoescape      bool          `mapstructure:"autoescape"`
	TrimBlocks      bool          `mapstructure:"trim_blocks"`
	LStripBlocks    bool          `mapstructure:"lstrip_blocks"`
	StrictUndefined bool          `mapstructure:"strict_undefined"`
	Async           bool          `mapstructure:"async"`
	RenderTimeout   time.Duration `mapstructure:"render_timeout" validate:"required,min=10ms,max=1m"`
	// Catalog is an optional YAML file of named templates.
	Catalog string `mapstructure:"catalog"`
}

// MessagesConfig holds the reply templates. Each value is a template name from
// the catalog or inline template source.
type MessagesConfig struct {
	Welcome      string `mapstructure:"welcome"       validate:"required"`
	Help         string `mapstructure:"help"          validate:"required"`
	Unauthorized string `mapstructure:"unauthorized"  validate:"required"`
	CacheCleared string `mapstructure:"cache_cleared" validate:"required"`
	RenderError  string `mapstructure:"render_error"  validate:"required"`
}

// SchedulerConfig maps task names to their schedule.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks" validate:"dive"`
}

// TaskConfig enables a task and sets its cron schedule (seconds field first).
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule" validate:"required_if=Enabled true"`
}
