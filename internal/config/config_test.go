package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "123:abc"
  admin_user_id: 42
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	want := &Config{
		Logger:   LoggerConfig{Level: DefaultLogLevel, JSON: DefaultLogJSON},
		Telegram: TelegramConfig{Token: "123:abc", AdminUserID: 42},
		Templates: TemplatesConfig{
			Autoescape:      DefaultAutoescape,
			TrimBlocks:      DefaultTrimBlocks,
			LStripBlocks:    DefaultLStripBlocks,
			StrictUndefined: DefaultStrictUndefined,
			Async:           DefaultAsync,
			RenderTimeout:   DefaultRenderTimeout,
		},
		Messages: DefaultMessages,
		Scheduler: SchedulerConfig{Tasks: map[string]TaskConfig{
			TemplateCachePurgeTask: {Enabled: DefaultCachePurgeIsEnabled, Schedule: DefaultCachePurgeSchedule},
		}},
	}

	if diff := cmp.Diff(want, cfg, cmpopts.IgnoreFields(TelegramConfig{}, "BotInfo")); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
logger:
  level: debug
  json: true
telegram:
  token: "123:abc"
  admin_user_id: 7
templates:
  autoescape: false
  async: true
  render_timeout: 250ms
  catalog: templates.yaml
messages:
  welcome: welcome
scheduler:
  tasks:
    template_cache_purge:
      enabled: false
    custom:
      enabled: true
      schedule: "*/30 * * * * *"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.True(t, cfg.Logger.JSON)
	assert.False(t, cfg.Templates.Autoescape)
	assert.True(t, cfg.Templates.TrimBlocks, "unset keys keep defaults")
	assert.True(t, cfg.Templates.Async)
	assert.Equal(t, 250*time.Millisecond, cfg.Templates.RenderTimeout)
	assert.Equal(t, "templates.yaml", cfg.Templates.Catalog)
	assert.Equal(t, "welcome", cfg.Messages.Welcome)
	assert.Equal(t, DefaultMessages.Help, cfg.Messages.Help)

	require.Contains(t, cfg.Scheduler.Tasks, TemplateCachePurgeTask)
	assert.False(t, cfg.Scheduler.Tasks[TemplateCachePurgeTask].Enabled)
	assert.Equal(t, DefaultCachePurgeSchedule, cfg.Scheduler.Tasks[TemplateCachePurgeTask].Schedule)
	assert.Equal(t, TaskConfig{Enabled: true, Schedule: "*/30 * * * * *"}, cfg.Scheduler.Tasks["custom"])
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("BOT_TELEGRAM_TOKEN", "env:token")
	t.Setenv("BOT_TELEGRAM_ADMIN_USER_ID", "99")
	t.Setenv("BOT_LOGGER_LEVEL", "warn")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env:token", cfg.Telegram.Token)
	assert.Equal(t, int64(99), cfg.Telegram.AdminUserID)
	assert.Equal(t, "warn", cfg.Logger.Level)
}

func TestLoadConfigErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{
			name:    "missing token",
			content: "telegram:\n  admin_user_id: 1\n",
		},
		{
			name:    "missing admin",
			content: "telegram:\n  token: x\n",
		},
		{
			name:    "invalid log level",
			content: "logger:\n  level: loud\ntelegram:\n  token: x\n  admin_user_id: 1\n",
		},
		{
			name:    "render timeout too long",
			content: "templates:\n  render_timeout: 2h\ntelegram:\n  token: x\n  admin_user_id: 1\n",
		},
		{
			name:    "enabled task without schedule",
			content: "telegram:\n  token: x\n  admin_user_id: 1\nscheduler:\n  tasks:\n    other:\n      enabled: true\n",
		},
		{
			name:    "empty message template",
			content: "telegram:\n  token: x\n  admin_user_id: 1\nmessages:\n  help: \"\"\n",
		},
		{
			name:    "malformed yaml",
			content: "telegram: [\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfiguration))
		})
	}
}
