package config

import "time"

// Default values for optional configuration.
const (
	DefaultLogLevel = "info"
	DefaultLogJSON  = false

	DefaultAutoescape      = true
	DefaultTrimBlocks      = true
	DefaultLStripBlocks    = true
	DefaultStrictUndefined = false
	DefaultAsync           = false
	DefaultRenderTimeout   = 5 * time.Second

	// TemplateCachePurgeTask is the scheduler key of the cache purge task.
	TemplateCachePurgeTask     = "template_cache_purge"
	DefaultCachePurgeSchedule  = "0 0 4 * * *"
	DefaultCachePurgeIsEnabled = true
)

// DefaultMessages are Jinja templates rendered with the command context.
var DefaultMessages = MessagesConfig{
	Welcome: "👋 Hello, <b>{{ user_name }}</b>!\n" +
		"{% if bot_username %}I am @{{ bot_username }}. {% endif %}" +
		"Send /help to see what I can do.",
	Help: "<b>Commands</b>\n" +
		"{% for c in commands %}\n" +
		"/{{ c.name }} - {{ c.description }}\n" +
		"{% endfor %}",
	Unauthorized: "🚫 Only the administrator can use /{{ command }}.",
	CacheCleared: "🧹 Template caches cleared in {{ environments }} environment(s).",
	RenderError:  "❌ Something went wrong while preparing the reply.",
}

func defaultValues() map[string]any {
	return map[string]any{
		"logger.level": DefaultLogLevel,
		"logger.json":  DefaultLogJSON,

		"templates.autoescape":       DefaultAutoescape,
		"templates.trim_blocks":      DefaultTrimBlocks,
		"templates.lstrip_blocks":    DefaultLStripBlocks,
		"templates.strict_undefined": DefaultStrictUndefined,
		"templates.async":            DefaultAsync,
		"templates.render_timeout":   DefaultRenderTimeout,
		"templates.catalog":          "",

		"messages.welcome":       DefaultMessages.Welcome,
		"messages.help":          DefaultMessages.Help,
		"messages.unauthorized":  DefaultMessages.Unauthorized,
		"messages.cache_cleared": DefaultMessages.CacheCleared,
		"messages.render_error":  DefaultMessages.RenderError,

		"scheduler.tasks." + TemplateCachePurgeTask + ".enabled":  DefaultCachePurgeIsEnabled,
		"scheduler.tasks." + TemplateCachePurgeTask + ".schedule": DefaultCachePurgeSchedule,
	}
}
