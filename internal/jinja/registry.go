package jinja

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"sync"
)

// ErrInvalidBot is returned when a bot identity cannot key the registry.
var ErrInvalidBot = errors.New("jinja: bot identity must be a non-nil comparable value")

// Registry associates template environments with bots. Bots without an
// environment of their own render with the default environment.
type Registry struct {
	mu       sync.RWMutex
	envs     map[any]*Environment
	fallback *Environment
	logger   *slog.Logger
}

// NewRegistry creates a Registry. A nil fallback is replaced with
// NewEnvironment().
func NewRegistry(logger *slog.Logger, fallback *Environment) *Registry {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if fallback == nil {
		fallback = NewEnvironment()
	}
	return &Registry{
		envs:     make(map[any]*Environment),
		fallback: fallback,
		logger:   logger.With("component", "jinja_registry"),
	}
}

// Setup builds an environment from opts, attaches it to bot, and returns it.
// A previous environment of the same bot is replaced.
func (r *Registry) Setup(bot any, opts ...Option) (*Environment, error) {
	if err := checkBot(bot); err != nil {
		return nil, err
	}
	env := NewEnvironment(opts...)
	if err := r.Attach(bot, env); err != nil {
		return nil, err
	}
	return env, nil
}

// Attach associates an existing environment with bot.
func (r *Registry) Attach(bot any, env *Environment) error {
	if err := checkBot(bot); err != nil {
		return err
	}
	if env == nil {
		return fmt.Errorf("jinja: cannot attach nil environment")
	}

	r.mu.Lock()
	_, replaced := r.envs[bot]
	r.envs[bot] = env
	r.mu.Unlock()

	r.logger.Debug("Attached template environment",
		"bot_type", fmt.Sprintf("%T", bot),
		"replaced", replaced,
		"async", env.IsAsync(),
		"autoescape", env.Autoescape())
	return nil
}

// Detach removes the environment of bot, if any.
func (r *Registry) Detach(bot any) {
	if checkBot(bot) != nil {
		return
	}
	r.mu.Lock()
	delete(r.envs, bot)
	r.mu.Unlock()
}

// Lookup returns the environment attached to bot, or the default environment.
func (r *Registry) Lookup(bot any) *Environment {
	if checkBot(bot) == nil {
		r.mu.RLock()
		env, ok := r.envs[bot]
		r.mu.RUnlock()
		if ok {
			return env
		}
	}
	r.logger.Debug("No template environment attached, using default", "bot_type", fmt.Sprintf("%T", bot))
	return r.fallback
}

// Default returns the default environment.
func (r *Registry) Default() *Environment {
	return r.fallback
}

// Environments returns the default environment followed by every attached one.
func (r *Registry) Environments() []*Environment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Environment, 0, len(r.envs)+1)
	out = append(out, r.fallback)
	for _, env := range r.envs {
		if env != r.fallback {
			out = append(out, env)
		}
	}
	return out
}

// CleanCaches drops compiled templates from every environment and returns the
// number of environments cleaned.
func (r *Registry) CleanCaches() int {
	envs := r.Environments()
	for _, env := range envs {
		env.CleanCache()
	}
	return len(envs)
}

func checkBot(bot any) error {
	if bot == nil {
		return ErrInvalidBot
	}
	t := reflect.TypeOf(bot)
	if !t.Comparable() {
		return ErrInvalidBot
	}
	if t.Kind() == reflect.Pointer && reflect.ValueOf(bot).IsNil() {
		return ErrInvalidBot
	}
	return nil
}
