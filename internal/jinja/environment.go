// Package jinja renders dialog text widgets with Jinja templates. It builds
// template environments with bot-friendly defaults, keeps one environment per
// bot in a Registry, and provides the Text widget that renders through them.
package jinja

import (
	"context"
	"fmt"

	"github.com/nikolalohinski/gonja"
	"github.com/nikolalohinski/gonja/config"
	"github.com/nikolalohinski/gonja/exec"
)

// Environment is a configured template environment. It is safe for
// concurrent use and is not modified after construction.
type Environment struct {
	env        *gonja.Environment
	async      bool
	autoescape bool
}

// NewEnvironment builds an Environment. Unless overridden it autoescapes
// output, applies trim_blocks and lstrip_blocks, and treats template
// identifiers as literal template source.
func NewEnvironment(opts ...Option) *Environment {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	cfg := config.NewConfig()
	cfg.Autoescape = o.autoescape
	cfg.StrictUndefined = o.strictUndefined
	for _, fn := range o.engineConfig {
		fn(cfg)
	}

	loader := o.loader
	if loader == nil {
		loader = LiteralLoader{}
	}

	env := gonja.NewEnvironment(cfg, &whitespaceLoader{
		inner:  loader,
		trim:   o.trimBlocks,
		lstrip: o.lstripBlocks,
	})

	custom := make(exec.FilterSet, len(o.filters)+len(o.engineFilters))
	for name, fn := range o.filters {
		custom[name] = adaptFilter(fn)
	}
	for name, fn := range o.engineFilters {
		custom[name] = fn
	}
	env.Filters.Update(custom)

	for name, value := range o.globals {
		env.Globals.Set(name, value)
	}

	return &Environment{
		env:        env,
		async:      o.async,
		autoescape: cfg.Autoescape,
	}
}

// IsAsync reports whether templates execute off the calling goroutine.
func (e *Environment) IsAsync() bool {
	return e.async
}

// Autoescape reports whether printed values are HTML-escaped.
func (e *Environment) Autoescape() bool {
	return e.autoescape
}

// HasFilter reports whether a filter with the given name is registered.
func (e *Environment) HasFilter(name string) bool {
	return e.env.Filters.Exists(name)
}

// Template resolves and compiles the named template. Compiled templates are
// cached by name.
func (e *Environment) Template(name string) (*exec.Template, error) {
	return e.env.FromCache(name)
}

// CleanCache drops every compiled template.
func (e *Environment) CleanCache() {
	e.env.CleanCache()
}

// Render resolves the named template and executes it against data.
func (e *Environment) Render(ctx context.Context, name string, data map[string]any) (string, error) {
	tpl, err := e.Template(name)
	if err != nil {
		return "", err
	}
	if !e.async {
		return tpl.Execute(data)
	}
	return executeAsync(ctx, tpl, data)
}

type renderResult struct {
	text string
	err  error
}

func executeAsync(ctx context.Context, tpl *exec.Template, data map[string]any) (string, error) {
	done := make(chan renderResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- renderResult{err: fmt.Errorf("template execution panicked: %v", r)}
			}
		}()
		text, err := tpl.Execute(data)
		done <- renderResult{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.text, res.err
	}
}
