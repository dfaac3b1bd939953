package jinja

import (
	"github.com/nikolalohinski/gonja/config"
	"github.com/nikolalohinski/gonja/exec"
	"github.com/nikolalohinski/gonja/loaders"
)

// Option configures an Environment before construction.
type Option func(*options)

type options struct {
	autoescape      bool
	trimBlocks      bool
	lstripBlocks    bool
	strictUndefined bool
	async           bool
	loader          loaders.Loader
	filters         Filters
	engineFilters   exec.FilterSet
	globals         map[string]any
	engineConfig    []func(*config.Config)
}

func defaultOptions() options {
	return options{
		autoescape:   true,
		trimBlocks:   true,
		lstripBlocks: true,
	}
}

// WithAutoescape toggles HTML escaping of printed values. Enabled by default.
func WithAutoescape(enabled bool) Option {
	return func(o *options) { o.autoescape = enabled }
}

// WithTrimBlocks toggles removal of the first newline after a block tag.
// Enabled by default.
func WithTrimBlocks(enabled bool) Option {
	return func(o *options) { o.trimBlocks = enabled }
}

// WithLStripBlocks toggles stripping of leading whitespace before a block tag.
// Enabled by default.
func WithLStripBlocks(enabled bool) Option {
	return func(o *options) { o.lstripBlocks = enabled }
}

// WithStrictUndefined makes undefined variables and attributes render errors.
func WithStrictUndefined(enabled bool) Option {
	return func(o *options) { o.strictUndefined = enabled }
}

// WithAsync makes Render execute templates off the calling goroutine and
// honour context cancellation while waiting.
func WithAsync(enabled bool) Option {
	return func(o *options) { o.async = enabled }
}

// WithLoader replaces the literal template resolution with another loader.
func WithLoader(loader loaders.Loader) Option {
	return func(o *options) { o.loader = loader }
}

// WithFilters registers custom filters. Repeated calls merge, later names win.
func WithFilters(filters Filters) Option {
	return func(o *options) {
		if len(filters) == 0 {
			return
		}
		if o.filters == nil {
			o.filters = make(Filters, len(filters))
		}
		for name, fn := range filters {
			if name == "" || fn == nil {
				continue
			}
			o.filters[name] = fn
		}
	}
}

// WithFilterPairs registers custom filters given as an ordered list.
func WithFilterPairs(pairs ...FilterPair) Option {
	return WithFilters(Pairs(pairs...))
}

// WithEngineFilter registers a filter written against gonja's own calling
// convention, with access to keyword arguments and the evaluator.
func WithEngineFilter(name string, fn exec.FilterFunction) Option {
	return func(o *options) {
		if name == "" || fn == nil {
			return
		}
		if o.engineFilters == nil {
			o.engineFilters = exec.FilterSet{}
		}
		o.engineFilters[name] = fn
	}
}

// WithGlobals exposes values to every template rendered by the environment.
func WithGlobals(globals map[string]any) Option {
	return func(o *options) {
		if len(globals) == 0 {
			return
		}
		if o.globals == nil {
			o.globals = make(map[string]any, len(globals))
		}
		for k, v := range globals {
			o.globals[k] = v
		}
	}
}

// WithEngineConfig edits the gonja configuration directly. It runs after the
// other options are applied, so it has the last word.
func WithEngineConfig(fn func(*config.Config)) Option {
	return func(o *options) {
		if fn != nil {
			o.engineConfig = append(o.engineConfig, fn)
		}
	}
}
