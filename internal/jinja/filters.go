package jinja

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/nikolalohinski/gonja/exec"
)

// Filter is a custom template filter. It receives the filtered value and the
// positional arguments of the filter call.
type Filter func(value any, args ...any) (any, error)

// Filters maps filter names to their implementation.
type Filters map[string]Filter

// FilterPair is a single named filter, for callers building filters as an
// ordered list.
type FilterPair struct {
	Name   string
	Filter Filter
}

// Markup is a string that is already safe for output and is never autoescaped.
type Markup string

// String returns the markup as a plain string.
func (m Markup) String() string {
	return string(m)
}

// Pairs normalizes an ordered list of filters into Filters. Later pairs
// overwrite earlier ones with the same name.
func Pairs(pairs ...FilterPair) Filters {
	out := make(Filters, len(pairs))
	for _, p := range pairs {
		if p.Name == "" || p.Filter == nil {
			continue
		}
		out[p.Name] = p.Filter
	}
	return out
}

// StringFilter adapts a string transformation into a Filter. The input value
// is converted with ToString.
func StringFilter(fn func(string) string) Filter {
	return func(value any, _ ...any) (any, error) {
		return fn(ToString(value)), nil
	}
}

// ToString renders a filter input the way templates print it.
func ToString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case Markup:
		return string(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

// adaptFilter converts a Filter to gonja's calling convention.
func adaptFilter(fn Filter) exec.FilterFunction {
	return func(_ *exec.Evaluator, in *exec.Value, params *exec.VarArgs) *exec.Value {
		if in.IsError() {
			return in
		}
		args := make([]any, 0, len(params.Args))
		for _, arg := range params.Args {
			args = append(args, arg.Interface())
		}

		out, err := fn(in.Interface(), args...)
		if err != nil {
			return exec.AsValue(err)
		}
		if m, ok := out.(Markup); ok {
			return exec.AsSafeValue(string(m))
		}
		return exec.AsValue(out)
	}
}

var (
	telegramPolicyOnce sync.Once
	telegramPolicy     *bluemonday.Policy
)

// telegramHTMLPolicy allows the HTML subset accepted by the Bot API with
// parse_mode=HTML.
func telegramHTMLPolicy() *bluemonday.Policy {
	telegramPolicyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowElements("b", "strong", "i", "em", "u", "ins", "s", "strike", "del",
			"code", "pre", "blockquote", "tg-spoiler")
		p.AllowAttrs("href").OnElements("a")
		// span is only accepted as a spoiler; bare spans are dropped.
		p.AllowAttrs("class").Matching(regexp.MustCompile(`^tg-spoiler$`)).OnElements("span")
		p.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[\w+-]+$`)).OnElements("code")
		p.RequireParseableURLs(true)
		p.AllowURLSchemes("http", "https", "tg", "mailto")
		telegramPolicy = p
	})
	return telegramPolicy
}

// TelegramFilters returns filters useful for messages sent with HTML parse mode:
//
//	telegram_html  strips every tag Telegram does not render and marks the
//	               result safe.
//	plain_text     removes markdown and HTML, leaving text to be escaped.
func TelegramFilters() Filters {
	return Filters{
		"telegram_html": func(value any, _ ...any) (any, error) {
			return Markup(telegramHTMLPolicy().Sanitize(ToString(value))), nil
		},
		"plain_text": StringFilter(PlainText),
	}
}
