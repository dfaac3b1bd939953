package jinja

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringer struct{}

func (stringer) String() string { return "stringer" }

func TestPairs(t *testing.T) {
	t.Parallel()

	first := StringFilter(strings.ToUpper)
	second := StringFilter(strings.ToLower)

	filters := Pairs(
		FilterPair{Name: "case", Filter: first},
		FilterPair{Name: "", Filter: first},
		FilterPair{Name: "skipped", Filter: nil},
		FilterPair{Name: "case", Filter: second},
	)

	require.Len(t, filters, 1)
	got, err := filters["case"]("MiXeD")
	require.NoError(t, err)
	assert.Equal(t, "mixed", got, "later pair wins")
}

func TestToString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		in       any
		expected string
	}{
		{name: "nil", in: nil, expected: ""},
		{name: "string", in: "plain", expected: "plain"},
		{name: "markup", in: Markup("<b>x</b>"), expected: "<b>x</b>"},
		{name: "stringer", in: stringer{}, expected: "stringer"},
		{name: "int", in: 42, expected: "42"},
		{name: "bool", in: true, expected: "true"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, ToString(tc.in))
		})
	}
}

func TestAdaptFilterError(t *testing.T) {
	t.Parallel()

	env := NewEnvironment(WithFilters(Filters{
		"checked": func(v any, _ ...any) (any, error) {
			if ToString(v) == "" {
				return nil, errors.New("empty input")
			}
			return v, nil
		},
	}))

	got, err := env.Render(context.Background(), "{{ name | checked }}", map[string]any{"name": "ok"})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)

	_, err = env.Render(context.Background(), "{{ name | checked }}", map[string]any{"name": ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty input")
}

func TestTelegramFilters(t *testing.T) {
	t.Parallel()

	env := NewEnvironment(WithFilters(TelegramFilters()))
	require.True(t, env.HasFilter("telegram_html"))

	testCases := []struct {
		name     string
		in       string
		expected string
	}{
		{
			name:     "supported tags kept",
			in:       "<b>bold</b> <i>it</i> <code>x</code>",
			expected: "<b>bold</b> <i>it</i> <code>x</code>",
		},
		{
			name:     "unsupported tags stripped",
			in:       "<b>bold</b><div>x</div>",
			expected: "<b>bold</b>x",
		},
		{
			name:     "scripts removed",
			in:       "hi<script>alert(1)</script>",
			expected: "hi",
		},
		{
			name:     "spoiler span kept",
			in:       `<span class="tg-spoiler">x</span>`,
			expected: `<span class="tg-spoiler">x</span>`,
		},
		{
			name:     "bare span dropped",
			in:       "<span>x</span>",
			expected: "x",
		},
		{
			name:     "span with other class dropped",
			in:       `<span class="other">x</span>`,
			expected: "x",
		},
		{
			name:     "plain text untouched",
			in:       "just text",
			expected: "just text",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := env.Render(context.Background(), "{{ body | telegram_html }}", map[string]any{"body": tc.in})
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "empty", in: "  ", expected: ""},
		{name: "emphasis", in: "**bold** text", expected: "bold text"},
		{name: "heading and paragraph", in: "# Title\n\nPara", expected: "Title\n\nPara"},
		{name: "inline html", in: "<i>hi</i> there", expected: "hi there"},
		{name: "entities unescaped", in: "a & b", expected: "a & b"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, PlainText(tc.in))
		})
	}

	env := NewEnvironment(WithFilters(TelegramFilters()))
	got, err := env.Render(context.Background(), "{{ v | plain_text }}", map[string]any{"v": "**a** & <i>b</i>"})
	require.NoError(t, err)
	assert.Equal(t, "a &amp; b", got)
}
