package dialog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/jinjadialog/internal/dialog"
)

func TestBot(t *testing.T) {
	t.Parallel()

	t.Run("present", func(t *testing.T) {
		t.Parallel()
		sentinel := &struct{ name string }{"bot"}
		b, err := dialog.Bot(dialog.Data{dialog.BotKey: sentinel})
		require.NoError(t, err)
		assert.Same(t, sentinel, b)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		_, err := dialog.Bot(dialog.Data{"other": 1})
		assert.ErrorIs(t, err, dialog.ErrBotNotFound)
	})

	t.Run("nil manager", func(t *testing.T) {
		t.Parallel()
		_, err := dialog.Bot(nil)
		assert.ErrorIs(t, err, dialog.ErrBotNotFound)
	})
}

func TestTruthy(t *testing.T) {
	t.Parallel()

	var nilPtr *int
	one := 1

	testCases := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"empty string", "", false},
		{"string", "x", true},
		{"zero int", 0, false},
		{"int", 3, true},
		{"zero float", 0.0, false},
		{"empty slice", []string{}, false},
		{"slice", []string{"a"}, true},
		{"empty map", map[string]int{}, false},
		{"nil pointer", nilPtr, false},
		{"pointer", &one, true},
		{"struct", struct{}{}, true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, dialog.Truthy(tc.value))
		})
	}
}

func TestVisibility(t *testing.T) {
	t.Parallel()

	data := map[string]any{"admin": true, "banned": false}

	assert.True(t, dialog.Visibility{}.IsVisible(data, nil))
	assert.True(t, dialog.Visibility{When: dialog.When("admin")}.IsVisible(data, nil))
	assert.False(t, dialog.Visibility{When: dialog.When("banned")}.IsVisible(data, nil))
	assert.False(t, dialog.Visibility{When: dialog.When("missing")}.IsVisible(data, nil))
	assert.True(t, dialog.Visibility{When: dialog.Not(dialog.When("banned"))}.IsVisible(data, nil))
}
