package jinja

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBot struct{ name string }

func TestNewRegistryDefault(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(nil, nil)
	require.NotNil(t, registry.Default())
	assert.True(t, registry.Default().Autoescape())
	assert.False(t, registry.Default().IsAsync())

	custom := NewEnvironment(WithAutoescape(false))
	assert.Same(t, custom, NewRegistry(nil, custom).Default())
}

func TestRegistryLookupFallsBackToDefault(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	fallback := NewEnvironment(WithFilters(Filters{"count": func(v any, _ ...any) (any, error) {
		calls.Add(1)
		return v, nil
	}}))
	registry := NewRegistry(nil, fallback)

	bot := &fakeBot{name: "unattached"}
	assert.Same(t, fallback, registry.Lookup(bot))
	assert.Same(t, fallback, registry.Lookup(nil))

	got, err := registry.Lookup(bot).Render(context.Background(), "Hello {{ name }}!", map[string]any{"name": "World"})
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", got)
	assert.Zero(t, calls.Load())
}

func TestRegistrySetup(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(nil, nil)
	bot := &fakeBot{name: "main"}

	env, err := registry.Setup(bot, WithFilters(Filters{"shout": shout}))
	require.NoError(t, err)
	assert.Same(t, env, registry.Lookup(bot))
	assert.True(t, env.HasFilter("shout"))
	assert.False(t, registry.Default().HasFilter("shout"), "filters stay local to the bot environment")

	got, err := registry.Lookup(bot).Render(context.Background(), "{{ name | shout }}", map[string]any{"name": "bye"})
	require.NoError(t, err)
	assert.Equal(t, "BYE", got)

	other := &fakeBot{name: "main"}
	assert.Same(t, registry.Default(), registry.Lookup(other), "bots are keyed by identity")
}

func TestRegistrySetupReplaces(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(nil, nil)
	bot := &fakeBot{}

	first, err := registry.Setup(bot, WithFilters(Filters{"shout": shout}))
	require.NoError(t, err)
	second, err := registry.Setup(bot, WithAsync(true))
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Same(t, second, registry.Lookup(bot))
	assert.True(t, registry.Lookup(bot).IsAsync())
	assert.False(t, registry.Lookup(bot).HasFilter("shout"))
}

func TestRegistryInvalidBot(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(nil, nil)
	var nilBot *fakeBot

	testCases := []struct {
		name string
		bot  any
	}{
		{name: "nil", bot: nil},
		{name: "nil pointer", bot: nilBot},
		{name: "map", bot: map[string]int{}},
		{name: "slice", bot: []int{1}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := registry.Setup(tc.bot)
			assert.ErrorIs(t, err, ErrInvalidBot)
			assert.ErrorIs(t, registry.Attach(tc.bot, NewEnvironment()), ErrInvalidBot)
			assert.Same(t, registry.Default(), registry.Lookup(tc.bot))
		})
	}
}

func TestRegistryAttachDetach(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(nil, nil)
	bot := &fakeBot{}

	assert.Error(t, registry.Attach(bot, nil))

	env := NewEnvironment(WithAutoescape(false))
	require.NoError(t, registry.Attach(bot, env))
	assert.Same(t, env, registry.Lookup(bot))

	registry.Detach(bot)
	assert.Same(t, registry.Default(), registry.Lookup(bot))

	registry.Detach(nil)
}

func TestRegistryEnvironmentsAndCleanCaches(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(nil, nil)
	assert.Equal(t, []*Environment{registry.Default()}, registry.Environments())

	a, err := registry.Setup(&fakeBot{name: "a"})
	require.NoError(t, err)
	b, err := registry.Setup(&fakeBot{name: "b"})
	require.NoError(t, err)
	require.NoError(t, registry.Attach(&fakeBot{name: "c"}, registry.Default()))

	envs := registry.Environments()
	require.Len(t, envs, 3)
	assert.Same(t, registry.Default(), envs[0])
	assert.ElementsMatch(t, []*Environment{a, b}, envs[1:])

	compiled, err := a.Template("{{ x }}")
	require.NoError(t, err)

	assert.Equal(t, 3, registry.CleanCaches())

	recompiled, err := a.Template("{{ x }}")
	require.NoError(t, err)
	assert.NotSame(t, compiled, recompiled)
}

func TestRegistryConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(nil, nil)
	bots := []*fakeBot{{name: "a"}, {name: "b"}, {name: "c"}}

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		bot := bots[i%len(bots)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := registry.Setup(bot, WithFilters(Filters{"shout": shout}))
			assert.NoError(t, err)
			got, err := registry.Lookup(bot).Render(context.Background(), "{{ 'x' | shout }}", nil)
			assert.NoError(t, err)
			assert.Equal(t, "X", got)
		}()
	}
	wg.Wait()

	assert.Len(t, registry.Environments(), len(bots)+1)
}
