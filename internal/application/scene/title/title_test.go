package title

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gametemplate/internal/application/scene"
	"github.com/younwookim/gametemplate/internal/application/world"
	"github.com/younwookim/gametemplate/internal/domain/input"
	"github.com/younwookim/gametemplate/internal/infrastructure/assets"
	"github.com/younwookim/gametemplate/internal/infrastructure/config"
)

var defaultOptions = []config.TitleOption{
	{Label: "Start Game", Scene: "level"},
	{Label: "Options", Scene: "menu"},
}

const configDir = "../../../../cmd/game/configs"

func newTestWorld(t *testing.T) *world.World {
	t.Helper()
	cfg, err := config.NewLoader(configDir).LoadAll()
	require.NoError(t, err)
	return world.New(cfg, assets.NewFSStore(nil))
}

var (
	up   = input.AxisEvent(input.AxisVertical, -1)
	down = input.AxisEvent(input.AxisVertical, 1)
)

func TestNew(t *testing.T) {
	w := newTestWorld(t)

	ti, err := New(w)

	require.NoError(t, err)
	assert.Equal(t, "TitleScene", ti.Name())
	assert.Equal(t, 0, ti.Selected())
	assert.Equal(t, defaultOptions, ti.options)
}

func TestTitle_Navigation(t *testing.T) {
	tests := []struct {
		name     string
		events   []input.Event
		expected int
	}{
		{"down once", []input.Event{down}, 1},
		{"down wraps", []input.Event{down, down}, 0},
		{"up wraps from first", []input.Event{up}, 1},
		{"up then down", []input.Event{up, down}, 0},
		{"horizontal ignored", []input.Event{input.AxisEvent(input.AxisHorizontal, 1)}, 0},
		{"delete ignored", []input.Event{input.ButtonEvent(input.ButtonDelete)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			ti, err := New(w)
			require.NoError(t, err)

			for _, ev := range tt.events {
				ti.Input(w, ev, true)
				ti.Input(w, ev, false)
			}

			assert.Equal(t, tt.expected, ti.Selected())
		})
	}
}

func TestTitle_IndexStaysInRange(t *testing.T) {
	w := newTestWorld(t)
	ti, err := New(w)
	require.NoError(t, err)

	seq := []input.Event{up, up, down, up, down, down, down, up, up, up, down}
	for _, ev := range seq {
		ti.Input(w, ev, true)
		assert.GreaterOrEqual(t, ti.Selected(), 0)
		assert.Less(t, ti.Selected(), len(ti.options))
	}
}

func TestTitle_ConfirmPushesSelectedScene(t *testing.T) {
	tests := []struct {
		name     string
		moves    []input.Event
		expected string
	}{
		{"start game", nil, "LevelScene"},
		{"options", []input.Event{down}, "MenuScene"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			ti, err := New(w)
			require.NoError(t, err)

			for _, ev := range tt.moves {
				ti.Input(w, ev, true)
			}
			ti.Input(w, input.ButtonEvent(input.ButtonConfirm), true)

			sw, err := ti.Update(w)
			require.NoError(t, err)
			require.Equal(t, scene.SwitchPush, sw.Kind)
			assert.Equal(t, tt.expected, sw.Next.Name())

			sw, err = ti.Update(w)
			require.NoError(t, err)
			assert.Equal(t, scene.SwitchNone, sw.Kind, "selection is consumed")
		})
	}
}

func TestTitle_OptionsChooseSceneByName(t *testing.T) {
	w := newTestWorld(t)
	w.Config.Scenes.Title.Options = []config.TitleOption{
		{Label: "Options", Scene: "menu"},
		{Label: "Start Game", Scene: "level"},
	}
	ti, err := New(w)
	require.NoError(t, err)

	ti.Input(w, input.ButtonEvent(input.ButtonConfirm), true)
	sw, err := ti.Update(w)

	require.NoError(t, err)
	require.Equal(t, scene.SwitchPush, sw.Kind)
	assert.Equal(t, "MenuScene", sw.Next.Name(), "reordered options keep their targets")
}

func TestTitle_UnknownOptionScene(t *testing.T) {
	w := newTestWorld(t)
	w.Config.Scenes.Title.Options = []config.TitleOption{{Label: "Credits", Scene: "credits"}}
	ti, err := New(w)
	require.NoError(t, err)

	ti.Input(w, input.ButtonEvent(input.ButtonConfirm), true)
	sw, err := ti.Update(w)

	assert.ErrorContains(t, err, "unknown scene")
	assert.Equal(t, scene.SwitchNone, sw.Kind)
}

func TestTitle_ConfirmReleaseDoesNothing(t *testing.T) {
	w := newTestWorld(t)
	ti, err := New(w)
	require.NoError(t, err)

	ti.Input(w, input.ButtonEvent(input.ButtonConfirm), false)
	sw, err := ti.Update(w)

	require.NoError(t, err)
	assert.Equal(t, scene.SwitchNone, sw.Kind)
}

func TestTitle_MenuPops(t *testing.T) {
	w := newTestWorld(t)
	ti, err := New(w)
	require.NoError(t, err)

	ti.Input(w, input.ButtonEvent(input.ButtonMenu), true)
	sw, err := ti.Update(w)

	require.NoError(t, err)
	assert.Equal(t, scene.SwitchPop, sw.Kind)
}

func TestTitle_NextSceneFailure(t *testing.T) {
	w := newTestWorld(t)
	ti, err := New(w)
	require.NoError(t, err)

	w.Config.Scenes.Font.Name = "no-such-font"
	ti.Input(w, input.ButtonEvent(input.ButtonConfirm), true)
	sw, err := ti.Update(w)

	assert.ErrorIs(t, err, assets.ErrNotFound)
	assert.Equal(t, scene.SwitchNone, sw.Kind)
}
