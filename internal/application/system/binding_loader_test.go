package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gametemplate/internal/domain/input"
	"github.com/younwookim/gametemplate/internal/infrastructure/config"
)

func TestLoadBinding(t *testing.T) {
	b, err := LoadBinding([]config.BindingConfig{
		{Key: "ArrowUp", Axis: "vertical", Value: -1},
		{Key: "D", Axis: "horizontal", Value: 1},
		{Key: "Enter", Button: "confirm"},
		{Key: "Escape", Button: "menu"},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, b.Len())

	ev, ok := b.Resolve(ebiten.KeyArrowUp)
	require.True(t, ok)
	assert.Equal(t, input.AxisEvent(input.AxisVertical, -1), ev)

	ev, ok = b.Resolve(ebiten.KeyD)
	require.True(t, ok)
	assert.Equal(t, input.AxisEvent(input.AxisHorizontal, 1), ev)

	ev, ok = b.Resolve(ebiten.KeyEnter)
	require.True(t, ok)
	assert.Equal(t, input.ButtonEvent(input.ButtonConfirm), ev)

	_, ok = b.Resolve(ebiten.KeyZ)
	assert.False(t, ok)
}

func TestLoadBinding_ConfigMatchesDefault(t *testing.T) {
	cfg, err := config.NewLoader("../../../cmd/game/configs").LoadInput()
	require.NoError(t, err)

	b, err := LoadBinding(cfg.Bindings)
	require.NoError(t, err)

	def := input.DefaultBinding()
	assert.Equal(t, def.Keys(), b.Keys())
	for _, k := range def.Keys() {
		want, _ := def.Resolve(k)
		got, ok := b.Resolve(k)
		require.True(t, ok, "key %s", k)
		assert.Equal(t, want, got, "key %s", k)
	}
}

func TestLoadBinding_Errors(t *testing.T) {
	tests := []struct {
		name    string
		entries []config.BindingConfig
		errMsg  string
	}{
		{"empty", nil, "no key bindings"},
		{"unknown key", []config.BindingConfig{{Key: "NoSuchKey", Button: "menu"}}, "unknown key"},
		{"duplicate key", []config.BindingConfig{
			{Key: "Enter", Button: "confirm"},
			{Key: "Enter", Button: "menu"},
		}, "bound twice"},
		{"unknown button", []config.BindingConfig{{Key: "Enter", Button: "jump"}}, "jump"},
		{"unknown axis", []config.BindingConfig{{Key: "W", Axis: "depth", Value: 1}}, "depth"},
		{"bad axis value", []config.BindingConfig{{Key: "W", Axis: "vertical", Value: 0.5}}, "must be -1 or 1"},
		{"both", []config.BindingConfig{{Key: "W", Button: "menu", Axis: "vertical", Value: 1}}, "both"},
		{"neither", []config.BindingConfig{{Key: "W"}}, "neither"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBinding(tt.entries)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
