package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/gametemplate/internal/infrastructure/config"
)

func TestIsRepeat(t *testing.T) {
	cfg := config.RepeatConfig{Delay: 30, Interval: 4}

	tests := []struct {
		name     string
		duration int
		expected bool
	}{
		{"first tick", 1, false},
		{"at delay", 30, false},
		{"before first repeat", 33, false},
		{"first repeat", 34, true},
		{"between repeats", 36, false},
		{"second repeat", 38, true},
		{"much later", 30 + 4*100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRepeat(tt.duration, cfg))
		})
	}
}

func TestIsRepeat_NoDelay(t *testing.T) {
	cfg := config.RepeatConfig{Delay: 0, Interval: 1}

	assert.False(t, IsRepeat(1, cfg), "a press is never its own repeat")
	assert.True(t, IsRepeat(2, cfg))
	assert.True(t, IsRepeat(3, cfg))
}

func TestIsRepeat_Disabled(t *testing.T) {
	cfg := config.RepeatConfig{Delay: 30}

	for d := 0; d < 100; d++ {
		assert.False(t, IsRepeat(d, cfg))
	}
}

func TestFrame_Empty(t *testing.T) {
	assert.True(t, Frame{}.Empty())
	assert.False(t, Frame{Chars: []rune{'a'}}.Empty())
	assert.False(t, Frame{Keys: []KeyEvent{{Key: ebiten.KeyA, Down: true}}}.Empty())
}
