package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gametemplate/internal/application/game"
	"github.com/younwookim/gametemplate/internal/application/replay"
	"github.com/younwookim/gametemplate/internal/application/system"
)

func press(k ebiten.Key) system.KeyEvent   { return system.KeyEvent{Key: k, Down: true} }
func release(k ebiten.Key) system.KeyEvent { return system.KeyEvent{Key: k} }

// writeReplay saves a scripted session that enters a name, opens Options and closes it again
func writeReplay(t *testing.T) string {
	t.Helper()
	data := replay.ReplayData{
		Version: replay.Version,
		Initial: "userinput",
		Frames: []replay.FrameInput{
			{C: "Ann"},
			{Keys: []system.KeyEvent{press(ebiten.KeyEnter)}},
			{Keys: []system.KeyEvent{release(ebiten.KeyEnter)}},
			{Keys: []system.KeyEvent{press(ebiten.KeyArrowDown)}},
			{Keys: []system.KeyEvent{release(ebiten.KeyArrowDown)}},
			{Keys: []system.KeyEvent{press(ebiten.KeyEnter)}},
			{Keys: []system.KeyEvent{release(ebiten.KeyEnter)}},
			{Keys: []system.KeyEvent{press(ebiten.KeyEscape)}},
			{Keys: []system.KeyEvent{release(ebiten.KeyEscape)}},
			{},
		},
	}
	for i := range data.Frames {
		data.Frames[i].F = i
	}

	raw, err := json.Marshal(data)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "scripted.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

// runToEnd updates the game until it asks to terminate
func runToEnd(t *testing.T, g *game.Game) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		err := g.Update()
		if errors.Is(err, ebiten.Termination) {
			return
		}
		require.NoError(t, err)
	}
	t.Fatal("game did not terminate")
}

func TestReplay_ScriptedSession(t *testing.T) {
	g, rec, err := setup(options{replay: writeReplay(t), logLevel: "error"})
	require.NoError(t, err)
	assert.Nil(t, rec)

	runToEnd(t, g)

	assert.Equal(t, []string{"UserInputScene", "TitleScene"}, g.Stack().Names())
	assert.Equal(t, "Ann", g.World().Profile.Name)
}

func TestReplay_RecordingReproducesSession(t *testing.T) {
	recorded := filepath.Join(t.TempDir(), "recorded.json")

	first, rec, err := setup(options{replay: writeReplay(t), record: recorded, logLevel: "error"})
	require.NoError(t, err)
	require.NotNil(t, rec)
	runToEnd(t, first)
	saveRecording(rec, recorded)

	second, _, err := setup(options{replay: recorded, logLevel: "error"})
	require.NoError(t, err)
	runToEnd(t, second)

	assert.Equal(t, first.Stack().Names(), second.Stack().Names())
	assert.Equal(t, first.World().Profile, second.World().Profile)
}

func TestSetup_Errors(t *testing.T) {
	t.Run("missing replay", func(t *testing.T) {
		_, _, err := setup(options{replay: filepath.Join(t.TempDir(), "nope.json")})
		assert.ErrorContains(t, err, "failed to load replay")
	})

	t.Run("bad log level", func(t *testing.T) {
		_, _, err := setup(options{logLevel: "loud"})
		assert.Error(t, err)
	})

	t.Run("missing config dir", func(t *testing.T) {
		_, _, err := setup(options{configDir: filepath.Join(t.TempDir(), "none")})
		assert.ErrorContains(t, err, "failed to load config")
	})
}

func TestNewScene(t *testing.T) {
	g, _, err := setup(options{replay: writeReplay(t), logLevel: "error"})
	require.NoError(t, err)

	for name, want := range map[string]string{
		"userinput": "UserInputScene",
		"title":     "TitleScene",
		"menu":      "MenuScene",
		"level":     "LevelScene",
	} {
		s, err := newScene(name, g.World())
		require.NoError(t, err, name)
		assert.Equal(t, want, s.Name())
	}

	_, err = newScene("credits", g.World())
	assert.ErrorContains(t, err, "unknown scene")
}
