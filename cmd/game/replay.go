package main

import (
	"fmt"

	"github.com/younwookim/gametemplate/internal/application/replay"
	"github.com/younwookim/gametemplate/internal/application/system"
	"github.com/younwookim/gametemplate/internal/infrastructure/config"
	"github.com/younwookim/gametemplate/internal/infrastructure/log"
)

// inputSource returns the keyboard, or a replayer when replayFile is set.
// A replay overrides the initial scene with the one it was recorded in.
func inputSource(replayFile string, cfg *config.GameConfig) (system.KeySource, error) {
	if replayFile == "" {
		return system.NewKeyboard(cfg.Input.Repeat), nil
	}

	data, err := replay.LoadReplay(replayFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load replay %s: %w", replayFile, err)
	}
	r := replay.NewReplayer(*data)
	if r.Initial() != "" {
		cfg.Scenes.Initial = r.Initial()
	}
	log.Info("Replaying %s (%d frames, initial scene %s)", replayFile, r.TotalFrames(), cfg.Scenes.Initial)
	return r, nil
}

// saveRecording writes the recorded session. "auto" picks a timestamped name.
func saveRecording(rec *replay.Recorder, filename string) {
	if filename == "auto" {
		filename = replay.GenerateFilename()
	}
	rec.Stop()
	if err := rec.Save(filename); err != nil {
		log.Error("Failed to save recording: %v", err)
		return
	}
	log.Info("Recording saved: %s (%d frames)", filename, rec.FrameCount())
}
