package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/gametemplate/internal/application/system"
)

// Replayer plays recorded frames back as a KeySource
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q (want %q)", data.Version, Version)
	}

	return &data, nil
}

// Poll returns the input for the current frame and advances.
// Past the end it returns empty frames.
func (r *Replayer) Poll() system.Frame {
	if r.Done() {
		return system.Frame{}
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Frame()
}

// Done reports whether every recorded frame was played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Initial returns the scene the recording started in
func (r *Replayer) Initial() string {
	return r.data.Initial
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
