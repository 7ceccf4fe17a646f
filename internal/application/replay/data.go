package replay

import "github.com/younwookim/gametemplate/internal/application/system"

// Version is the replay file format version
const Version = "2.0"

// FrameInput records raw input for a single frame
type FrameInput struct {
	F    int               `json:"f"`              // Frame number
	Keys []system.KeyEvent `json:"keys,omitempty"` // Key transitions
	C    string            `json:"c,omitempty"`    // Typed characters
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Initial   string       `json:"initial"` // Initial scene name
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Frame converts the recorded input back into a source frame
func (fi FrameInput) Frame() system.Frame {
	f := system.Frame{Keys: fi.Keys}
	if fi.C != "" {
		f.Chars = []rune(fi.C)
	}
	return f
}
