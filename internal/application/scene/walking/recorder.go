package walking

import (
	"fmt"
	"time"

	"github.com/younwookim/runner/internal/application/replay"
	"github.com/younwookim/runner/internal/application/system"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      replay.ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(seed int64) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   "1.0",
			Seed:      seed,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
		frame:     0,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(input system.InputState) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, replay.FrameInput{
		F: r.frame,
		L: input.Left,
		R: input.Right,
		U: input.Up,
		D: input.Down,
		S: input.Space,
		E: input.Enter,
	})
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	return replay.SaveReplay(filename, r.data)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}

// InputFromReplay converts a replayed frame into live input
func InputFromReplay(in replay.ReplayInput) system.InputState {
	return system.InputState{
		Up:    in.Up,
		Down:  in.Down,
		Left:  in.Left,
		Right: in.Right,
		Space: in.Space,
		Enter: in.Enter,
	}
}
