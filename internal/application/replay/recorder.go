package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/stickman/internal/application/system"
)

// Recorder captures the player's intents tick by tick. Consecutive identical
// intents are stored as one run and idle ticks are not stored at all.
type Recorder struct {
	script    Script
	recording bool
	tick      int
}

// NewRecorder creates a recorder for the named player
func NewRecorder(player string) *Recorder {
	return &Recorder{
		script: Script{
			Version:   ScriptVersion,
			Player:    player,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 256),
		},
		recording: true,
	}
}

// RecordTick records one tick's intent
func (r *Recorder) RecordTick(intent system.Intent) {
	if !r.recording {
		return
	}
	defer func() { r.tick++ }()

	if intent.IsZero() {
		return
	}
	if n := len(r.script.Frames); n > 0 {
		last := &r.script.Frames[n-1]
		if last.End() == r.tick && last.Intent() == intent {
			last.N = last.Ticks() + 1
			return
		}
	}
	r.script.Frames = append(r.script.Frames, frameOf(r.tick, intent))
}

// Save writes the script to a file
func (r *Recorder) Save(filename string) error {
	if r.tick == 0 {
		return fmt.Errorf("no ticks to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.script); err != nil {
		return fmt.Errorf("failed to encode script: %w", err)
	}
	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// TickCount returns the number of recorded ticks
func (r *Recorder) TickCount() int {
	return r.tick
}

// Script returns the recorded script
func (r *Recorder) Script() Script {
	return r.script
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("stickman_%s.json", time.Now().Format("20060102_150405"))
}
