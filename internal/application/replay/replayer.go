package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/stickman/internal/application/system"
)

// Replayer plays a script back one tick at a time. It implements
// system.InputSource; after the script ends every tick is idle.
type Replayer struct {
	script Script
	tick   int
	index  int
}

var _ system.InputSource = (*Replayer)(nil)

// NewReplayer creates a replayer for a validated script
func NewReplayer(script Script) (*Replayer, error) {
	if err := script.Validate(); err != nil {
		return nil, err
	}
	return &Replayer{script: script}, nil
}

// LoadScript loads a script from a JSON file
func LoadScript(filename string) (*Script, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var script Script
	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&script); err != nil {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}
	return &script, nil
}

// Next returns the intent for the current tick and advances
func (r *Replayer) Next() system.Intent {
	frames := r.script.Frames
	for r.index < len(frames) && frames[r.index].End() <= r.tick {
		r.index++
	}

	var intent system.Intent
	if r.index < len(frames) && frames[r.index].F <= r.tick {
		intent = frames[r.index].Intent()
	}
	r.tick++
	return intent
}

// Done reports whether every scripted tick has been played
func (r *Replayer) Done() bool {
	return r.tick >= r.script.Length()
}

// CurrentTick returns the number of ticks played
func (r *Replayer) CurrentTick() int {
	return r.tick
}

// TotalTicks returns the number of ticks the script covers
func (r *Replayer) TotalTicks() int {
	return r.script.Length()
}

// Reset rewinds the replayer to the beginning
func (r *Replayer) Reset() {
	r.tick = 0
	r.index = 0
}
