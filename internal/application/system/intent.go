package system

// Intent is the player's requested action for one tick
type Intent struct {
	Left   bool
	Right  bool
	Jump   bool
	Attack bool
}

// Direction returns -1, 0 or +1. Pressing both directions cancels out.
func (i Intent) Direction() float64 {
	var dir float64
	if i.Left {
		dir--
	}
	if i.Right {
		dir++
	}
	return dir
}

// IsZero reports whether no control is held
func (i Intent) IsZero() bool {
	return i == Intent{}
}

// InputSource yields one intent per tick (keyboard, terminal, or a script)
type InputSource interface {
	Next() Intent
}

// InputSourceFunc adapts a function to InputSource
type InputSourceFunc func() Intent

// Next calls f
func (f InputSourceFunc) Next() Intent {
	return f()
}
