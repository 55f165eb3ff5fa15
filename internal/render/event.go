package render

// Event is one item of the host's event stream.
type Event interface {
	isEvent()
}

// RenderEvent asks the game to draw one frame onto Screen.
type RenderEvent struct {
	Screen Image
	// FPS is the measured frame rate, for overlays.
	FPS float64
}

// UpdateEvent advances the simulation by DT seconds.
type UpdateEvent struct {
	DT float64
}

// KeyPressEvent reports that Key went down.
type KeyPressEvent struct {
	Key Key
}

// KeyReleaseEvent reports that Key went up.
type KeyReleaseEvent struct {
	Key Key
}

// MousePressEvent reports that Button went down.
type MousePressEvent struct {
	Button MouseButton
}

// MouseReleaseEvent reports that Button went up.
type MouseReleaseEvent struct {
	Button MouseButton
}

// CursorMoveEvent reports the cursor position in window pixels.
type CursorMoveEvent struct {
	X, Y float64
}

func (RenderEvent) isEvent()       {}
func (UpdateEvent) isEvent()       {}
func (KeyPressEvent) isEvent()     {}
func (KeyReleaseEvent) isEvent()   {}
func (MousePressEvent) isEvent()   {}
func (MouseReleaseEvent) isEvent() {}
func (CursorMoveEvent) isEvent()   {}
