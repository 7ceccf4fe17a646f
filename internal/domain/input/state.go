package input

type buttonState struct {
	pressed      bool
	justPressed  bool
	justReleased bool
}

// State records which buttons are held and where each axis points.
// Only the dispatch path writes to it; scenes read it.
type State struct {
	buttons map[Button]buttonState
	axes    map[Axis]float64
}

// NewState creates an empty input state
func NewState() *State {
	return &State{
		buttons: make(map[Button]buttonState),
		axes:    make(map[Axis]float64),
	}
}

// Apply records a press or release of ev.
// Applying the same transition twice has no further effect.
func (s *State) Apply(ev Event, pressed bool) {
	switch ev.Kind {
	case KindButton:
		s.applyButton(ev.Button, pressed)
	case KindAxis:
		s.applyAxis(ev.Axis, ev.Value, pressed)
	}
}

func (s *State) applyButton(b Button, pressed bool) {
	st := s.buttons[b]
	if st.pressed == pressed {
		return
	}
	st.pressed = pressed
	if pressed {
		st.justPressed = true
	} else {
		st.justReleased = true
	}
	s.buttons[b] = st
}

func (s *State) applyAxis(a Axis, value float64, pressed bool) {
	if pressed {
		s.axes[a] = value
		return
	}
	// Releasing a direction only recenters the axis if it still points that way
	if s.axes[a] == value {
		s.axes[a] = 0
	}
}

// IsPressed reports whether b's last recorded transition was a press
func (s *State) IsPressed(b Button) bool {
	return s.buttons[b].pressed
}

// IsJustPressed reports whether b went down since the last EndFrame
func (s *State) IsJustPressed(b Button) bool {
	return s.buttons[b].justPressed
}

// IsJustReleased reports whether b went up since the last EndFrame
func (s *State) IsJustReleased(b Button) bool {
	return s.buttons[b].justReleased
}

// AxisValue returns the last recorded value for a, 0 if never set
func (s *State) AxisValue(a Axis) float64 {
	return s.axes[a]
}

// EndFrame clears the per-tick edges. Held buttons and axes are kept.
func (s *State) EndFrame() {
	for b, st := range s.buttons {
		st.justPressed = false
		st.justReleased = false
		s.buttons[b] = st
	}
}

// Reset forgets all buttons and axes
func (s *State) Reset() {
	clear(s.buttons)
	clear(s.axes)
}
