package wheel

import (
	"github.com/irfansharif/huewheel/internal/colormodel"
	"github.com/irfansharif/huewheel/internal/geom"
)

// Target identifies the widget a pointer gesture belongs to.
type Target int

const (
	None Target = iota
	Wheel
	Slider
)

func (t Target) String() string {
	switch t {
	case Wheel:
		return "wheel"
	case Slider:
		return "slider"
	default:
		return "none"
	}
}

// Kind is the pointer event type.
type Kind int

const (
	Down Kind = iota
	Move
	Up
)

// Event is one discrete pointer update. The position is given relative to
// both widgets so a drag that leaves its widget keeps tracking it.
type Event struct {
	Kind   Kind
	Target Target     // widget under the pointer; only read for Down
	Wheel  geom.Point // position relative to the wheel canvas' top-left corner
	Slider geom.Point // position relative to the slider's top-left corner
}

// State is the interaction session: the current color and the widget being
// dragged, if any.
type State struct {
	HSL      colormodel.HSL
	Dragging Target
}

// NewState starts a session at hex.
func NewState(hex string) (State, error) {
	hsl, err := colormodel.HexToHSL(hex)
	if err != nil {
		return State{}, err
	}
	return State{HSL: hsl}, nil
}

// Hex is the current base color.
func (s State) Hex() string { return s.HSL.Hex() }

// Reduce applies ev to s and reports whether the color changed. Pointer-down
// on a widget starts a drag on it (even when the wheel press lands outside the
// outer radius, which picks nothing), moves update the dragged widget and
// pointer-up ends the drag. Moves without an active drag are ignored.
func (g Geometry) Reduce(s State, ev Event) (State, bool) {
	switch ev.Kind {
	case Down:
		if ev.Target == None {
			return s, false
		}
		s.Dragging = ev.Target
		return g.apply(s, ev)
	case Move:
		return g.apply(s, ev)
	case Up:
		s.Dragging = None
		return s, false
	}
	return s, false
}

func (g Geometry) apply(s State, ev Event) (State, bool) {
	prev := s.HSL
	switch s.Dragging {
	case Wheel:
		hsl, ok := g.PickWheel(s.HSL, ev.Wheel.Sub(g.Center()))
		if !ok {
			return s, false
		}
		s.HSL = hsl
	case Slider:
		s.HSL = g.PickSlider(s.HSL, ev.Slider.X)
	default:
		return s, false
	}
	return s, s.HSL != prev
}
