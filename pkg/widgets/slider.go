package widgets

import (
	"math"

	"github.com/go-drift/retained/pkg/graphics"
	"github.com/go-drift/retained/pkg/ui"
)

// Slider requests. A SliderValue echo carries the value actually applied
// after clamping and snapping.
type (
	SliderValue struct{ Value float32 }
	SliderRange struct{ Min, Max float32 }
	SliderStep  struct{ Step float32 }
)

// Slider selects a value in [min, max]. Dragging with the left button
// holds the mouse capture so the value keeps following the cursor outside
// the track. Arrow keys move by one step, Home and End jump to the ends.
type Slider struct {
	ui.Widget
	value       float32
	min         float32
	max         float32
	step        float32
	orientation Orientation
	dragging    bool
}

func (s *Slider) Value() float32           { return s.value }
func (s *Slider) Range() (lo, hi float32)  { return s.min, s.max }
func (s *Slider) Step() float32            { return s.step }
func (s *Slider) Orientation() Orientation { return s.orientation }
func (s *Slider) IsDragging() bool         { return s.dragging }

// coerce clamps v into range and snaps it to the nearest step from min.
func (s *Slider) coerce(v float32) float32 {
	v = graphics.Clamp(v, s.min, s.max)
	if s.step > 0 {
		n := math.Round(float64((v - s.min) / s.step))
		v = min(s.min+float32(n)*s.step, s.max)
	}
	return v
}

// fraction returns the position of the value along the track in [0,1].
func (s *Slider) fraction() float32 {
	if s.max <= s.min {
		return 0
	}
	return (s.value - s.min) / (s.max - s.min)
}

func (s *Slider) valueAt(pos graphics.Vec2) float32 {
	local := pos.Sub(s.ScreenPosition())
	size := s.ActualSize()
	var f float32
	if s.orientation == Vertical {
		if size.Y > 0 {
			f = 1 - local.Y/size.Y
		}
	} else if size.X > 0 {
		f = local.X / size.X
	}
	return s.min + graphics.Clamp(f, 0, 1)*(s.max-s.min)
}

func (s *Slider) keyStep() float32 {
	if s.step > 0 {
		return s.step
	}
	return (s.max - s.min) / 100
}

// HandleRoutedMessage drags the thumb, steps on arrow keys and applies SliderValue and SliderRange.
func (s *Slider) HandleRoutedMessage(u *ui.UserInterface, msg *ui.Message) {
	s.Widget.HandleRoutedMessage(u, msg)
	self := s.Handle()

	if msg.Direction == ui.FromWidget {
		if msg.Destination != self && !u.HasDescendant(msg.Destination, self) {
			return
		}
		switch m := msg.Data.(type) {
		case ui.WidgetMouseDown:
			if m.Button == ui.MouseLeft && !msg.Handled() {
				s.dragging = u.CaptureMouse(self)
				u.Send(ui.To(self, SliderValue{Value: s.valueAt(m.Position)}))
				msg.SetHandled(true)
			}
		case ui.WidgetMouseMove:
			if s.dragging {
				u.Send(ui.To(self, SliderValue{Value: s.valueAt(m.Position)}))
				msg.SetHandled(true)
			}
		case ui.WidgetMouseUp:
			if m.Button == ui.MouseLeft && s.dragging {
				s.dragging = false
				if u.CapturedNode() == self {
					u.ReleaseMouseCapture()
				}
				msg.SetHandled(true)
			}
		case ui.WidgetKeyDown:
			if msg.Destination != self || msg.Handled() {
				return
			}
			v, ok := s.value, true
			switch m.Key {
			case ui.KeyLeft, ui.KeyDown:
				v -= s.keyStep()
			case ui.KeyRight, ui.KeyUp:
				v += s.keyStep()
			case ui.KeyHome:
				v = s.min
			case ui.KeyEnd:
				v = s.max
			default:
				ok = false
			}
			if ok {
				u.Send(ui.To(self, SliderValue{Value: v}))
				msg.SetHandled(true)
			}
		}
		return
	}

	if msg.Destination != self {
		return
	}
	switch m := msg.Data.(type) {
	case SliderValue:
		if v := s.coerce(m.Value); v != s.value {
			s.value = v
			echo := msg.Reverse()
			echo.Data = SliderValue{Value: v}
			u.Send(echo)
		}
	case SliderRange:
		lo, hi := m.Min, m.Max
		if hi < lo {
			lo, hi = hi, lo
		}
		if lo != s.min || hi != s.max {
			s.min, s.max = lo, hi
			u.Send(msg.Reverse())
			u.Send(ui.To(self, SliderValue{Value: s.value}))
		}
	case SliderStep:
		if step := max(m.Step, 0); step != s.step {
			s.step = step
			u.Send(msg.Reverse())
			u.Send(ui.To(self, SliderValue{Value: s.value}))
		}
	}
}

func (s *Slider) Draw(dc *graphics.DrawingContext) {
	s.Widget.Draw(dc)
	b := s.ScreenBounds()
	f := s.fraction()
	filled := b
	if s.orientation == Vertical {
		filled.Height = b.Height * f
		filled.Y = b.Bottom() - filled.Height
	} else {
		filled.Width = b.Width * f
	}
	dc.FillRect(filled, s.Foreground())
}

// SliderBuilder builds a Slider. The default range is [0, 1] with no step.
type SliderBuilder struct {
	wb          *ui.WidgetBuilder
	value       float32
	min         float32
	max         float32
	step        float32
	orientation Orientation
}

// NewSliderBuilder creates a builder for a Slider over [0, 1].
func NewSliderBuilder(wb *ui.WidgetBuilder) *SliderBuilder {
	return &SliderBuilder{wb: wb, max: 1, orientation: Horizontal}
}

func (b *SliderBuilder) WithValue(v float32) *SliderBuilder {
	b.value = v
	return b
}

// WithRange sets the bounds of the value.
func (b *SliderBuilder) WithRange(lo, hi float32) *SliderBuilder {
	if hi < lo {
		lo, hi = hi, lo
	}
	b.min, b.max = lo, hi
	return b
}

// WithStep snaps values to multiples of step. Zero disables snapping.
func (b *SliderBuilder) WithStep(step float32) *SliderBuilder {
	b.step = max(step, 0)
	return b
}

func (b *SliderBuilder) WithOrientation(o Orientation) *SliderBuilder {
	b.orientation = o
	return b
}

// Build adds the slider to u with its value coerced into range.
func (b *SliderBuilder) Build(u *ui.UserInterface) ui.Handle {
	s := &Slider{
		Widget:      b.wb.Build(),
		min:         b.min,
		max:         b.max,
		step:        b.step,
		orientation: b.orientation,
	}
	s.value = s.coerce(b.value)
	return u.AddNode(s)
}
