package widget

import (
	uiloader "github.com/bogrendigital/ui-loader"
)

var (
	sliderTrack = uiloader.Color{R: 0x2A, G: 0x2A, B: 0x30, A: 0xFF}
	sliderFill  = uiloader.Color{R: 0x7D, G: 0x56, B: 0xF4, A: 0xFF}
)

// Slider is a horizontal value display for a plugin parameter. Parameter
// automation and input stay with the host; the widget renders the current
// normalized position.
type Slider struct {
	Base
	min   float64
	max   float64
	value float64
}

// NewSlider returns a slider over [min, max] at the given value.
// A degenerate range collapses to [0, 1].
func NewSlider(id string, min, max, value float64) *Slider {
	if max <= min {
		min, max = 0, 1
	}
	s := &Slider{Base: NewBase(id), min: min, max: max}
	s.SetValue(value)
	return s
}

// SetValue clamps v into the slider's range.
func (sl *Slider) SetValue(v float64) {
	if v < sl.min {
		v = sl.min
	}
	if v > sl.max {
		v = sl.max
	}
	sl.value = v
}

// Value returns the current value.
func (sl *Slider) Value() float64 { return sl.value }

// Normalized returns the value mapped to [0, 1].
func (sl *Slider) Normalized() float64 {
	return (sl.value - sl.min) / (sl.max - sl.min)
}

// IntrinsicSize returns the default track size.
func (sl *Slider) IntrinsicSize() uiloader.Size {
	return uiloader.Size{W: 120, H: 20}
}

// Paint draws the track and the filled portion up to the current value.
func (sl *Slider) Paint(s uiloader.Surface) {
	s.FillRect(sl.bounds, sliderTrack)
	filled := sl.bounds
	filled.W = int(float64(sl.bounds.W) * sl.Normalized())
	s.FillRect(filled, sliderFill)
}
