package layout

// Direction selects the main axis a container stacks its children along.
type Direction uint8

const (
	DirRow Direction = iota
	DirColumn
)

// Align positions children on a container's cross axis.
type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

// Style carries the layout properties of one element.
//
// Width/Height of 0 mean "auto": the element's intrinsic size is used.
// MaxWidth/MaxHeight of 0 mean unbounded.
type Style struct {
	Direction Direction // containers: main axis for children
	Align     Align     // containers: cross-axis alignment of children
	Grow      bool      // absorb a share of leftover main-axis space
	Gap       int       // containers: pixels between adjacent children
	Padding   int       // containers: inset of the content box

	Width     int
	Height    int
	MinWidth  int
	MinHeight int
	MaxWidth  int
	MaxHeight int
}

// clamp applies the style's min/max constraints to one axis.
func clamp(v, min, max int) int {
	if max > 0 && v > max {
		v = max
	}
	if v < min {
		v = min
	}
	if v < 0 {
		v = 0
	}
	return v
}
