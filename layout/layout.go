package layout

import (
	uiloader "github.com/bogrendigital/ui-loader"
)

// Layoutable is the interface for anything that can participate in layout
// calculation. The engine works entirely with this interface; the widget
// package provides the canonical implementation.
type Layoutable interface {
	// LayoutStyle returns the layout style properties for this element.
	LayoutStyle() Style

	// LayoutChildren returns the children to be laid out.
	LayoutChildren() []Layoutable

	// SetBounds stores computed geometry.
	SetBounds(uiloader.Rect)

	// Bounds returns the last computed geometry.
	Bounds() uiloader.Rect

	// IntrinsicSize returns the natural content-based dimensions of a leaf
	// element. Containers may return the zero Size; their natural size is
	// derived from their children.
	IntrinsicSize() uiloader.Size
}

// Apply recomputes the geometry of root's descendants from root's current
// bounds. The caller must update root's bounds first; applying layout against
// stale bounds produces a stale layout.
//
// Apply is deterministic and idempotent: identical bounds, styles, and
// intrinsic sizes always yield identical geometry. Children are never placed
// outside their parent's content box, even when min-size constraints cannot
// be satisfied.
func Apply(root Layoutable) {
	layoutChildren(root)
}

func layoutChildren(parent Layoutable) {
	children := parent.LayoutChildren()
	if len(children) == 0 {
		return
	}

	st := parent.LayoutStyle()
	content := parent.Bounds().Inset(st.Padding)
	horizontal := st.Direction == DirRow

	mainExtent, crossExtent := content.W, content.H
	if !horizontal {
		mainExtent, crossExtent = content.H, content.W
	}

	// Pass 1: natural main-axis sizes; fixed and intrinsic children claim
	// space first, grow children split what remains.
	type slot struct {
		main  int
		cross int
		grow  bool
	}
	slots := make([]slot, len(children))

	totalFixed := 0
	growCount := 0
	for i, child := range children {
		cs := child.LayoutStyle()
		nat := Natural(child)
		if horizontal {
			slots[i] = slot{main: nat.W, cross: nat.H, grow: cs.Grow}
		} else {
			slots[i] = slot{main: nat.H, cross: nat.W, grow: cs.Grow}
		}
		if cs.Grow {
			growCount++
		} else {
			totalFixed += slots[i].main
		}
	}

	gapTotal := st.Gap * (len(children) - 1)
	free := mainExtent - gapTotal - totalFixed
	perGrow := 0
	if growCount > 0 && free > 0 {
		perGrow = free / growCount
	}

	// Pass 2: final sizes with per-child min/max clamps, then sequential
	// placement with cross-axis alignment. The content box is a hard clip.
	offset := 0
	for i, child := range children {
		cs := child.LayoutStyle()
		s := slots[i]

		main := s.main
		if s.grow {
			main = perGrow
		}
		cross := s.cross
		if st.Align == AlignStretch {
			cross = crossExtent
		}

		if horizontal {
			main = clamp(main, cs.MinWidth, cs.MaxWidth)
			cross = clamp(cross, cs.MinHeight, cs.MaxHeight)
		} else {
			main = clamp(main, cs.MinHeight, cs.MaxHeight)
			cross = clamp(cross, cs.MinWidth, cs.MaxWidth)
		}

		// Hard-clip to the content box.
		if offset > mainExtent {
			offset = mainExtent
		}
		if offset+main > mainExtent {
			main = mainExtent - offset
		}
		if main < 0 {
			main = 0
		}
		if cross > crossExtent {
			cross = crossExtent
		}
		if cross < 0 {
			cross = 0
		}

		crossOffset := 0
		switch st.Align {
		case AlignCenter:
			crossOffset = (crossExtent - cross) / 2
		case AlignEnd:
			crossOffset = crossExtent - cross
		}
		if crossOffset < 0 {
			crossOffset = 0
		}

		var b uiloader.Rect
		if horizontal {
			b = uiloader.Rect{X: content.X + offset, Y: content.Y + crossOffset, W: main, H: cross}
		} else {
			b = uiloader.Rect{X: content.X + crossOffset, Y: content.Y + offset, W: main, H: cross}
		}
		child.SetBounds(b)
		layoutChildren(child)

		offset += main + st.Gap
	}
}

// Natural computes the preferred size of an element before any space
// distribution: fixed dimensions win, containers sum their children along
// the main axis and take the cross-axis maximum, leaves report their
// intrinsic size. Min/max clamps apply last.
func Natural(l Layoutable) uiloader.Size {
	st := l.LayoutStyle()
	children := l.LayoutChildren()

	var w, h int
	if len(children) == 0 {
		sz := l.IntrinsicSize()
		w, h = sz.W, sz.H
	} else {
		mainSum, crossMax := 0, 0
		for _, child := range children {
			nat := Natural(child)
			if st.Direction == DirRow {
				mainSum += nat.W
				if nat.H > crossMax {
					crossMax = nat.H
				}
			} else {
				mainSum += nat.H
				if nat.W > crossMax {
					crossMax = nat.W
				}
			}
		}
		mainSum += st.Gap * (len(children) - 1)
		if st.Direction == DirRow {
			w, h = mainSum, crossMax
		} else {
			w, h = crossMax, mainSum
		}
		w += 2 * st.Padding
		h += 2 * st.Padding
	}

	if st.Width > 0 {
		w = st.Width
	}
	if st.Height > 0 {
		h = st.Height
	}
	w = clamp(w, st.MinWidth, st.MaxWidth)
	h = clamp(h, st.MinHeight, st.MaxHeight)
	return uiloader.Size{W: w, H: h}
}
