// Package layout computes widget geometry for loaded UI descriptions.
//
// The model is a single-axis flex: a container stacks children along its
// Direction, fixed and intrinsic sizes claim space first, Grow children split
// the remainder, and the cross axis is aligned per the container's Align.
// Gap and Padding inset spacing; Min/Max constraints clamp per element.
//
// Apply is a pure function of bounds, styles, and intrinsic sizes, so calling
// it repeatedly with unchanged bounds is idempotent. The parent's content box
// is a hard clip: children are never placed outside it.
package layout
