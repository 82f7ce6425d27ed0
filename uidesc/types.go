package uidesc

import (
	"github.com/coreos/go-semver/semver"

	uiloader "github.com/bogrendigital/ui-loader"
	"github.com/bogrendigital/ui-loader/layout"
)

// Kind identifies a description element.
type Kind uint8

const (
	KindContainer Kind = iota
	KindLabel
	KindImage
	KindButton
	KindSlider
)

// String returns the element name as written in descriptions.
func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "Container"
	case KindLabel:
		return "Label"
	case KindImage:
		return "Image"
	case KindButton:
		return "Button"
	case KindSlider:
		return "Slider"
	default:
		return "Unknown"
	}
}

// Node is one element of a parsed description. Nodes are immutable after
// Parse returns; the loader reads them to build widgets but never writes.
type Node struct {
	Kind     Kind
	ID       string
	Style    layout.Style
	Children []*Node

	// Leaf payloads; meaning depends on Kind.
	Text       string          // Label, Button
	Src        string          // Image: image resource name
	FontSize   int             // Label, Button; 0 = widget default
	TextColor  *uiloader.Color // Label, Button
	Background *uiloader.Color // Container, Button

	// Slider range.
	Min   float64
	Max   float64
	Value float64
}

// Description is the opaque parsed representation of one named UI
// description. A Loader owns at most one at a time.
type Description struct {
	Version semver.Version
	Root    *Node
}
