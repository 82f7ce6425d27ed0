package uidesc

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/coreos/go-semver/semver"
	"go.uber.org/zap"

	uiloader "github.com/bogrendigital/ui-loader"
	"github.com/bogrendigital/ui-loader/errors"
	"github.com/bogrendigital/ui-loader/layout"
)

// SchemaMajor is the description schema major version this parser accepts.
const SchemaMajor = 1

// defaultVersion applies when a description omits the version attribute.
var defaultVersion = semver.Version{Major: 1}

type xmlElem struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []xmlElem  `xml:",any"`
}

func (e *xmlElem) attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Parse validates and converts a UI description document.
//
// The whole document is validated up front: a malformed element anywhere
// fails the parse, so a loader never sees a partially usable description.
func Parse(data []byte) (*Description, error) {
	var root xmlElem
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(errors.PhaseParse, errors.KindInvalidData, err, "malformed XML")
	}

	if root.XMLName.Local != "UI" {
		return nil, errors.Unsupported(errors.PhaseParse, []string{root.XMLName.Local},
			fmt.Sprintf("root element must be <UI>, got <%s>", root.XMLName.Local))
	}

	version := defaultVersion
	if raw, ok := root.attr("version"); ok {
		v, err := semver.NewVersion(raw)
		if err != nil {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidData).
				Path("UI").
				Detail("version %q is not a semantic version", raw).
				Cause(err).
				Build()
		}
		version = *v
	}
	if version.Major != SchemaMajor {
		return nil, errors.VersionMismatch(version.String(), fmt.Sprintf("%d.x", SchemaMajor))
	}

	node, err := convert(&root, []string{"UI"})
	if err != nil {
		return nil, err
	}

	Logger().Debug("description parsed",
		zap.String("version", version.String()),
		zap.Int("elements", countNodes(node)))

	return &Description{Version: version, Root: node}, nil
}

func countNodes(n *Node) int {
	total := 1
	for _, c := range n.Children {
		total += countNodes(c)
	}
	return total
}

func convert(e *xmlElem, path []string) (*Node, error) {
	n := &Node{}
	n.ID, _ = e.attr("id")

	switch e.XMLName.Local {
	case "UI", "Container":
		n.Kind = KindContainer
	case "Label":
		n.Kind = KindLabel
	case "Image":
		n.Kind = KindImage
	case "Button":
		n.Kind = KindButton
	case "Slider":
		n.Kind = KindSlider
	default:
		return nil, errors.Unsupported(errors.PhaseParse, path,
			fmt.Sprintf("unknown element <%s>", e.XMLName.Local))
	}

	if err := parseStyle(e, &n.Style, path); err != nil {
		return nil, err
	}

	switch n.Kind {
	case KindContainer:
		if c, ok := e.attr("background"); ok {
			col, err := ParseColor(c)
			if err != nil {
				return nil, attrErr(path, "background", err)
			}
			n.Background = &col
		}
		for _, child := range e.Children {
			childPath := append(append([]string{}, path...), child.XMLName.Local)
			cn, err := convert(&child, childPath)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, cn)
		}
		return n, nil

	case KindLabel, KindButton:
		n.Text, _ = e.attr("text")
		if raw, ok := e.attr("fontSize"); ok {
			v, err := strconv.Atoi(raw)
			if err != nil || v <= 0 {
				return nil, attrErr(path, "fontSize", fmt.Errorf("%q is not a positive integer", raw))
			}
			n.FontSize = v
		}
		if c, ok := e.attr("textColor"); ok {
			col, err := ParseColor(c)
			if err != nil {
				return nil, attrErr(path, "textColor", err)
			}
			n.TextColor = &col
		}
		if n.Kind == KindButton {
			if c, ok := e.attr("background"); ok {
				col, err := ParseColor(c)
				if err != nil {
					return nil, attrErr(path, "background", err)
				}
				n.Background = &col
			}
		}

	case KindImage:
		n.Src, _ = e.attr("src")
		if n.Src == "" {
			return nil, errors.InvalidData(errors.PhaseParse, path, "Image requires a src attribute")
		}

	case KindSlider:
		n.Min, n.Max, n.Value = 0, 1, 0
		for _, f := range []struct {
			name string
			dst  *float64
		}{
			{"min", &n.Min},
			{"max", &n.Max},
			{"value", &n.Value},
		} {
			if raw, ok := e.attr(f.name); ok {
				v, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return nil, attrErr(path, f.name, fmt.Errorf("%q is not a number", raw))
				}
				*f.dst = v
			}
		}
		if n.Max <= n.Min {
			return nil, errors.InvalidData(errors.PhaseParse, path,
				fmt.Sprintf("slider range [%g, %g] is empty", n.Min, n.Max))
		}
	}

	if len(e.Children) > 0 {
		return nil, errors.InvalidData(errors.PhaseParse, path,
			fmt.Sprintf("<%s> cannot have children", e.XMLName.Local))
	}
	return n, nil
}

func parseStyle(e *xmlElem, st *layout.Style, path []string) error {
	if raw, ok := e.attr("direction"); ok {
		switch raw {
		case "row":
			st.Direction = layout.DirRow
		case "column":
			st.Direction = layout.DirColumn
		default:
			return attrErr(path, "direction", fmt.Errorf("%q is not row or column", raw))
		}
	}
	if raw, ok := e.attr("align"); ok {
		switch raw {
		case "start":
			st.Align = layout.AlignStart
		case "center":
			st.Align = layout.AlignCenter
		case "end":
			st.Align = layout.AlignEnd
		case "stretch":
			st.Align = layout.AlignStretch
		default:
			return attrErr(path, "align", fmt.Errorf("%q is not start, center, end, or stretch", raw))
		}
	}
	if raw, ok := e.attr("grow"); ok {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return attrErr(path, "grow", fmt.Errorf("%q is not a boolean", raw))
		}
		st.Grow = v
	}

	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"gap", &st.Gap},
		{"padding", &st.Padding},
		{"width", &st.Width},
		{"height", &st.Height},
		{"minWidth", &st.MinWidth},
		{"minHeight", &st.MinHeight},
		{"maxWidth", &st.MaxWidth},
		{"maxHeight", &st.MaxHeight},
	} {
		raw, ok := e.attr(f.name)
		if !ok {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return attrErr(path, f.name, fmt.Errorf("%q is not a non-negative integer", raw))
		}
		*f.dst = v
	}
	return nil
}

func attrErr(path []string, attr string, cause error) error {
	return errors.New(errors.PhaseParse, errors.KindInvalidData).
		Path(path...).
		Detail("attribute %q: %v", attr, cause).
		Build()
}

// ParseColor parses #RRGGBB or #RRGGBBAA hex notation.
func ParseColor(s string) (uiloader.Color, error) {
	if len(s) == 0 || s[0] != '#' || (len(s) != 7 && len(s) != 9) {
		return uiloader.Color{}, fmt.Errorf("%q is not #RRGGBB or #RRGGBBAA", s)
	}
	raw, err := strconv.ParseUint(s[1:], 16, 64)
	if err != nil {
		return uiloader.Color{}, fmt.Errorf("%q is not valid hex", s)
	}
	if len(s) == 7 {
		return uiloader.Color{
			R: uint8(raw >> 16),
			G: uint8(raw >> 8),
			B: uint8(raw),
			A: 0xFF,
		}, nil
	}
	return uiloader.Color{
		R: uint8(raw >> 24),
		G: uint8(raw >> 16),
		B: uint8(raw >> 8),
		A: uint8(raw),
	}, nil
}
