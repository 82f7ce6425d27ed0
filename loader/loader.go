package loader

import (
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	uiloader "github.com/bogrendigital/ui-loader"
	"github.com/bogrendigital/ui-loader/assets"
	"github.com/bogrendigital/ui-loader/errors"
	"github.com/bogrendigital/ui-loader/layout"
	"github.com/bogrendigital/ui-loader/uidesc"
	"github.com/bogrendigital/ui-loader/widget"
)

// Loader builds a live widget tree from a named UI description and applies
// layout on demand. It exclusively owns the widgets it builds; the container
// it is bound to is owned by the caller and must outlive the Loader.
type Loader struct {
	container *widget.Container
	images    assets.Provider
	source    DescriptionSource
	tracker   *Tracker
	log       *zap.Logger

	desc     *uidesc.Description
	descName string
	handles  []Handle
	closed   bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithSource sets the description source.
func WithSource(s DescriptionSource) Option {
	return func(l *Loader) { l.source = s }
}

// WithLogger sets the loader's logger. Defaults to the package logger.
func WithLogger(log *zap.Logger) Option {
	return func(l *Loader) { l.log = log }
}

// New binds a loader to a container and an image provider. The image table
// must be complete before LoadUI runs; the loader never mutates it.
func New(container *widget.Container, images assets.Provider, opts ...Option) *Loader {
	l := &Loader{
		container: container,
		images:    images,
		tracker:   NewTracker(),
		log:       Logger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadUI resolves, parses, and builds the named description under the
// loader's container, then sizes the container to the loaded content's
// natural size and lays it out.
//
// The call is atomic: on any failure the container is left exactly as it was
// (empty on first load, the previous tree on reload) and a structured error
// is returned. A second LoadUI replaces the first tree wholesale.
func (l *Loader) LoadUI(name string) error {
	if l.closed {
		return errors.Closed(errors.PhaseBuild, "loader")
	}
	if l.container == nil {
		return errors.NotInitialized(errors.PhaseBuild, "container")
	}
	if l.source == nil {
		return errors.NotInitialized(errors.PhaseResolve, "description source")
	}

	data, err := l.source.Resolve(name)
	if err != nil {
		l.log.Warn("description resolution failed",
			zap.String("name", name), zap.Error(err))
		return err
	}

	desc, err := uidesc.Parse(data)
	if err != nil {
		l.log.Warn("description parse failed",
			zap.String("name", name), zap.Error(err))
		return errors.ParseFailed(name, err)
	}

	// Build the whole tree detached from the container so failure cannot
	// leave a partially built UI behind.
	built := make([]widget.Widget, 0, 16)
	children := make([]widget.Widget, 0, len(desc.Root.Children))
	for _, node := range desc.Root.Children {
		w := l.build(node, &built)
		children = append(children, w)
	}

	l.unload()

	l.container.SetStyle(desc.Root.Style)
	l.container.ClearBackground()
	if desc.Root.Background != nil {
		l.container.SetBackground(*desc.Root.Background)
	}
	for _, w := range children {
		l.container.AddChild(w)
	}
	for _, w := range built {
		l.handles = append(l.handles, l.tracker.Attach(w))
	}
	l.desc = desc
	l.descName = name

	nat := l.container.NaturalSize()
	l.container.SetBounds(uiloader.RectOf(nat))
	layout.Apply(l.container)

	l.log.Info("ui loaded",
		zap.String("name", name),
		zap.String("version", desc.Version.String()),
		zap.Int("widgets", len(built)),
		zap.Int("width", nat.W),
		zap.Int("height", nat.H))
	return nil
}

// build constructs the widget for one node, appending every widget created
// (including nested ones) to built.
func (l *Loader) build(node *uidesc.Node, built *[]widget.Widget) widget.Widget {
	var w widget.Widget

	switch node.Kind {
	case uidesc.KindContainer:
		c := widget.NewContainer(node.ID)
		if node.Background != nil {
			c.SetBackground(*node.Background)
		}
		for _, child := range node.Children {
			c.AddChild(l.build(child, built))
		}
		w = c

	case uidesc.KindLabel:
		lbl := widget.NewLabel(node.ID, node.Text)
		if node.FontSize > 0 {
			lbl.SetFontSize(node.FontSize)
		}
		if node.TextColor != nil {
			lbl.SetTextColor(*node.TextColor)
		}
		w = lbl

	case uidesc.KindButton:
		btn := widget.NewButton(node.ID, node.Text)
		if node.Background != nil {
			btn.SetFill(*node.Background)
		}
		if node.TextColor != nil {
			btn.SetTextColor(*node.TextColor)
		}
		w = btn

	case uidesc.KindSlider:
		w = widget.NewSlider(node.ID, node.Min, node.Max, node.Value)

	case uidesc.KindImage:
		w = l.buildImage(node)
	}

	w.SetStyle(node.Style)
	*built = append(*built, w)
	return w
}

// buildImage decodes the node's resource, degrading to a placeholder when
// the resource is absent or undecodable.
func (l *Loader) buildImage(node *uidesc.Node) widget.Widget {
	if l.images == nil {
		l.log.Warn("no image provider, using placeholder", zap.String("src", node.Src))
		return widget.NewPlaceholder(node.ID, node.Src)
	}
	img, err := assets.DecodeImage(l.images, node.Src)
	if err != nil {
		l.log.Warn("image unavailable, using placeholder",
			zap.String("src", node.Src), zap.Error(err))
		return widget.NewPlaceholder(node.ID, node.Src)
	}
	return widget.NewImage(node.ID, node.Src, img)
}

// ApplyLayout recomputes child geometry from the container's current bounds.
// The caller must update the container's bounds first. Safe to call
// repeatedly; a loader with nothing loaded does nothing.
func (l *Loader) ApplyLayout() {
	if l.closed || l.desc == nil {
		return
	}
	layout.Apply(l.container)
}

// Description returns the currently loaded description, or nil.
func (l *Loader) Description() *uidesc.Description {
	return l.desc
}

// DescriptionName returns the name the current description was loaded under.
func (l *Loader) DescriptionName() string {
	return l.descName
}

// Container returns the container the loader is bound to.
func (l *Loader) Container() *widget.Container {
	return l.container
}

// Tracker returns the widget lifecycle tracker. Test harnesses subscribe to
// it to verify that Close leaks nothing.
func (l *Loader) Tracker() *Tracker {
	return l.tracker
}

// unload detaches the current tree, leaving the container empty.
func (l *Loader) unload() {
	if l.desc == nil && len(l.handles) == 0 {
		return
	}
	l.container.RemoveAll()
	for _, h := range l.handles {
		l.tracker.Detach(h)
	}
	l.handles = nil
	l.desc = nil
	l.descName = ""
}

// Close releases the widget tree. It must run before the container is
// destroyed, since the tree is visually parented under it. Close is
// idempotent.
func (l *Loader) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true

	l.unload()
	err := l.tracker.Close()
	if c, ok := l.source.(io.Closer); ok {
		err = multierr.Append(err, c.Close())
	}
	return err
}
