package editor

import (
	"go.uber.org/zap"

	uiloader "github.com/bogrendigital/ui-loader"
	"github.com/bogrendigital/ui-loader/assets"
	"github.com/bogrendigital/ui-loader/errors"
	"github.com/bogrendigital/ui-loader/host"
	"github.com/bogrendigital/ui-loader/loader"
	"github.com/bogrendigital/ui-loader/widget"
)

// DefaultDescriptionName is the description an editor loads unless overridden.
const DefaultDescriptionName = "my_plugin_ui.xml"

// Editor is the GUI shell of an audio plugin: it owns a container surface and
// a Loader, forwards the host's paint/resize callbacks, and exposes the
// window sizing contract. Construction completes the only state transition;
// afterwards the editor is Active until Close.
type Editor struct {
	proc      host.Processor
	images    assets.Provider
	source    loader.DescriptionSource
	container *widget.Container
	ld        *loader.Loader
	log       *zap.Logger

	theme     Theme
	themeSet  bool
	descName  string
	limits    host.ResizeLimits
	resizable bool
	bounds    uiloader.Rect
	closed    bool
}

var _ host.PluginView = (*Editor)(nil)

// Option configures an Editor.
type Option func(*Editor)

// WithAssets sets the compiled-in resource provider (images, theme).
func WithAssets(p assets.Provider) Option {
	return func(e *Editor) { e.images = p }
}

// WithDescriptionSource sets the namespace description names resolve in.
func WithDescriptionSource(s loader.DescriptionSource) Option {
	return func(e *Editor) { e.source = s }
}

// WithDescriptionName overrides the description loaded at construction.
func WithDescriptionName(name string) Option {
	return func(e *Editor) { e.descName = name }
}

// WithTheme overrides theme resolution entirely.
func WithTheme(t Theme) Option {
	return func(e *Editor) {
		e.theme = t
		e.themeSet = true
	}
}

// WithResizeLimits overrides the stock 400x300..1600x1200 sizing contract.
func WithResizeLimits(rl host.ResizeLimits) Option {
	return func(e *Editor) { e.limits = rl }
}

// WithLogger sets the editor's logger. Defaults to the package logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Editor) { e.log = log }
}

// New builds the editor shell: container, loader, initial description load,
// resize limits, and the initial size from the loaded content.
//
// A description that fails to resolve or parse does not fail construction:
// the editor comes up Active with a blank container at the minimum size and
// the error is returned alongside it for diagnostics. Only invalid wiring
// (a nil processor) returns a nil editor.
func New(proc host.Processor, opts ...Option) (*Editor, error) {
	if proc == nil {
		return nil, errors.InvalidInput(errors.PhaseShell, "nil processor")
	}

	e := &Editor{
		proc:      proc,
		descName:  DefaultDescriptionName,
		limits:    host.DefaultResizeLimits,
		resizable: true,
		theme:     DefaultTheme,
		log:       Logger(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.container = widget.NewContainer("uiContainer")
	e.ld = loader.New(e.container, e.images,
		loader.WithSource(e.source),
		loader.WithLogger(e.log),
	)

	if !e.themeSet {
		e.resolveTheme()
	}

	loadErr := e.ld.LoadUI(e.descName)
	if loadErr != nil {
		e.log.Warn("editor up with blank ui",
			zap.String("plugin", proc.Name()),
			zap.String("description", e.descName),
			zap.Error(loadErr))
	}

	// Initial size comes from the loaded content, clamped into the window
	// sizing contract. A blank UI starts at the minimum.
	size := e.limits.ClampSize(e.container.Bounds().Size())
	e.bounds = uiloader.RectOf(size)
	e.Resized()

	return e, loadErr
}

// resolveTheme looks the theme resource up in the asset table, keeping the
// built-in theme on absence or parse failure.
func (e *Editor) resolveTheme() {
	if e.images == nil {
		return
	}
	data, ok := e.images.Lookup(ThemeResourceName)
	if !ok {
		data, ok = e.images.Lookup(assets.MangleName(ThemeResourceName))
	}
	if !ok {
		return
	}
	theme, err := ParseTheme(data)
	if err != nil {
		e.log.Warn("theme resource ignored", zap.Error(err))
		return
	}
	e.theme = theme
}

// Paint fills the view with the theme background. Runs on every redraw; no
// allocation, no failure mode, safe before any Resized.
func (e *Editor) Paint(s uiloader.Surface) {
	s.FillRect(uiloader.Rect{W: e.bounds.W, H: e.bounds.H}, e.theme.Background)
}

// Resized sizes the container to the shell's current bounds, then applies
// layout. The ordering is mandatory: layout reads the container's bounds.
func (e *Editor) Resized() {
	if e.closed {
		return
	}
	e.container.SetBounds(uiloader.Rect{W: e.bounds.W, H: e.bounds.H})
	e.ld.ApplyLayout()
}

// SetBounds updates the shell's bounds, clamped into the resize limits, and
// triggers Resized.
func (e *Editor) SetBounds(r uiloader.Rect) {
	size := e.limits.ClampSize(r.Size())
	e.bounds = uiloader.Rect{X: r.X, Y: r.Y, W: size.W, H: size.H}
	e.Resized()
}

// Bounds returns the shell's current bounds.
func (e *Editor) Bounds() uiloader.Rect {
	return e.bounds
}

// Resizable reports whether the host may resize the view, per axis.
func (e *Editor) Resizable() (horizontal, vertical bool) {
	return e.resizable, e.resizable
}

// ResizeLimits returns the window sizing contract exposed to the host.
func (e *Editor) ResizeLimits() host.ResizeLimits {
	return e.limits
}

// Theme returns the shell's resolved theme.
func (e *Editor) Theme() Theme {
	return e.theme
}

// Container returns the container surface the UI is loaded under. The host's
// paint pass draws it after the shell's background fill.
func (e *Editor) Container() *widget.Container {
	return e.container
}

// Loader returns the editor's UI loader.
func (e *Editor) Loader() *loader.Loader {
	return e.ld
}

// Processor returns the back-reference to the audio processor.
func (e *Editor) Processor() host.Processor {
	return e.proc
}

// Close releases the loader, and with it the widget tree, before the
// container goes away. Idempotent.
func (e *Editor) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	return e.ld.Close()
}
