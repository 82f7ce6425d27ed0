package host

import (
	uiloader "github.com/bogrendigital/ui-loader"
)

// Processor is the externally-owned audio-processing object an editor shell
// is built around. The shell stores a back-reference only and never manages
// its lifetime; the processor must outlive the shell.
type Processor interface {
	// Name identifies the plugin in diagnostics.
	Name() string
}

// PluginView is the callback surface a host drives. Paint and Resized may be
// called arbitrarily often, in any order, on the host's UI thread, from the
// moment construction returns until Close.
type PluginView interface {
	// Paint fills the visible surface. Invoked on every redraw.
	Paint(s uiloader.Surface)

	// Resized recomputes layout after the view's bounds changed.
	Resized()

	// SetBounds updates the view's bounds and triggers Resized.
	SetBounds(r uiloader.Rect)

	// Bounds returns the view's current bounds.
	Bounds() uiloader.Rect

	// Close tears the view down. Idempotent.
	Close() error
}

// ResizeLimits is the window sizing contract exposed to the host.
type ResizeLimits struct {
	MinW int
	MinH int
	MaxW int
	MaxH int
}

// DefaultResizeLimits matches the editor's stock sizing contract.
var DefaultResizeLimits = ResizeLimits{MinW: 400, MinH: 300, MaxW: 1600, MaxH: 1200}

// ClampSize forces a size into the limits.
func (rl ResizeLimits) ClampSize(s uiloader.Size) uiloader.Size {
	if rl.MaxW > 0 && s.W > rl.MaxW {
		s.W = rl.MaxW
	}
	if rl.MaxH > 0 && s.H > rl.MaxH {
		s.H = rl.MaxH
	}
	if s.W < rl.MinW {
		s.W = rl.MinW
	}
	if s.H < rl.MinH {
		s.H = rl.MinH
	}
	return s
}
