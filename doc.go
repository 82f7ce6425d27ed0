// Package uiloader loads declarative XML UI descriptions into live widget
// trees for audio-plugin editors.
//
// The library sits between a plugin's host-facing editor view and its
// compiled-in resources: it resolves a named description, builds the widget
// tree it declares under a container surface, and recomputes layout whenever
// the host resizes the view.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	uiloader/            Root package with geometry types and the Surface interface
//	├── assets/          Named binary resource provider (compiled-in images, themes)
//	├── uidesc/          XML description parsing and validation
//	├── widget/          Live widget tree (Container, Label, Image, Button, Slider)
//	├── layout/          Flex-like layout engine applied on resize
//	├── loader/          UILoader: load a description, apply layout, track lifecycles
//	├── editor/          Editor shell wiring paint/resize host callbacks
//	├── host/            Host-facing view and processor contracts
//	└── errors/          Structured error types for diagnostics
//
// # Quick Start
//
// Build an editor shell around an audio processor:
//
//	ed, err := editor.New(proc,
//	    editor.WithAssets(images),
//	    editor.WithDescriptionSource(descs),
//	)
//	if err != nil {
//	    log.Printf("ui degraded: %v", err)
//	}
//	defer ed.Close()
//
//	// Host callbacks:
//	ed.SetBounds(uiloader.Rect{W: 800, H: 600}) // triggers Resized + layout
//	ed.Paint(surface)                           // fills theme background
//
// # Resize Contract
//
// The container's bounds are always updated before layout is applied. Editor
// Resized() performs both steps in order; callers driving a Loader directly
// must follow the same sequence.
//
// # Error Model
//
// A description that fails to resolve or parse never crashes the host: LoadUI
// fails atomically, the container stays empty, and the error carries the
// element path and resource name for diagnostics. Missing images degrade to
// placeholder widgets.
//
// # Thread Safety
//
// Construction, Paint, and Resized all run on the host's UI thread. Nothing
// in the paint or resize path takes a lock or allocates per call.
package uiloader
