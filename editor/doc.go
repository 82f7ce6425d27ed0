// Package editor provides the GUI shell of an audio plugin.
//
// The shell wires a Loader and a container surface into the host's
// view-lifecycle callbacks:
//
//	ed, err := editor.New(proc,
//	    editor.WithAssets(images),
//	    editor.WithDescriptionSource(descs),
//	)
//	if err != nil {
//	    // ed is still usable: blank UI, error carries diagnostics
//	}
//	defer ed.Close()
//
// Construction performs the single Uninitialized → Active transition:
// provider, loader, initial LoadUI, resize limits (400x300 to 1600x1200,
// both axes resizable), and the initial size from the loaded content.
// Afterwards Paint and Resized are host-driven and may arrive in any order,
// any number of times. Resized always sizes the container before applying
// layout. Close releases the loader — and the widget tree it owns — before
// the container, and is idempotent.
package editor
