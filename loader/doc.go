// Package loader turns named UI descriptions into live widget trees.
//
// A Loader is bound at construction to a container and an image provider:
//
//	l := loader.New(container, images, loader.WithSource(descs))
//	if err := l.LoadUI("my_plugin_ui.xml"); err != nil {
//	    // container untouched; log and show a blank UI
//	}
//	defer l.Close()
//
// LoadUI is atomic: the tree is built fully detached and only attached on
// success. On success the container is sized to the content's natural size.
// ApplyLayout recomputes geometry from the container's current bounds and
// must be called after those bounds change, never before.
//
// # Ownership
//
// The Loader exclusively owns the widgets it builds and records them in a
// Tracker; Close detaches everything, and must run before the container
// itself is torn down. The container and the image provider belong to the
// caller.
package loader
