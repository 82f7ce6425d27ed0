package loader

import (
	"io/fs"
	"path"

	"github.com/bogrendigital/ui-loader/assets"
	"github.com/bogrendigital/ui-loader/errors"
)

// DescriptionSource resolves a logical description name to its bytes. The
// description namespace is distinct from the image table, though both are
// typically compiled in.
type DescriptionSource interface {
	Resolve(name string) ([]byte, error)
}

// MapSource is an in-memory description source, used by tests and embedders
// that generate descriptions at runtime.
type MapSource map[string][]byte

// Resolve returns the named description.
func (m MapSource) Resolve(name string) ([]byte, error) {
	data, ok := m[name]
	if !ok {
		return nil, errors.NotFound(errors.PhaseResolve, "description", name)
	}
	return data, nil
}

// FSSource resolves descriptions from a filesystem, typically an embed.FS.
type FSSource struct {
	fsys fs.FS
	root string
}

// NewFSSource returns a source rooted at root within fsys.
// Pass "." to resolve against the whole filesystem.
func NewFSSource(fsys fs.FS, root string) *FSSource {
	return &FSSource{fsys: fsys, root: root}
}

// Resolve reads the named description file.
func (s *FSSource) Resolve(name string) ([]byte, error) {
	data, err := fs.ReadFile(s.fsys, path.Join(s.root, name))
	if err != nil {
		return nil, errors.New(errors.PhaseResolve, errors.KindNotFound).
			Resource(name).
			Detail("description not found").
			Cause(err).
			Build()
	}
	return data, nil
}

// ProviderSource resolves descriptions through an asset provider, for plugins
// that compile descriptions into the same binary-data table as their images.
type ProviderSource struct {
	provider assets.Provider
}

// NewProviderSource wraps an asset provider as a description source.
func NewProviderSource(p assets.Provider) *ProviderSource {
	return &ProviderSource{provider: p}
}

// Resolve looks the name up in the asset table, trying the mangled
// identifier as a fallback.
func (s *ProviderSource) Resolve(name string) ([]byte, error) {
	if data, ok := s.provider.Lookup(name); ok {
		return data, nil
	}
	if data, ok := s.provider.Lookup(assets.MangleName(name)); ok {
		return data, nil
	}
	return nil, errors.NotFound(errors.PhaseResolve, "description", name)
}
