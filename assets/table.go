package assets

import (
	"go.uber.org/zap"

	"github.com/bogrendigital/ui-loader/errors"
)

// Provider answers image-byte-buffer queries by logical name.
//
// An unknown name yields (nil, false), never a panic: descriptions referencing
// missing assets degrade gracefully instead of terminating the host.
type Provider interface {
	// Lookup returns the bytes for a named resource. The returned slice is
	// shared, not copied; callers must treat it as read-only.
	Lookup(name string) ([]byte, bool)

	// OriginalFilename returns the source filename the resource was compiled
	// from, when known.
	OriginalFilename(name string) (string, bool)

	// Names lists all resource names in table order.
	Names() []string

	// Len returns the number of resources in the table.
	Len() int
}

// ResourceFunc returns the byte buffer for the resource at index i, or nil if
// the index is out of range. Mirrors the by-index accessor of a compiled-in
// binary-data table.
type ResourceFunc func(i int) []byte

// FilenameFunc returns the original filename for the resource at index i, or
// "" if the index is out of range.
type FilenameFunc func(i int) string

// Table is an immutable named resource table built from a compiled-in
// (name, size) list plus two index-based accessors. It is complete before any
// description loads and read-only for the life of the process.
type Table struct {
	names     []string
	byName    map[string]int
	data      [][]byte
	filenames []string
}

// NewTable builds a table from the compiled-in resource list.
//
// names and sizes must have equal length; each resource's bytes are fetched
// once through resource at construction time, so lookups never call back into
// the accessors. A resource whose accessor returns a buffer of unexpected
// length is rejected.
func NewTable(names []string, sizes []int, resource ResourceFunc, filename FilenameFunc) (*Table, error) {
	if len(names) != len(sizes) {
		return nil, errors.InvalidInput(errors.PhaseAssets,
			"resource name and size lists have different lengths")
	}
	if resource == nil {
		return nil, errors.InvalidInput(errors.PhaseAssets, "nil resource accessor")
	}

	t := &Table{
		names:     make([]string, len(names)),
		byName:    make(map[string]int, len(names)),
		data:      make([][]byte, len(names)),
		filenames: make([]string, len(names)),
	}
	copy(t.names, names)

	for i, name := range names {
		buf := resource(i)
		if len(buf) != sizes[i] {
			return nil, errors.New(errors.PhaseAssets, errors.KindInvalidData).
				Resource(name).
				Detail("resource accessor returned %d bytes, table says %d", len(buf), sizes[i]).
				Build()
		}
		t.data[i] = buf
		t.byName[name] = i
		if filename != nil {
			t.filenames[i] = filename(i)
		}
	}

	Logger().Debug("resource table built", zap.Int("resources", len(names)))
	return t, nil
}

// Lookup returns the bytes for a named resource.
func (t *Table) Lookup(name string) ([]byte, bool) {
	i, ok := t.byName[name]
	if !ok {
		Logger().Debug("resource miss", zap.String("name", name))
		return nil, false
	}
	return t.data[i], true
}

// OriginalFilename returns the source filename for a named resource.
func (t *Table) OriginalFilename(name string) (string, bool) {
	i, ok := t.byName[name]
	if !ok || t.filenames[i] == "" {
		return "", false
	}
	return t.filenames[i], true
}

// Names lists all resource names in table order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Len returns the number of resources in the table.
func (t *Table) Len() int {
	return len(t.names)
}
