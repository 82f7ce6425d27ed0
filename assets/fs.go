package assets

import (
	"io/fs"
	"path"
	"strings"

	"go.uber.org/zap"
)

// FSProvider serves resources from a filesystem, typically an embed.FS
// compiled into the plugin binary. Names follow binary-data mangling: the
// base filename with every non-alphanumeric rune replaced by '_', so
// "knob-bg.png" is addressed as "knob_bg_png" as well as by its plain
// base name.
type FSProvider struct {
	names     []string
	byName    map[string]string // logical name -> fs path
	filenames map[string]string // logical name -> original base name
	fsys      fs.FS
}

// NewFSProvider walks root within fsys and indexes every regular file.
// Pass "." to index the whole filesystem.
func NewFSProvider(fsys fs.FS, root string) (*FSProvider, error) {
	p := &FSProvider{
		fsys:      fsys,
		byName:    make(map[string]string),
		filenames: make(map[string]string),
	}

	err := fs.WalkDir(fsys, root, func(fp string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		base := path.Base(fp)
		p.index(base, base, fp)
		if mangled := MangleName(base); mangled != base {
			p.index(mangled, base, fp)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	Logger().Debug("fs provider indexed", zap.Int("resources", len(p.names)))
	return p, nil
}

func (p *FSProvider) index(name, original, fp string) {
	if _, dup := p.byName[name]; dup {
		Logger().Warn("duplicate resource name, keeping first",
			zap.String("name", name), zap.String("path", fp))
		return
	}
	p.names = append(p.names, name)
	p.byName[name] = fp
	p.filenames[name] = original
}

// Lookup returns the bytes for a named resource.
func (p *FSProvider) Lookup(name string) ([]byte, bool) {
	fp, ok := p.byName[name]
	if !ok {
		return nil, false
	}
	data, err := fs.ReadFile(p.fsys, fp)
	if err != nil {
		Logger().Warn("resource read failed",
			zap.String("name", name), zap.Error(err))
		return nil, false
	}
	return data, true
}

// OriginalFilename returns the source filename for a named resource.
func (p *FSProvider) OriginalFilename(name string) (string, bool) {
	original, ok := p.filenames[name]
	return original, ok
}

// Names lists all resource names.
func (p *FSProvider) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Len returns the number of resources.
func (p *FSProvider) Len() int {
	return len(p.names)
}

// MangleName converts a filename to its compiled-in resource identifier:
// every rune outside [A-Za-z0-9] becomes '_'.
func MangleName(filename string) string {
	var b strings.Builder
	b.Grow(len(filename))
	for _, r := range filename {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
