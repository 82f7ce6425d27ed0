package loader

import (
	stderrors "errors"
	"testing"
	"testing/fstest"

	"github.com/bogrendigital/ui-loader/assets"
	"github.com/bogrendigital/ui-loader/errors"
)

func TestFSSource_Resolve(t *testing.T) {
	fsys := fstest.MapFS{
		"ui/my_plugin_ui.xml": {Data: []byte("<UI/>")},
	}
	src := NewFSSource(fsys, "ui")

	data, err := src.Resolve("my_plugin_ui.xml")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if string(data) != "<UI/>" {
		t.Fatalf("wrong bytes: %q", data)
	}

	_, err = src.Resolve("other.xml")
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindNotFound}) {
		t.Fatalf("wrong error: %v", err)
	}
}

func TestProviderSource_ResolvesMangledNames(t *testing.T) {
	p, err := assets.NewFSProvider(fstest.MapFS{
		"my-plugin-ui.xml": {Data: []byte("<UI/>")},
	}, ".")
	if err != nil {
		t.Fatalf("NewFSProvider: %v", err)
	}
	src := NewProviderSource(p)

	// Plain name hits the table directly.
	if _, err := src.Resolve("my-plugin-ui.xml"); err != nil {
		t.Fatalf("plain resolve: %v", err)
	}
	// A name the table only knows under its mangled form still resolves.
	if _, err := src.Resolve("my plugin ui.xml"); err != nil {
		t.Fatalf("mangled resolve: %v", err)
	}

	if _, err := src.Resolve("nope.xml"); err == nil {
		t.Fatal("expected not-found")
	}
}
