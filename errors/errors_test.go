package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Format(t *testing.T) {
	err := New(PhaseParse, KindInvalidData).
		Path("UI", "Container", "Image").
		Resource("my_plugin_ui.xml").
		Detail("attribute %q is not a color", "background").
		Build()

	msg := err.Error()
	for _, want := range []string{
		"[parse]",
		"invalid_data",
		"UI.Container.Image",
		`"my_plugin_ui.xml"`,
		`attribute "background" is not a color`,
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error message %q missing %q", msg, want)
		}
	}
}

func TestError_Is(t *testing.T) {
	err := NotFound(PhaseResolve, "description", "missing.xml")

	if !stderrors.Is(err, &Error{Phase: PhaseResolve, Kind: KindNotFound}) {
		t.Fatal("expected match on phase+kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseParse, Kind: KindNotFound}) {
		t.Fatal("should not match different phase")
	}
	if stderrors.Is(err, &Error{Phase: PhaseResolve, Kind: KindInvalidData}) {
		t.Fatal("should not match different kind")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := ParseFailed("ui.xml", cause)

	if !stderrors.Is(err, cause) {
		t.Fatal("cause should be reachable via errors.Is")
	}
	if !strings.Contains(err.Error(), "caused by: underlying") {
		t.Fatalf("cause missing from message: %q", err.Error())
	}
}

func TestVersionMismatch(t *testing.T) {
	err := VersionMismatch("2.0.0", "1.x")
	if err.Kind != KindVersionMismatch {
		t.Fatalf("wrong kind: %s", err.Kind)
	}
	if !strings.Contains(err.Error(), "2.0.0") || !strings.Contains(err.Error(), "1.x") {
		t.Fatalf("versions missing from message: %q", err.Error())
	}
}

func TestClosed(t *testing.T) {
	err := Closed(PhaseShell, "loader")
	if err.Kind != KindClosed {
		t.Fatalf("wrong kind: %s", err.Kind)
	}
	if !strings.Contains(err.Error(), "loader is closed") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
