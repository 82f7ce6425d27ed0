package editor

import (
	"testing"

	uiloader "github.com/bogrendigital/ui-loader"
)

func TestParseTheme(t *testing.T) {
	theme, err := ParseTheme([]byte("background: \"#101014\"\naccent: \"#FF8800\"\n"))
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}
	if theme.Background != (uiloader.Color{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}) {
		t.Fatalf("background: %+v", theme.Background)
	}
	if theme.Accent != (uiloader.Color{R: 0xFF, G: 0x88, B: 0x00, A: 0xFF}) {
		t.Fatalf("accent: %+v", theme.Accent)
	}
	// Omitted keys keep defaults.
	if theme.Text != DefaultTheme.Text {
		t.Fatalf("text should default: %+v", theme.Text)
	}
}

func TestParseTheme_Failures(t *testing.T) {
	if _, err := ParseTheme([]byte("background: [nested, list]\n")); err == nil {
		t.Fatal("expected yaml type error")
	}
	if _, err := ParseTheme([]byte("background: \"beige\"\n")); err == nil {
		t.Fatal("expected color parse error")
	}

	// Failure always hands back the default theme.
	theme, _ := ParseTheme([]byte("background: \"beige\"\n"))
	if theme != DefaultTheme {
		t.Fatalf("fallback theme: %+v", theme)
	}
}
