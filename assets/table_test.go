package assets

import (
	stderrors "errors"
	"testing"

	"github.com/bogrendigital/ui-loader/errors"
)

func testTable(t *testing.T) *Table {
	t.Helper()

	names := []string{"knob_png", "panel_png"}
	data := [][]byte{[]byte("knob-bytes"), []byte("panel-bytes")}
	files := []string{"knob.png", "panel.png"}

	tbl, err := NewTable(names,
		[]int{len(data[0]), len(data[1])},
		func(i int) []byte {
			if i < 0 || i >= len(data) {
				return nil
			}
			return data[i]
		},
		func(i int) string {
			if i < 0 || i >= len(files) {
				return ""
			}
			return files[i]
		},
	)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return tbl
}

func TestTable_Lookup(t *testing.T) {
	tbl := testTable(t)

	data, ok := tbl.Lookup("knob_png")
	if !ok {
		t.Fatal("expected knob_png to resolve")
	}
	if string(data) != "knob-bytes" {
		t.Fatalf("wrong bytes: %q", data)
	}

	if tbl.Len() != 2 {
		t.Fatalf("expected 2 resources, got %d", tbl.Len())
	}
}

func TestTable_UnknownNameIsAbsence(t *testing.T) {
	tbl := testTable(t)

	data, ok := tbl.Lookup("does_not_exist")
	if ok || data != nil {
		t.Fatal("unknown name must yield (nil, false)")
	}

	name, ok := tbl.OriginalFilename("does_not_exist")
	if ok || name != "" {
		t.Fatal("unknown name must yield no filename")
	}
}

func TestTable_OriginalFilename(t *testing.T) {
	tbl := testTable(t)

	name, ok := tbl.OriginalFilename("panel_png")
	if !ok || name != "panel.png" {
		t.Fatalf("expected panel.png, got %q (%v)", name, ok)
	}
}

func TestTable_SizeMismatchRejected(t *testing.T) {
	_, err := NewTable(
		[]string{"a"},
		[]int{99},
		func(i int) []byte { return []byte("short") },
		nil,
	)
	if err == nil {
		t.Fatal("expected size mismatch error")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseAssets, Kind: errors.KindInvalidData}) {
		t.Fatalf("wrong error: %v", err)
	}
}

func TestTable_LengthMismatchRejected(t *testing.T) {
	_, err := NewTable([]string{"a", "b"}, []int{1}, func(int) []byte { return nil }, nil)
	if err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestMangleName(t *testing.T) {
	cases := map[string]string{
		"knob.png":      "knob_png",
		"knob-bg.png":   "knob_bg_png",
		"Plain":         "Plain",
		"über glow.jpg": "_ber_glow_jpg",
	}
	for in, want := range cases {
		if got := MangleName(in); got != want {
			t.Fatalf("MangleName(%q) = %q, want %q", in, got, want)
		}
	}
}
