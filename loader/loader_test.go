package loader

import (
	"bytes"
	stderrors "errors"
	"image"
	"image/png"
	"testing"
	"testing/fstest"

	uiloader "github.com/bogrendigital/ui-loader"
	"github.com/bogrendigital/ui-loader/assets"
	"github.com/bogrendigital/ui-loader/errors"
	"github.com/bogrendigital/ui-loader/widget"
)

const testDoc = `
<UI version="1.0.0" direction="column" align="stretch" padding="10" gap="5" background="#1E1E24">
  <Image id="logo" src="logo_png"/>
  <Container direction="row" gap="4">
    <Label text="Drive"/>
    <Slider id="drive" min="0" max="10" value="5" grow="true"/>
  </Container>
  <Button id="bypass" text="Bypass"/>
</UI>`

func testImages(t *testing.T) assets.Provider {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 120, 40))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	p, err := assets.NewFSProvider(fstest.MapFS{
		"logo.png": {Data: buf.Bytes()},
	}, ".")
	if err != nil {
		t.Fatalf("NewFSProvider: %v", err)
	}
	return p
}

func newTestLoader(t *testing.T, docs MapSource) (*Loader, *widget.Container) {
	t.Helper()
	c := widget.NewContainer("uiContainer")
	l := New(c, testImages(t), WithSource(docs))
	return l, c
}

func TestLoadUI_BuildsTreeAndSizesContainer(t *testing.T) {
	l, c := newTestLoader(t, MapSource{"my_plugin_ui.xml": []byte(testDoc)})
	defer l.Close()

	if err := l.LoadUI("my_plugin_ui.xml"); err != nil {
		t.Fatalf("LoadUI: %v", err)
	}

	if len(c.Children()) != 3 {
		t.Fatalf("expected 3 root children, got %d", len(c.Children()))
	}
	if c.Bounds().Empty() {
		t.Fatalf("container not sized to content: %+v", c.Bounds())
	}
	if got := l.DescriptionName(); got != "my_plugin_ui.xml" {
		t.Fatalf("description name: %q", got)
	}

	// Image resource decoded, not placeholder.
	img, ok := c.Children()[0].(*widget.Image)
	if !ok || img.Placeholder() {
		t.Fatalf("logo should be a decoded image: %#v", c.Children()[0])
	}

	// All children inside container bounds after the initial layout.
	for i, ch := range c.Children() {
		if !c.Bounds().Contains(ch.Bounds()) {
			t.Fatalf("child %d outside container: %+v vs %+v", i, ch.Bounds(), c.Bounds())
		}
	}
}

func TestLoadUI_UnknownNameFailsAtomically(t *testing.T) {
	l, c := newTestLoader(t, MapSource{})
	defer l.Close()

	err := l.LoadUI("missing.xml")
	if err == nil {
		t.Fatal("expected resolve error")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindNotFound}) {
		t.Fatalf("wrong error: %v", err)
	}
	if len(c.Children()) != 0 {
		t.Fatal("container must stay empty after failed load")
	}
	if l.Tracker().Len() != 0 {
		t.Fatal("no widgets may be tracked after failed load")
	}
}

func TestLoadUI_ParseFailureLeavesPreviousTree(t *testing.T) {
	docs := MapSource{
		"good.xml": []byte(testDoc),
		"bad.xml":  []byte(`<UI><Image/></UI>`),
	}
	l, c := newTestLoader(t, docs)
	defer l.Close()

	if err := l.LoadUI("good.xml"); err != nil {
		t.Fatalf("LoadUI: %v", err)
	}
	before := len(c.Children())
	tracked := l.Tracker().Len()

	if err := l.LoadUI("bad.xml"); err == nil {
		t.Fatal("expected parse error")
	}
	if len(c.Children()) != before || l.Tracker().Len() != tracked {
		t.Fatal("failed reload must not disturb the loaded tree")
	}
	if l.DescriptionName() != "good.xml" {
		t.Fatalf("description name: %q", l.DescriptionName())
	}
}

func TestLoadUI_ReloadReplacesTree(t *testing.T) {
	docs := MapSource{
		"a.xml": []byte(`<UI><Label text="a"/></UI>`),
		"b.xml": []byte(`<UI><Label text="b"/><Label text="bb"/></UI>`),
	}
	l, c := newTestLoader(t, docs)
	defer l.Close()

	if err := l.LoadUI("a.xml"); err != nil {
		t.Fatalf("LoadUI a: %v", err)
	}
	if err := l.LoadUI("b.xml"); err != nil {
		t.Fatalf("LoadUI b: %v", err)
	}

	if len(c.Children()) != 2 {
		t.Fatalf("expected replaced tree with 2 children, got %d", len(c.Children()))
	}
	if l.Tracker().Len() != 2 {
		t.Fatalf("expected 2 tracked widgets, got %d", l.Tracker().Len())
	}
}

func TestLoadUI_MissingImageDegradesToPlaceholder(t *testing.T) {
	docs := MapSource{"ui.xml": []byte(`<UI><Image id="bg" src="nope_png"/></UI>`)}
	l, c := newTestLoader(t, docs)
	defer l.Close()

	if err := l.LoadUI("ui.xml"); err != nil {
		t.Fatalf("missing image must not fail the load: %v", err)
	}
	img, ok := c.Children()[0].(*widget.Image)
	if !ok || !img.Placeholder() {
		t.Fatalf("expected placeholder image, got %#v", c.Children()[0])
	}
}

func TestApplyLayout_BeforeLoadIsNoop(t *testing.T) {
	l, c := newTestLoader(t, MapSource{})
	defer l.Close()

	c.SetBounds(uiloader.Rect{W: 500, H: 400})
	l.ApplyLayout() // must not panic, must not move anything
	if len(c.Children()) != 0 {
		t.Fatal("no children expected")
	}
}

func TestApplyLayout_Idempotent(t *testing.T) {
	l, c := newTestLoader(t, MapSource{"ui.xml": []byte(testDoc)})
	defer l.Close()

	if err := l.LoadUI("ui.xml"); err != nil {
		t.Fatalf("LoadUI: %v", err)
	}

	c.SetBounds(uiloader.Rect{W: 800, H: 600})
	l.ApplyLayout()
	first := snapshot(c)
	l.ApplyLayout()
	second := snapshot(c)

	if len(first) != len(second) {
		t.Fatal("widget count changed between passes")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("geometry changed between identical passes at %d: %+v vs %+v",
				i, first[i], second[i])
		}
	}
}

func snapshot(c *widget.Container) []uiloader.Rect {
	var out []uiloader.Rect
	var walk func(w widget.Widget)
	walk = func(w widget.Widget) {
		out = append(out, w.Bounds())
		if inner, ok := w.(*widget.Container); ok {
			for _, ch := range inner.Children() {
				walk(ch)
			}
		}
	}
	for _, ch := range c.Children() {
		walk(ch)
	}
	return out
}

type countingObserver struct {
	attached int
	detached int
}

func (o *countingObserver) OnWidgetEvent(e Event) {
	switch e.Type {
	case EventAttached:
		o.attached++
	case EventDetached:
		o.detached++
	}
}

func TestClose_ReleasesEveryWidget(t *testing.T) {
	l, c := newTestLoader(t, MapSource{"ui.xml": []byte(testDoc)})

	obs := &countingObserver{}
	l.Tracker().Subscribe(obs)

	if err := l.LoadUI("ui.xml"); err != nil {
		t.Fatalf("LoadUI: %v", err)
	}
	if obs.attached == 0 {
		t.Fatal("expected attach events")
	}

	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if obs.detached != obs.attached {
		t.Fatalf("leak: attached %d, detached %d", obs.attached, obs.detached)
	}
	if l.Tracker().Len() != 0 {
		t.Fatalf("tracker still holds %d widgets", l.Tracker().Len())
	}
	if len(c.Children()) != 0 {
		t.Fatal("container still holds children after Close")
	}

	// Idempotent.
	if err := l.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if err := l.LoadUI("ui.xml"); err == nil {
		t.Fatal("LoadUI after Close must fail")
	}
}
