package surface

import (
	"bytes"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/inkwell/pkg/errors"
	"github.com/matzehuels/inkwell/pkg/frame"
	"github.com/matzehuels/inkwell/pkg/hexcolor"
	"github.com/matzehuels/inkwell/pkg/render"
	"github.com/matzehuels/inkwell/pkg/render/sink"
)

const step = 100 * time.Millisecond

func mounted(t *testing.T, p Params) (*Controller, *frame.Manual, *Window) {
	t.Helper()
	sched := frame.NewManual()
	win := NewWindow(400, 200)
	c := New(sched, WithParams(p))
	if err := c.Mount(win); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c, sched, win
}

func params(style render.Style) Params {
	p := DefaultParams()
	p.Text = "Ada"
	p.Style = style
	return p
}

func inked(t *testing.T, c *Controller) int {
	t.Helper()
	img, err := c.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	return n
}

func runToEnd(sched *frame.Manual) int {
	frames := 0
	for sched.Pending() > 0 {
		sched.Advance(step)
		frames++
	}
	return frames
}

func TestDefaultParamsValid(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("DefaultParams().Validate() = %v", err)
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		code   errors.Code
	}{
		{"empty text", func(p *Params) { p.Text = "" }, errors.ErrCodeInvalidText},
		{"zero style", func(p *Params) { p.Style = 0 }, errors.ErrCodeInvalidStyle},
		{"short color", func(p *Params) { p.Color = "#fff" }, errors.ErrCodeInvalidColor},
		{"stroke too wide", func(p *Params) { p.StrokeWidth = 11 }, errors.ErrCodeInvalidStroke},
		{"unknown font", func(p *Params) { p.Font = "comic-sans" }, errors.ErrCodeInvalidFont},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			if err := p.Validate(); !errors.Is(err, tt.code) {
				t.Errorf("Validate() = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestFontEntry(t *testing.T) {
	p := params(render.Elegant)
	f, err := p.FontEntry()
	if err != nil || f.ID != "pinyon-script" {
		t.Errorf("default elegant font = %q, %v", f.ID, err)
	}
	p.Font = "'Caveat', cursive"
	if f, err := p.FontEntry(); err != nil || f.ID != "caveat" {
		t.Errorf("font by family = %q, %v", f.ID, err)
	}
}

func TestExamplesValid(t *testing.T) {
	for _, e := range Examples {
		if err := e.Params().Validate(); err != nil {
			t.Errorf("example %d: %v", e.ID, err)
		}
	}
	if _, ok := ExampleByID(5); !ok {
		t.Error("ExampleByID(5) not found")
	}
	if _, ok := ExampleByID(4); ok {
		t.Error("ExampleByID(4) found")
	}
}

func TestMountDraws(t *testing.T) {
	c, _, win := mounted(t, params(render.Calligraphy))
	if inked(t, c) == 0 {
		t.Error("mounted surface is blank")
	}
	if w, h := c.Size(); w != 400 || h != 200 {
		t.Errorf("Size() = %dx%d", w, h)
	}
	if win.Subscribers() != 1 {
		t.Errorf("Subscribers() = %d, want 1", win.Subscribers())
	}
	if c.ID() == "" {
		t.Error("empty surface ID")
	}
	if err := c.Mount(win); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("second Mount = %v, want INVALID_INPUT", err)
	}
}

func TestMountRejects(t *testing.T) {
	c := New(frame.NewManual())
	if err := c.Mount(NewWindow(0, 100)); !errors.Is(err, errors.ErrCodeInvalidSize) {
		t.Errorf("Mount(0x100) = %v, want INVALID_SIZE", err)
	}
	bad := DefaultParams()
	bad.Color = "red"
	c = New(frame.NewManual(), WithParams(bad))
	if err := c.Mount(NewWindow(10, 10)); !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("Mount with bad params = %v, want INVALID_COLOR", err)
	}
}

func TestExportBeforeMount(t *testing.T) {
	c := New(frame.NewManual())
	if _, err := c.ExportRaster(sink.PNG, 1); !errors.Is(err, errors.ErrCodeSurfaceNotReady) {
		t.Errorf("ExportRaster = %v, want SURFACE_NOT_READY", err)
	}
	if _, err := c.ExportVector(); !errors.Is(err, errors.ErrCodeSurfaceNotReady) {
		t.Errorf("ExportVector = %v, want SURFACE_NOT_READY", err)
	}
	if _, err := c.Snapshot(); !errors.Is(err, errors.ErrCodeSurfaceNotReady) {
		t.Errorf("Snapshot = %v, want SURFACE_NOT_READY", err)
	}
	if err := c.Replay(); !errors.Is(err, errors.ErrCodeSurfaceNotReady) {
		t.Errorf("Replay = %v, want SURFACE_NOT_READY", err)
	}
}

func TestUpdateBeforeMount(t *testing.T) {
	sched := frame.NewManual()
	c := New(sched)
	p := params(render.Modern)
	p.Animate = true
	if err := c.Update(p); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := c.Mount(NewWindow(400, 200)); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if c.Animating() || sched.Pending() != 0 {
		t.Error("trigger before mount started an animation")
	}
	if c.Params().Style != render.Modern {
		t.Error("params set before mount were lost")
	}
}

func TestUpdateInvalidKeepsParams(t *testing.T) {
	c, _, _ := mounted(t, params(render.Handwriting))
	bad := params(render.Handwriting)
	bad.StrokeWidth = 0
	if err := c.Update(bad); !errors.Is(err, errors.ErrCodeInvalidStroke) {
		t.Fatalf("Update = %v, want INVALID_STROKE", err)
	}
	if c.Params().StrokeWidth != 2 {
		t.Error("invalid update replaced params")
	}
}

func TestAnimationEndsStatic(t *testing.T) {
	for _, style := range []render.Style{render.Calligraphy, render.Handwriting, render.Modern, render.Elegant} {
		t.Run(style.String(), func(t *testing.T) {
			want, _, _ := mounted(t, params(style))
			static, _ := want.Snapshot()

			c, sched, _ := mounted(t, params(style))
			p := params(style)
			p.Animate = true
			if err := c.Update(p); err != nil {
				t.Fatalf("Update: %v", err)
			}
			if !c.Animating() {
				t.Fatal("trigger did not start an animation")
			}

			sched.Advance(step)
			if inked(t, c) != 0 {
				t.Error("first frame is not blank")
			}
			sched.Advance(5 * step)
			if got := c.Progress(); got != 0.5 {
				t.Errorf("Progress() = %v, want 0.5", got)
			}

			runToEnd(sched)
			if c.Animating() {
				t.Error("still animating after progress 1")
			}
			if st := c.State(); st.Started || st.Progress != 1 {
				t.Errorf("State() = %+v, want cleared with progress 1", st)
			}
			got, _ := c.Snapshot()
			if !bytes.Equal(got.Pix, static.Pix) {
				t.Error("final frame differs from static render")
			}
		})
	}
}

func TestRetriggerSingleChain(t *testing.T) {
	c, sched, _ := mounted(t, params(render.Calligraphy))
	p := params(render.Calligraphy)

	p.Animate = true
	c.Update(p)
	sched.Advance(step)
	sched.Advance(3 * step)
	if c.Progress() == 0 {
		t.Fatal("animation did not advance")
	}

	p.Animate = false
	c.Update(p)
	if !c.Animating() {
		t.Error("lowering the trigger stopped the animation")
	}
	p.Animate = true
	c.Update(p)
	if sched.Pending() != 1 {
		t.Errorf("Pending() = %d after re-trigger, want 1", sched.Pending())
	}
	if c.Progress() != 0 {
		t.Errorf("Progress() = %v after re-trigger, want 0", c.Progress())
	}

	if err := c.Replay(); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if sched.Pending() != 1 {
		t.Errorf("Pending() = %d after Replay, want 1", sched.Pending())
	}

	frames := runToEnd(sched)
	if frames != 11 {
		t.Errorf("animation took %d frames, want 11", frames)
	}
}

func TestParamChangeCancels(t *testing.T) {
	c, sched, _ := mounted(t, params(render.Modern))
	p := params(render.Modern)
	p.Animate = true
	c.Update(p)
	sched.Advance(step)
	sched.Advance(step)

	p.Color = "#7e22ce"
	if err := c.Update(p); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if c.Animating() || sched.Pending() != 0 {
		t.Error("param change did not cancel the animation")
	}

	want, _, _ := mounted(t, p)
	a, _ := c.Snapshot()
	b, _ := want.Snapshot()
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("surface not redrawn statically after param change")
	}
}

func TestResize(t *testing.T) {
	c, sched, win := mounted(t, params(render.Handwriting))
	p := params(render.Handwriting)
	p.Animate = true
	c.Update(p)
	sched.Advance(step)

	win.Resize(600, 300)
	if w, h := c.Size(); w != 600 || h != 300 {
		t.Errorf("Size() = %dx%d, want 600x300", w, h)
	}
	if !c.Animating() {
		t.Error("resize stopped the animation")
	}
	runToEnd(sched)
	if c.Progress() != 1 {
		t.Errorf("Progress() = %v, want 1", c.Progress())
	}
}

func TestClose(t *testing.T) {
	c, sched, win := mounted(t, params(render.Elegant))
	p := params(render.Elegant)
	p.Animate = true
	c.Update(p)

	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if win.Subscribers() != 0 {
		t.Errorf("Subscribers() = %d after Close, want 0", win.Subscribers())
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending() = %d after Close, want 0", sched.Pending())
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
	if err := c.Update(params(render.Modern)); !errors.Is(err, errors.ErrCodeSurfaceClosed) {
		t.Errorf("Update after Close = %v, want SURFACE_CLOSED", err)
	}
	if _, err := c.ExportRaster(sink.PNG, 1); !errors.Is(err, errors.ErrCodeSurfaceClosed) {
		t.Errorf("ExportRaster after Close = %v, want SURFACE_CLOSED", err)
	}
	win.Resize(10, 10)
	if w, _ := c.Size(); w != 400 {
		t.Error("closed surface followed a resize")
	}
}

func TestFlourishLifecycle(t *testing.T) {
	c, _, _ := mounted(t, params(render.Elegant))
	if _, ok := c.Flourishes(); !ok {
		t.Fatal("elegant render did not cache flourishes")
	}

	p := params(render.Elegant)
	p.Color = "#b91c1c"
	c.Update(p)
	if got := c.CacheStats(); got.Misses != 1 {
		t.Errorf("color change regenerated flourishes: %+v", got)
	}

	p.Style = render.Modern
	c.Update(p)
	if _, ok := c.Flourishes(); ok {
		t.Error("flourishes kept after leaving elegant")
	}
}

// Scenario: elegant "Ada" on 400×200 exports three flourish paths and one
// text element.
func TestExportVectorElegant(t *testing.T) {
	c, _, _ := mounted(t, params(render.Elegant))
	fl, _ := c.Flourishes()
	for i, path := range fl.Paths() {
		if len(path) == 0 {
			t.Errorf("flourish %d is empty", i)
		}
	}

	data, err := c.ExportVector()
	if err != nil {
		t.Fatalf("ExportVector: %v", err)
	}
	svg := string(data)
	if got := strings.Count(svg, "<path"); got != 3 {
		t.Errorf("path elements = %d, want 3", got)
	}
	if got := strings.Count(svg, "<text"); got != 1 {
		t.Errorf("text elements = %d, want 1", got)
	}
	if !strings.Contains(svg, `viewBox="0 0 400 200"`) {
		t.Error("viewBox missing")
	}
}

func TestExportVectorNonElegant(t *testing.T) {
	c, _, _ := mounted(t, params(render.Modern))
	data, err := c.ExportVector()
	if err != nil {
		t.Fatalf("ExportVector: %v", err)
	}
	if bytes.Contains(data, []byte("<path")) {
		t.Error("modern export contains paths")
	}
	if !bytes.Contains(data, []byte("&#39;Montserrat&#39;")) {
		t.Error("font family missing from export")
	}
}

// Scenario: a darkened color survives raster export unchanged.
func TestExportRasterColor(t *testing.T) {
	darker, err := hexcolor.Adjust("#0ea5e9", -20)
	if err != nil {
		t.Fatalf("Adjust: %v", err)
	}
	if darker != "#0091d5" {
		t.Fatalf("Adjust = %s, want #0091d5", darker)
	}
	p := params(render.Handwriting)
	p.Color = darker
	c, _, _ := mounted(t, p)

	data, err := c.ExportRaster(sink.PNG, 1)
	if err != nil {
		t.Fatalf("ExportRaster: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := hexcolor.MustParse(darker)
	found := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			if a>>8 != 0xff {
				continue
			}
			found = true
			if diff(r>>8, want.R) > 1 || diff(g>>8, want.G) > 1 || diff(bl>>8, want.B) > 1 {
				t.Errorf("pixel (%d,%d) = #%02x%02x%02x, want %s", x, y, r>>8, g>>8, bl>>8, darker)
			}
			break
		}
	}
	if !found {
		t.Fatal("no opaque text pixel found")
	}

	if _, err := c.ExportRaster(sink.SVG, 1); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ExportRaster(SVG) = %v, want INVALID_FORMAT", err)
	}
	if _, err := c.ExportRaster(sink.JPEG, 0.8); err != nil {
		t.Errorf("ExportRaster(JPEG) = %v", err)
	}
}

func diff(a uint32, b uint8) uint32 {
	if a > uint32(b) {
		return a - uint32(b)
	}
	return uint32(b) - a
}

func TestWindow(t *testing.T) {
	w := NewWindow(10, 20)
	var got [][2]int
	cancel := w.Subscribe(func(width, height int) { got = append(got, [2]int{width, height}) })
	w.Resize(30, 40)
	cancel()
	cancel()
	w.Resize(50, 60)

	if len(got) != 1 || got[0] != [2]int{30, 40} {
		t.Errorf("notifications = %v", got)
	}
	if width, height := w.Size(); width != 50 || height != 60 {
		t.Errorf("Size() = %dx%d", width, height)
	}
}

func TestTickerDrivenAnimation(t *testing.T) {
	sched := frame.NewTicker(frame.WithInterval(time.Millisecond))
	defer sched.Stop()

	c := New(sched, WithParams(params(render.Calligraphy)), WithDuration(20*time.Millisecond))
	if err := c.Mount(NewWindow(200, 100)); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	defer c.Close()

	if err := c.Replay(); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	deadline := time.Now().Add(5 * time.Second)
	for c.Animating() {
		if time.Now().After(deadline) {
			t.Fatal("animation did not finish")
		}
		time.Sleep(time.Millisecond)
	}
	if c.Progress() != 1 {
		t.Errorf("Progress() = %v, want 1", c.Progress())
	}
}
