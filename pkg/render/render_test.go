package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/matzehuels/inkwell/pkg/canvas"
	"github.com/matzehuels/inkwell/pkg/errors"
	"github.com/matzehuels/inkwell/pkg/fonts"
)

var allStyles = []Style{0, Calligraphy, Handwriting, Modern, Elegant}

func testScene(t *testing.T, style Style, text string) Scene {
	t.Helper()
	name := fonts.StyleHandwriting
	if style.Valid() {
		name = style.String()
	}
	f, ok := fonts.Default(name)
	if !ok {
		t.Fatalf("no default font for %s", name)
	}
	tt, err := fonts.NewResolver().Resolve(f)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return Scene{
		Text:        text,
		Color:       "#0ea5e9",
		StrokeWidth: 2,
		Style:       style,
		Face:        tt,
		FontID:      f.ID,
	}
}

func inkColumns(c *canvas.Canvas) (n, minX, maxX int) {
	img := c.Image()
	minX, maxX = c.Width(), -1
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if img.RGBAAt(x, y).A == 0 {
				continue
			}
			n++
			minX = min(minX, x)
			maxX = max(maxX, x)
		}
	}
	return n, minX, maxX
}

func TestRecipeTableComplete(t *testing.T) {
	for s := Style(0); s <= Elegant; s++ {
		if recipes[s].draw == nil {
			t.Errorf("no recipe for %v", s)
		}
	}
	if len(Styles) != int(Elegant) {
		t.Errorf("Styles has %d entries, want %d", len(Styles), Elegant)
	}
}

func TestStaticMatchesFinalFrame(t *testing.T) {
	for _, style := range allStyles {
		t.Run(style.String(), func(t *testing.T) {
			s := testScene(t, style, "Ada")

			static := canvas.New(400, 200)
			Static(static, s, &Cache{})

			animated := canvas.New(400, 200)
			cache := &Cache{}
			for _, p := range []float64{0, 0.25, 0.5, 0.75, 1} {
				Animate(animated, s, cache, p)
			}

			if !bytes.Equal(static.Image().Pix, animated.Image().Pix) {
				t.Error("static render differs from the progress=1 frame")
			}
			if n, _, _ := inkColumns(static); n == 0 {
				t.Error("static render is blank")
			}
		})
	}
}

func TestFirstFrameBlank(t *testing.T) {
	for _, style := range allStyles {
		t.Run(style.String(), func(t *testing.T) {
			c := canvas.New(400, 200)
			Animate(c, testScene(t, style, "Ada"), &Cache{}, 0)
			if n, _, _ := inkColumns(c); n != 0 {
				t.Errorf("progress 0 inked %d pixels, want 0", n)
			}
		})
	}
}

func TestHandwritingReveal(t *testing.T) {
	s := testScene(t, Handwriting, "Ada")
	s.StrokeWidth = 1

	full := canvas.New(400, 200)
	Static(full, s, nil)
	_, fullMin, fullMax := inkColumns(full)

	half := canvas.New(400, 200)
	Animate(half, s, nil, 0.5)
	n, halfMin, halfMax := inkColumns(half)
	if n == 0 {
		t.Fatal("half-revealed frame is blank")
	}

	full.SetFont(s.Face, float64(s.FontSize(400)))
	tw := full.MeasureText(s.Text)
	edge := 200 - tw/2 + tw*0.5
	if halfMin < fullMin-1 {
		t.Errorf("reveal starts at %d, left of the text at %d", halfMin, fullMin)
	}
	if float64(halfMax) > edge+s.StrokeWidth*1.5+1 {
		t.Errorf("reveal reaches x=%d, past the edge %.1f", halfMax, edge)
	}
	if halfMax >= fullMax {
		t.Errorf("half reveal reaches %d, full text ends at %d", halfMax, fullMax)
	}
}

func TestCalligraphyUnderlineGrows(t *testing.T) {
	s := testScene(t, Calligraphy, "Ada")
	width := func(p float64) int {
		c := canvas.New(400, 200)
		Animate(c, s, nil, p)
		y := int(200/2 + float64(s.FontSize(400))/2 + 10)
		minX, maxX := c.Width(), -1
		for x := 0; x < c.Width(); x++ {
			if c.Image().RGBAAt(x, y).A != 0 {
				minX, maxX = min(minX, x), max(maxX, x)
			}
		}
		return maxX - minX
	}
	if w0, w1 := width(0.6), width(1); w0 >= w1 {
		t.Errorf("underline at 0.6 spans %d, at 1 spans %d", w0, w1)
	}
}

func TestElegantFlourishesLazy(t *testing.T) {
	s := testScene(t, Elegant, "Ada")
	c := canvas.New(400, 200)
	cache := &Cache{}

	Animate(c, s, cache, 0.2)
	if _, ok := cache.Cached(); ok {
		t.Fatal("flourishes generated before progress 0.3")
	}

	Animate(c, s, cache, 0.5)
	fl, ok := cache.Cached()
	if !ok {
		t.Fatal("flourishes not generated after progress 0.3")
	}
	for i, p := range fl.Paths() {
		if len(p) == 0 {
			t.Errorf("path %d is empty", i)
		}
	}

	Animate(c, s, cache, 0.8)
	Static(c, s, cache)
	if got := cache.Stats(); got.Misses != 1 || got.Hits != 2 {
		t.Errorf("Stats() = %+v, want 1 miss and 2 hits", got)
	}
}

func TestFlourishCacheKey(t *testing.T) {
	s := testScene(t, Elegant, "Ada")
	cache := &Cache{}

	Static(canvas.New(400, 200), s, cache)
	first, _ := cache.Cached()

	Static(canvas.New(600, 200), s, cache)
	resized, _ := cache.Cached()
	if resized.Underline[0] == first.Underline[0] {
		t.Error("resize did not regenerate flourishes")
	}

	s.Text = "Ada Lovelace"
	Static(canvas.New(600, 200), s, cache)
	key, _ := cache.Key()
	if key.Text != "Ada Lovelace" || key.Width != 600 {
		t.Errorf("Key() = %+v", key)
	}
	if got := cache.Stats().Misses; got != 3 {
		t.Errorf("misses = %d, want 3", got)
	}

	cache.Invalidate()
	if _, ok := cache.Cached(); ok {
		t.Error("Cached() after Invalidate")
	}
}

func TestNonElegantLeavesCacheAlone(t *testing.T) {
	cache := &Cache{}
	for _, style := range []Style{Calligraphy, Handwriting, Modern} {
		Static(canvas.New(400, 200), testScene(t, style, "Ada"), cache)
	}
	if _, ok := cache.Cached(); ok {
		t.Error("non-elegant styles populated the flourish cache")
	}
}

func TestAnimateDegenerate(t *testing.T) {
	s := testScene(t, Modern, "Ada")
	c := canvas.New(0, 0)
	Animate(c, s, nil, 1)

	s.Face = nil
	c = canvas.New(10, 10)
	Static(c, s, nil)
	if n, _, _ := inkColumns(c); n != 0 {
		t.Error("scene without a typeface drew pixels")
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		elapsed, duration time.Duration
		want              float64
	}{
		{0, time.Second, 0},
		{500 * time.Millisecond, time.Second, 0.5},
		{time.Second, time.Second, 1},
		{3 * time.Second, time.Second, 1},
		{-time.Second, time.Second, 0},
		{time.Second, 0, 1},
	}
	for _, tt := range tests {
		if got := Progress(tt.elapsed, tt.duration); got != tt.want {
			t.Errorf("Progress(%v, %v) = %v, want %v", tt.elapsed, tt.duration, got, tt.want)
		}
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"calligraphy", Calligraphy, false},
		{"Handwriting", Handwriting, false},
		{" modern ", Modern, false},
		{"ELEGANT", Elegant, false},
		{"brush", 0, true},
		{"", 0, true},
		{"plain", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStyle(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStyle(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidStyle) {
				t.Errorf("error code = %v, want INVALID_STYLE", errors.GetCode(err))
			}
			if got != tt.want {
				t.Errorf("ParseStyle(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStyleText(t *testing.T) {
	for _, info := range Styles {
		b, err := info.Style.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", info.Style, err)
		}
		var s Style
		if err := s.UnmarshalText(b); err != nil || s != info.Style {
			t.Errorf("UnmarshalText(%q) = %v, %v", b, s, err)
		}
		if got, ok := info.Style.Info(); !ok || got.Name != info.Name {
			t.Errorf("Info() = %+v, %v", got, ok)
		}
	}
	if _, err := Style(0).MarshalText(); err == nil {
		t.Error("MarshalText(0) succeeded")
	}
	if Style(9).Valid() {
		t.Error("Style(9) reported valid")
	}
}

func TestSceneValidate(t *testing.T) {
	good := testScene(t, Modern, "Ada")
	tests := []struct {
		name   string
		mutate func(*Scene)
		code   errors.Code
	}{
		{"valid", func(*Scene) {}, ""},
		{"empty text", func(s *Scene) { s.Text = "" }, errors.ErrCodeInvalidText},
		{"bad color", func(s *Scene) { s.Color = "blue" }, errors.ErrCodeInvalidColor},
		{"thin stroke", func(s *Scene) { s.StrokeWidth = 0.5 }, errors.ErrCodeInvalidStroke},
		{"bad style", func(s *Scene) { s.Style = 42 }, errors.ErrCodeInvalidStyle},
		{"no face", func(s *Scene) { s.Face = nil }, errors.ErrCodeInvalidFont},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := good
			tt.mutate(&s)
			err := s.Validate()
			if tt.code == "" {
				if err != nil {
					t.Fatalf("Validate() = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Validate() = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestFlourishesHelper(t *testing.T) {
	s := testScene(t, Elegant, "Ada")
	c := canvas.New(400, 200)
	cache := &Cache{}

	Static(c, s, cache)
	drawn, _ := cache.Cached()
	got := Flourishes(c, s, cache)
	if len(got.Underline) != len(drawn.Underline) || got.Underline[0] != drawn.Underline[0] {
		t.Error("Flourishes differs from the drawn paths")
	}
	if cache.Stats().Hits != 1 {
		t.Errorf("Stats() = %+v, want a hit", cache.Stats())
	}
	if fl := Flourishes(c, Scene{}, cache); !fl.Empty() {
		t.Error("empty scene produced flourishes")
	}
}
