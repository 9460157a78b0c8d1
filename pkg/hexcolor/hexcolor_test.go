package hexcolor

import (
	"image/color"
	"regexp"
	"testing"

	"github.com/matzehuels/inkwell/pkg/errors"
)

var wellFormed = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestParse(t *testing.T) {
	got, err := Parse("#0EA5E9")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := color.NRGBA{R: 0x0e, G: 0xa5, B: 0xe9, A: 0xff}
	if got != want {
		t.Errorf("Parse() = %v, want %v", got, want)
	}

	for _, bad := range []string{"", "#fff", "0ea5e9", "#0ea5eZ", "#0ea5e9aa"} {
		if _, err := Parse(bad); !errors.Is(err, errors.ErrCodeInvalidColor) {
			t.Errorf("Parse(%q) error = %v, want %s", bad, err, errors.ErrCodeInvalidColor)
		}
	}
}

func TestAdjust(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		delta int
		want  string
	}{
		{"darken", "#0ea5e9", -20, "#0091d5"},
		{"lighten", "#0ea5e9", 20, "#22b9fd"},
		{"clamp low", "#0ea5e9", -30, "#0087cb"},
		{"clamp high", "#0ea5e9", 30, "#2cc3ff"},
		{"zero delta", "#0EA5E9", 0, "#0ea5e9"},
		{"all black", "#000000", -50, "#000000"},
		{"all white", "#ffffff", 50, "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Adjust(tt.in, tt.delta)
			if err != nil {
				t.Fatalf("Adjust(%q, %d) error: %v", tt.in, tt.delta, err)
			}
			if got != tt.want {
				t.Errorf("Adjust(%q, %d) = %q, want %q", tt.in, tt.delta, got, tt.want)
			}
		})
	}
}

func TestAdjustRejectsMalformed(t *testing.T) {
	if _, err := Adjust("blue", 10); !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("Adjust(blue) error = %v, want %s", err, errors.ErrCodeInvalidColor)
	}
}

func TestAdjustRoundTrip(t *testing.T) {
	colors := []string{"#0ea5e9", "#7e22ce", "#404040", "#b91c1c", "#808080"}
	for _, c := range colors {
		for _, d := range []int{1, 5, 20, 30} {
			up := MustAdjust(c, d)
			back := MustAdjust(up, -d)
			// Only meaningful when no channel clamped on the way up.
			p := MustParse(c)
			if int(p.R)+d > 255 || int(p.G)+d > 255 || int(p.B)+d > 255 {
				continue
			}
			if back != c {
				t.Errorf("Adjust(Adjust(%s, %d), %d) = %s", c, d, -d, back)
			}
		}
	}
}

func TestAdjustAlwaysWellFormed(t *testing.T) {
	for _, p := range Palettes {
		for _, c := range p.Colors {
			for d := -300; d <= 300; d += 37 {
				got := MustAdjust(c, d)
				if !wellFormed.MatchString(got) {
					t.Fatalf("Adjust(%s, %d) = %q, not #rrggbb", c, d, got)
				}
			}
		}
	}
}

func TestRGBA(t *testing.T) {
	if got := RGBA(0, 0, 0, 0.3); got.A != 77 {
		t.Errorf("RGBA(0,0,0,0.3).A = %d, want 77", got.A)
	}
	if got := RGBA(255, 255, 255, 2); got.A != 255 {
		t.Errorf("RGBA alpha not clamped: %d", got.A)
	}
	if got := WithAlpha(color.NRGBA{A: 200}, 0.5); got.A != 100 {
		t.Errorf("WithAlpha() = %d, want 100", got.A)
	}
}

func TestPalettesValid(t *testing.T) {
	for _, p := range Palettes {
		for _, c := range p.Colors {
			if err := Validate(c); err != nil {
				t.Errorf("palette %s: %v", p.Name, err)
			}
		}
	}
	if err := Validate(DefaultColor); err != nil {
		t.Errorf("DefaultColor: %v", err)
	}
}
