package fonts

import (
	"errors"
	"testing"
)

func TestTableComplete(t *testing.T) {
	for _, style := range Styles {
		fs := ForStyle(style)
		if len(fs) == 0 {
			t.Errorf("style %s has no fonts", style)
			continue
		}
		for _, f := range fs {
			if f.Style != style {
				t.Errorf("font %s registered under %s but tagged %s", f.ID, style, f.Style)
			}
			if len(f.Fallback()) == 0 {
				t.Errorf("font %s has no embedded fallback", f.ID)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		ref    string
		wantID string
		ok     bool
	}{
		{"great-vibes", "great-vibes", true},
		{"Great Vibes", "great-vibes", true},
		{"'Great Vibes', cursive", "great-vibes", true},
		{"  CAVEAT ", "caveat", true},
		{"'Pinyon Script', cursive", "pinyon-script", true},
		{"Comic Sans", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			f, ok := Lookup(tt.ref)
			if ok != tt.ok {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.ref, ok, tt.ok)
			}
			if ok && f.ID != tt.wantID {
				t.Errorf("Lookup(%q) = %s, want %s", tt.ref, f.ID, tt.wantID)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	f, ok := Default(StyleCalligraphy)
	if !ok || f.ID != "tangerine" {
		t.Errorf("Default(calligraphy) = %v, %v", f.ID, ok)
	}
	if _, ok := Default("brush"); ok {
		t.Error("Default(brush) should not exist")
	}
}

func TestResolverEmbedded(t *testing.T) {
	r := NewResolver()
	f, _ := Lookup("caveat")

	tt, err := r.Resolve(f)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if tt == nil {
		t.Fatal("Resolve() returned nil font")
	}

	again, err := r.Resolve(f)
	if err != nil {
		t.Fatalf("Resolve() second call error: %v", err)
	}
	if again != tt {
		t.Error("Resolve() should return the cached font")
	}
}

func TestResolverSystemMissFallsBack(t *testing.T) {
	calls := 0
	r := NewResolver(
		WithSystemFonts(true),
		WithFinder(func(string) (string, error) {
			calls++
			return "", errors.New("not installed")
		}),
	)
	f, _ := Lookup("montserrat")
	if _, err := r.Resolve(f); err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if calls != 1 {
		t.Errorf("finder called %d times, want 1", calls)
	}
}

func TestResolverNoFallback(t *testing.T) {
	r := NewResolver()
	if _, err := r.Resolve(Font{ID: "ghost"}); err == nil {
		t.Error("Resolve() without fallback should fail")
	}
}
