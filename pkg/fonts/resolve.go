package fonts

import (
	"fmt"
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
)

// Resolver parses fonts on first use and caches the result.
// It is safe for concurrent use.
type Resolver struct {
	system bool
	find   func(string) (string, error)

	mu    sync.Mutex
	cache map[string]*truetype.Font
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSystemFonts enables lookup of installed font files before falling
// back to the embedded faces.
func WithSystemFonts(enabled bool) Option {
	return func(r *Resolver) { r.system = enabled }
}

// WithFinder replaces the system font locator. Mostly useful in tests.
func WithFinder(find func(name string) (string, error)) Option {
	return func(r *Resolver) { r.find = find }
}

// NewResolver creates a resolver. System lookup is off by default so that
// output does not depend on the machine.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		find:  findfont.Find,
		cache: make(map[string]*truetype.Font),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the parsed TrueType font for f.
func (r *Resolver) Resolve(f Font) (*truetype.Font, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tt, ok := r.cache[f.ID]; ok {
		return tt, nil
	}

	tt, err := r.load(f)
	if err != nil {
		return nil, err
	}
	r.cache[f.ID] = tt
	return tt, nil
}

func (r *Resolver) load(f Font) (*truetype.Font, error) {
	if r.system && f.File != "" {
		if path, err := r.find(f.File); err == nil {
			if data, err := os.ReadFile(path); err == nil {
				if tt, err := truetype.Parse(data); err == nil {
					return tt, nil
				}
			}
		}
	}
	if len(f.fallback) == 0 {
		return nil, fmt.Errorf("font %q: no embedded fallback", f.ID)
	}
	tt, err := truetype.Parse(f.fallback)
	if err != nil {
		return nil, fmt.Errorf("font %q: parse fallback: %w", f.ID, err)
	}
	return tt, nil
}

// Installed reports which table fonts are available as system files.
func (r *Resolver) Installed() map[string]string {
	found := make(map[string]string)
	for _, style := range Styles {
		for _, f := range Table[style] {
			if path, err := r.find(f.File); err == nil {
				found[f.ID] = path
			}
		}
	}
	return found
}
