package surface

import "sync"

// Container is what a surface is mounted in: something with a size that
// announces when it changes.
type Container interface {
	Size() (width, height int)
	// Subscribe registers fn for resize events and returns a function
	// that removes it.
	Subscribe(fn func(width, height int)) (cancel func())
}

// Window is an in-memory Container. It is safe for concurrent use.
type Window struct {
	mu     sync.Mutex
	width  int
	height int
	next   int
	subs   map[int]func(int, int)
}

// NewWindow creates a window of the given size.
func NewWindow(width, height int) *Window {
	return &Window{width: width, height: height, subs: make(map[int]func(int, int))}
}

// Size implements Container.
func (w *Window) Size() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

// Subscribe implements Container.
func (w *Window) Subscribe(fn func(width, height int)) func() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.next++
	id := w.next
	w.subs[id] = fn
	var once sync.Once
	return func() {
		once.Do(func() {
			w.mu.Lock()
			defer w.mu.Unlock()
			delete(w.subs, id)
		})
	}
}

// Resize changes the size and notifies every subscriber.
func (w *Window) Resize(width, height int) {
	w.mu.Lock()
	w.width, w.height = width, height
	fns := make([]func(int, int), 0, len(w.subs))
	for _, fn := range w.subs {
		fns = append(fns, fn)
	}
	w.mu.Unlock()

	for _, fn := range fns {
		fn(width, height)
	}
}

// Subscribers returns the number of registered resize listeners.
func (w *Window) Subscribers() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.subs)
}
