package transition

import (
	"github.com/go-drift/motion/pkg/anim"
	"github.com/go-drift/motion/pkg/flip"
	"github.com/go-drift/motion/pkg/host"
)

// SwapConfig configures a [Swap].
type SwapConfig struct {
	Host host.Host

	// Enter and Leave default to a 200ms ease-out fade.
	Enter anim.AnyEnter
	Leave anim.AnyLeave

	// Appear plays the enter animation on the first content render.
	Appear bool

	// HandleMargins selects margin-zeroing offset measurement; see
	// [flip.Config].
	HandleMargins bool
}

// Swap animates transitions between successive content values. Every Set
// assigns the content a fresh key, so the previous view animates out while
// the new one animates in; sizes are animated as well.
type Swap[T any] struct {
	engine *flip.Engine[int, T]
	key    int
}

// NewSwap creates a Swap adapter.
func NewSwap[T any](cfg SwapConfig) *Swap[T] {
	s := &Swap[T]{}
	s.engine = flip.New(flip.Config[int, T]{
		Key:           func(T) int { return s.key },
		Host:          cfg.Host,
		Enter:         cfg.Enter,
		Leave:         cfg.Leave,
		Appear:        cfg.Appear,
		AnimateSize:   true,
		HandleMargins: cfg.HandleMargins,
	})
	return s
}

// Set swaps the rendered content. Keys are recycled modulo a small window;
// a key is only reused long after its previous occupant has fully left.
func (s *Swap[T]) Set(content T) {
	s.key = (s.key + 1) % 100
	s.engine.Apply([]T{content})
}

// Mount registers the element and scope for a rendered key.
func (s *Swap[T]) Mount(key int, el host.Element, scope host.Scope) {
	s.engine.Mount(key, el, scope)
}

// Keys returns the rendered keys: the current content first, then any
// previous contents still animating out.
func (s *Swap[T]) Keys() []int {
	return s.engine.Keys()
}

// Get returns the content rendered under a key.
func (s *Swap[T]) Get(key int) (T, bool) {
	return s.engine.Get(key)
}
