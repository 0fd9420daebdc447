package transition

import (
	"github.com/go-drift/motion/pkg/anim"
	"github.com/go-drift/motion/pkg/flip"
	"github.com/go-drift/motion/pkg/host"
)

// LayoutEntry is one keyed view within a [LayoutResult]. V is the embedding
// framework's view payload; the adapter never interprets it.
type LayoutEntry[K comparable, V any] struct {
	Key  K
	View V
}

// LayoutResult is the desired state of an animated layout: the container
// class to apply and the entries to render.
type LayoutResult[K comparable, V any] struct {
	Class   string
	Entries []LayoutEntry[K, V]
}

// LayoutConfig configures a [Layout].
type LayoutConfig[K comparable, V any] struct {
	Host host.Host

	Enter anim.AnyEnter
	Leave anim.AnyLeave
	Move  anim.AnyMove

	// ApplyClass applies the container class change. It is invoked at the
	// post-snapshot moment of the cycle, so "before" snapshots see the old
	// layout and the deferred move pass sees the new one.
	ApplyClass func(class string)
}

// Layout animates transitions between container layouts: when the applied
// result carries a new container class, surviving entries move to their new
// positions while removed ones animate out. The container layout must not
// depend on the sizes of the child elements.
type Layout[K comparable, V any] struct {
	engine  *flip.Engine[K, LayoutEntry[K, V]]
	class   string
	pending string
}

// NewLayout creates a Layout adapter.
func NewLayout[K comparable, V any](cfg LayoutConfig[K, V]) *Layout[K, V] {
	l := &Layout[K, V]{}
	l.engine = flip.New(flip.Config[K, LayoutEntry[K, V]]{
		Key:         func(entry LayoutEntry[K, V]) K { return entry.Key },
		Host:        cfg.Host,
		Enter:       cfg.Enter,
		Leave:       cfg.Leave,
		Move:        cfg.Move,
		AnimateSize: true,
		OnAfterSnapshot: func() {
			l.class = l.pending
			if cfg.ApplyClass != nil {
				cfg.ApplyClass(l.class)
			}
		},
	})
	return l
}

// Apply reconciles against the new layout result. The class change is
// deferred to the post-snapshot moment of the cycle.
func (l *Layout[K, V]) Apply(result LayoutResult[K, V]) {
	l.pending = result.Class
	l.engine.Apply(result.Entries)
}

// Class returns the currently applied container class.
func (l *Layout[K, V]) Class() string {
	return l.class
}

// Mount registers the element and scope for a rendered key.
func (l *Layout[K, V]) Mount(key K, el host.Element, scope host.Scope) {
	l.engine.Mount(key, el, scope)
}

// Keys returns the rendered keys, alive entries first.
func (l *Layout[K, V]) Keys() []K {
	return l.engine.Keys()
}

// Get returns the view rendered under a key.
func (l *Layout[K, V]) Get(key K) (V, bool) {
	entry, ok := l.engine.Get(key)
	return entry.View, ok
}
