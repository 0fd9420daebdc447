// Package transition provides thin adapters composing the reconciliation
// engine for common single-item and container use cases: conditional
// visibility (Show), content swaps (Swap), layout-class changes (Layout)
// and observed size changes (SizeTransition).
package transition

import (
	"github.com/go-drift/motion/pkg/anim"
	"github.com/go-drift/motion/pkg/flip"
	"github.com/go-drift/motion/pkg/host"
)

// ShowConfig configures a [Show].
type ShowConfig struct {
	Host host.Host

	// Enter and Leave default to a 200ms ease-out fade.
	Enter anim.AnyEnter
	Leave anim.AnyLeave

	// Appear plays the enter animation on the first visible render.
	Appear bool

	// HandleMargins selects margin-zeroing offset measurement; see
	// [flip.Config].
	HandleMargins bool
}

// Show animates a single child in and out of the tree from a boolean
// condition. The child is keyed by a constant, so hiding and re-showing it
// produces a fresh child view each time.
type Show struct {
	engine *flip.Engine[int, struct{}]
}

// NewShow creates a Show adapter.
func NewShow(cfg ShowConfig) *Show {
	return &Show{
		engine: flip.New(flip.Config[int, struct{}]{
			Key:           func(struct{}) int { return 0 },
			Host:          cfg.Host,
			Enter:         cfg.Enter,
			Leave:         cfg.Leave,
			Appear:        cfg.Appear,
			HandleMargins: cfg.HandleMargins,
		}),
	}
}

// Set applies the visibility condition, starting enter or leave animations
// as the condition changes.
func (s *Show) Set(visible bool) {
	if visible {
		s.engine.Apply([]struct{}{{}})
	} else {
		s.engine.Apply(nil)
	}
}

// Mount registers the child's element and scope.
func (s *Show) Mount(el host.Element, scope host.Scope) {
	s.engine.Mount(0, el, scope)
}

// Rendered reports whether the child should currently be in the tree,
// including while it is animating out.
func (s *Show) Rendered() bool {
	return s.engine.Len() > 0
}
