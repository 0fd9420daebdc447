package transition

import (
	"github.com/go-drift/motion/pkg/anim"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/geometry"
	"github.com/go-drift/motion/pkg/host"
)

// SizeTransitionConfig configures a [SizeTransition].
type SizeTransitionConfig struct {
	Host host.Host

	// Observer delivers size change notifications for attached elements.
	Observer host.ResizeObserver

	// Resize is the strategy played on width changes.
	// Defaults to a critically snappy dynamics curve.
	Resize anim.AnyResize
}

// SizeTransition animates an element's width changes as they are observed,
// smoothing content-driven reflows. Height changes pass through unanimated.
type SizeTransition struct {
	cfg SizeTransitionConfig

	lastWidth    float64
	haveBaseline bool
}

// NewSizeTransition creates a size transition. It panics if Host or Observer
// is missing.
func NewSizeTransition(cfg SizeTransitionConfig) *SizeTransition {
	if cfg.Host == nil {
		panic("transition: SizeTransitionConfig.Host is required")
	}
	if cfg.Observer == nil {
		panic("transition: SizeTransitionConfig.Observer is required")
	}
	if cfg.Resize.IsZero() {
		cfg.Resize = anim.Resize(anim.NewDynamics(1, 0.8, 1))
	}
	return &SizeTransition{cfg: cfg}
}

// Attach starts observing the element and returns a function that detaches
// it again. The first observation only records the baseline width; animation
// starts with the second.
func (s *SizeTransition) Attach(el host.Element) (detach func()) {
	return s.cfg.Observer.Observe(el, func(extent geometry.Extent) {
		s.observe(el, extent)
	})
}

func (s *SizeTransition) observe(el host.Element, extent geometry.Extent) {
	if !s.cfg.Host.RenderingMode().IsInteractive() {
		return
	}
	if !s.haveBaseline {
		s.lastWidth = extent.Width
		s.haveBaseline = true
		return
	}
	prev := s.lastWidth
	s.lastWidth = extent.Width

	from := geometry.Extent{Width: prev, Height: extent.Height}
	if from.ApproxEqual(extent) {
		return
	}
	if _, err := s.cfg.Resize.Animate(el, from, extent); err != nil {
		errors.Report(&errors.MotionError{
			Op:   "transition.SizeTransition",
			Kind: errors.KindPlayback,
			Err:  err,
		})
	}
}
