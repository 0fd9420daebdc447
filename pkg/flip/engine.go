package flip

import (
	stderrors "errors"
	"strconv"

	"github.com/go-drift/motion/pkg/anim"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/geometry"
	"github.com/go-drift/motion/pkg/host"
)

// Config configures an [Engine]. Key and Host are required; everything else
// has a usable zero value.
type Config[K comparable, T any] struct {
	// Key extracts the identity of an item. It must be stable and
	// deterministic for a logical item across its lifetime in the
	// collection.
	Key func(item T) K

	// Host provides the rendering mode and the microtask queue.
	Host host.Host

	// Enter is the animation for newly mounted elements.
	// Defaults to a 200ms ease-out fade.
	Enter anim.AnyEnter

	// Leave is the animation for removed elements.
	// Defaults to a 200ms ease-out fade.
	Leave anim.AnyLeave

	// Move is the animation for elements whose geometry changed.
	// Defaults to 200ms ease-out sliding.
	Move anim.AnyMove

	// Appear plays enter animations on the very first applied collection.
	// This is usually not wanted: on server-rendered pages the enter
	// animation would start long after the initial paint.
	Appear bool

	// AnimateSize also animates element sizes during moves, for example in
	// a grid with differently sized columns.
	AnimateSize bool

	// HandleMargins selects the margin-zeroing offset measurement for
	// snapshots. Use it for elements whose margins shift offset reads.
	HandleMargins bool

	// CompensateScroll re-pins leaving elements when the viewport scrolls
	// before their leave animation starts, keeping them visually in place
	// across route transitions with scroll restoration. Requires a Host
	// that also implements [host.Scroller]; ignored otherwise.
	CompensateScroll bool

	// OnAfterSnapshot is invoked after all "before" snapshots are taken and
	// before anything renders or moves. Layout-affecting style changes
	// belong here.
	OnAfterSnapshot func()

	// OnEnterStart is invoked right before an element's enter animation.
	OnEnterStart func(el host.Element)

	// OnLeaveStart is invoked right before a leaving element is pinned,
	// with its captured position.
	OnLeaveStart func(el host.Element, pos geometry.Position)

	// EnterOverride, when set, can supply a per-item enter animation taking
	// precedence over Enter. It is consulted the moment the item enters.
	EnterOverride func(item T) (anim.AnyEnter, bool)

	// LeaveOverride, when set, can supply a per-item leave animation taking
	// precedence over Leave. It is consulted the moment the item starts
	// leaving.
	LeaveOverride func(item T) (anim.AnyLeave, bool)
}

// itemMeta is the per-key runtime record for a tracked item.
type itemMeta struct {
	// el is the element handle, nil until the renderer registers one and
	// always nil in non-interactive modes.
	el host.Element

	// scope is the item's observation scope, disposed when it leaves.
	scope host.Scope

	// current is the running animation, at most one per item.
	current host.Animation
}

func (m *itemMeta) cancelCurrent() {
	if m.current != nil {
		m.current.Cancel()
		m.current = nil
	}
}

// Engine reconciles a keyed item collection across renders and overlays
// enter, leave and move animations on the transitions. Animation is purely
// a visual overlay: the rendered key set always reflects the alive and
// leaving items regardless of animation state.
//
// An engine is owned by a single renderer and is not safe for concurrent
// use; all calls must come from the host's update scheduler.
type Engine[K comparable, T any] struct {
	cfg Config[K, T]

	alive   *orderedMap[K, T]
	leaving *orderedMap[K, T]
	meta    map[K]*itemMeta

	// applied is set after the first cycle; it gates appear animations.
	applied bool

	// applying guards against reentrant collection updates from item event
	// handlers: those are queued as a fresh cycle, never run inside the
	// current one.
	applying bool
}

// New creates an engine. It panics if Key or Host is missing; both are
// programmer errors with no sensible fallback.
func New[K comparable, T any](cfg Config[K, T]) *Engine[K, T] {
	if cfg.Key == nil {
		panic("flip: Config.Key is required")
	}
	if cfg.Host == nil {
		panic("flip: Config.Host is required")
	}
	if cfg.Enter.IsZero() {
		cfg.Enter = anim.Enter(anim.DefaultFade())
	}
	if cfg.Leave.IsZero() {
		cfg.Leave = anim.Leave(anim.DefaultFade())
	}
	if cfg.Move.IsZero() {
		cfg.Move = anim.Move(anim.DefaultSliding())
	}
	return &Engine[K, T]{
		cfg:     cfg,
		alive:   newOrderedMap[K, T](),
		leaving: newOrderedMap[K, T](),
		meta:    map[K]*itemMeta{},
	}
}

// Apply runs one reconciliation cycle against the latest desired collection.
// Call it from the host's reactive effect whenever the collection changes.
func (e *Engine[K, T]) Apply(items []T) {
	if e.applying {
		// Reentrant update from inside the current cycle; queue it as a
		// fresh cycle after this one settles.
		e.cfg.Host.QueueMicrotask(func() { e.Apply(items) })
		return
	}
	e.applying = true
	defer func() { e.applying = false }()

	newItems := newOrderedMap[K, T]()
	for _, item := range items {
		newItems.set(e.cfg.Key(item), item)
	}

	// Non-interactive render passes skip all animation so no artifacts
	// appear on first paint. Leaving entries are dropped too: without a
	// live render target their finish callbacks may never fire.
	if !e.cfg.Host.RenderingMode().IsInteractive() {
		e.meta = map[K]*itemMeta{}
		e.alive = newItems
		e.leaving = newOrderedMap[K, T]()
		if e.cfg.OnAfterSnapshot != nil {
			e.cfg.OnAfterSnapshot()
		}
		return
	}

	// "Before" snapshots of every tracked element still in the document.
	// Extents are always recorded here; leaving elements need them for
	// absolute pinning.
	snapshots := make(map[K]geometry.Snapshot, len(e.meta))
	for _, k := range e.alive.keys() {
		m := e.meta[k]
		if m == nil {
			continue
		}
		if m.el == nil {
			errors.Report(&errors.MotionError{
				Op:   "flip.Apply",
				Kind: errors.KindInvariant,
				Key:  k,
				Err:  stderrors.New("alive item has no registered element"),
			})
			continue
		}
		if !m.el.Connected() {
			continue
		}
		snap, err := captureSnapshot(m.el, true, e.cfg.HandleMargins)
		if err != nil {
			errors.Report(&errors.MotionError{
				Op:   "flip.Apply",
				Kind: errors.KindMeasure,
				Key:  k,
				Err:  err,
			})
			continue
		}
		snapshots[k] = snap
	}

	// A key that reappears while still leaving cannot be resurrected: its
	// scope is already disposed. Evict it so it renders as a fresh item;
	// the old element keeps playing its leave animation.
	for _, k := range newItems.keys() {
		if e.leaving.has(k) {
			e.leaving.delete(k)
		}
	}

	// The one safe moment for callers to mutate layout-affecting styles.
	if e.cfg.OnAfterSnapshot != nil {
		e.cfg.OnAfterSnapshot()
	}

	// Keys alive before this cycle must never re-enter, even when their
	// before-snapshot failed or was skipped; only genuinely new keys do.
	wasAlive := make(map[K]bool, e.alive.len())
	for _, k := range e.alive.keys() {
		wasAlive[k] = true
	}

	// Commit: move removed items to the leaving set and start their leave
	// animations.
	for _, k := range e.alive.keys() {
		if newItems.has(k) {
			continue
		}
		item, _ := e.alive.get(k)
		e.leaving.set(k, item)
		e.startLeave(k, item, snapshots)
	}
	e.alive = newItems

	first := !e.applied
	e.applied = true
	if first && !e.cfg.Appear {
		return
	}

	// Element handles for brand-new items exist only after their child
	// views mount, so the enter/move pass is deferred. The snapshot and
	// wasAlive maps are captured per cycle; overlapping cycles cannot
	// corrupt each other.
	e.cfg.Host.QueueMicrotask(func() { e.enterMovePass(snapshots, wasAlive) })
}

// startLeave transitions one removed key to the leaving state: scope
// disposal, absolute pinning at the before-snapshot geometry, leave
// animation with a one-shot purge on completion.
//
// A key without a usable element or snapshot cannot animate out; it is
// purged immediately instead of lingering in the leaving set.
func (e *Engine[K, T]) startLeave(k K, item T, snapshots map[K]geometry.Snapshot) {
	m := e.meta[k]
	delete(e.meta, k)
	if m == nil {
		e.leaving.delete(k)
		return
	}
	if m.scope != nil {
		m.scope.Dispose()
	}

	snap, ok := snapshots[k]
	if m.el == nil || !ok {
		m.cancelCurrent()
		e.leaving.delete(k)
		return
	}
	el := m.el

	if e.cfg.OnLeaveStart != nil {
		e.cfg.OnLeaveStart(el, snap.Position)
	}

	pinAbsolute(el, snap)
	m.cancelCurrent()

	leave := e.cfg.Leave
	if e.cfg.LeaveOverride != nil {
		if override, ok := e.cfg.LeaveOverride(item); ok {
			leave = override
		}
	}

	begin := func() {
		a, err := leave.Animate(el)
		if err != nil {
			errors.Report(&errors.MotionError{
				Op:   "flip.Apply",
				Kind: errors.KindPlayback,
				Key:  k,
				Err:  err,
			})
			e.leaving.delete(k)
			return
		}
		a.OnFinish(func() {
			e.leaving.delete(k)
		})
	}

	// With scroll compensation the leave start waits out the host's scroll
	// window: a scroll restoration firing right after the pin would leave
	// the element stranded at viewport-relative coordinates, so the pinned
	// top is shifted by the scroll delta first.
	if e.cfg.CompensateScroll {
		if s, ok := e.cfg.Host.(host.Scroller); ok {
			before := s.ScrollY()
			s.OnNextScroll(func(scrolled bool) {
				if scrolled {
					el.SetStyle("top", stylePx(snap.Position.Y+s.ScrollY()-before))
				}
				begin()
			})
			return
		}
	}
	begin()
}

// enterMovePass is the deferred half of a cycle: enter animations for keys
// new to the collection, move animations for keys whose geometry changed.
// It holds the reentrancy guard like the synchronous half, so collection
// updates fired from enter callbacks queue as fresh cycles.
func (e *Engine[K, T]) enterMovePass(snapshots map[K]geometry.Snapshot, wasAlive map[K]bool) {
	e.applying = true
	defer func() { e.applying = false }()

	for _, k := range e.alive.keys() {
		m := e.meta[k]
		if m == nil || m.el == nil {
			errors.Report(&errors.MotionError{
				Op:   "flip.enterMovePass",
				Kind: errors.KindInvariant,
				Key:  k,
				Err:  stderrors.New("alive item has no registered element"),
			})
			continue
		}
		el := m.el

		prev, ok := snapshots[k]
		if !ok {
			if wasAlive[k] {
				// The key survived but its before-measurement failed or
				// was skipped; there is no reference geometry to animate
				// against.
				continue
			}
			e.startEnter(k, m, el)
			continue
		}

		if !el.Connected() {
			// Stale reference from a fast-churning collection; skip the
			// pass for this key.
			continue
		}
		next, err := captureSnapshot(el, e.cfg.AnimateSize, e.cfg.HandleMargins)
		if err != nil {
			errors.Report(&errors.MotionError{
				Op:   "flip.enterMovePass",
				Kind: errors.KindMeasure,
				Key:  k,
				Err:  err,
			})
			continue
		}
		if prev.ApproxEqual(next) {
			continue
		}

		m.cancelCurrent()
		a, err := e.cfg.Move.Animate(el, prev, next, e.cfg.AnimateSize)
		if err != nil {
			errors.Report(&errors.MotionError{
				Op:   "flip.enterMovePass",
				Kind: errors.KindPlayback,
				Key:  k,
				Err:  err,
			})
			continue
		}
		m.current = a
	}
}

func (e *Engine[K, T]) startEnter(k K, m *itemMeta, el host.Element) {
	if e.cfg.OnEnterStart != nil {
		e.cfg.OnEnterStart(el)
	}
	m.cancelCurrent()

	enter := e.cfg.Enter
	if e.cfg.EnterOverride != nil {
		if item, ok := e.alive.get(k); ok {
			if override, ok := e.cfg.EnterOverride(item); ok {
				enter = override
			}
		}
	}

	a, err := enter.Animate(el)
	if err != nil {
		errors.Report(&errors.MotionError{
			Op:   "flip.enterMovePass",
			Kind: errors.KindPlayback,
			Key:  k,
			Err:  err,
		})
		return
	}
	m.current = a
}

// Mount registers the element handle and observation scope for a key's
// freshly built child view. The embedding renderer calls it once per
// (re)mounted key, after the view's root element exists. Mounting over an
// existing registration disposes the previous scope.
//
// In non-interactive modes the renderer may pass a nil element.
func (e *Engine[K, T]) Mount(k K, el host.Element, scope host.Scope) {
	if old := e.meta[k]; old != nil && old.scope != nil {
		old.scope.Dispose()
	}
	e.meta[k] = &itemMeta{el: el, scope: scope}
}

// Keys returns the rendered key order: alive items in collection order
// followed by leaving items in removal order.
func (e *Engine[K, T]) Keys() []K {
	keys := make([]K, 0, e.alive.len()+e.leaving.len())
	keys = append(keys, e.alive.keys()...)
	keys = append(keys, e.leaving.keys()...)
	return keys
}

// Get looks an item up across the alive and leaving sets.
func (e *Engine[K, T]) Get(k K) (T, bool) {
	if item, ok := e.alive.get(k); ok {
		return item, true
	}
	return e.leaving.get(k)
}

// Len returns the number of rendered items, alive plus leaving.
func (e *Engine[K, T]) Len() int {
	return e.alive.len() + e.leaving.len()
}

// pinAbsolute locks a leaving element to its pre-removal geometry so normal
// layout flow does not reflow it the instant its item is removed.
func pinAbsolute(el host.Element, snap geometry.Snapshot) {
	el.SetStyle("position", "absolute")
	el.SetStyle("top", stylePx(snap.Position.Y))
	el.SetStyle("left", stylePx(snap.Position.X))
	if snap.Extent != nil {
		el.SetStyle("width", stylePx(snap.Extent.Width))
		el.SetStyle("height", stylePx(snap.Extent.Height))
	}
}

func stylePx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
