// Package hosttest provides scriptable fakes for the host contracts: a fake
// host with a manual microtask queue, fake elements with scriptable geometry,
// recording fake animations, scopes and a resize observer.
//
// The fakes drive the engine's test suite and let embedders test their own
// integrations without a rendering backend.
package hosttest

import "github.com/go-drift/motion/pkg/host"

// Host is a fake host.Host with a switchable rendering mode, a manual
// microtask queue and a scriptable viewport scroll offset. It implements
// host.Scroller; tests drive the scroll window with Scroll and SettleScroll.
type Host struct {
	mode       host.RenderingMode
	microtasks []func()

	scrollY      float64
	nextWaiterID int
	scrollWaits  map[int]func(scrolled bool)
}

// NewHost creates a fake host in interactive mode.
func NewHost() *Host {
	return &Host{mode: host.Interactive}
}

// RenderingMode returns the current mode.
func (h *Host) RenderingMode() host.RenderingMode {
	return h.mode
}

// SetMode switches the rendering mode.
func (h *Host) SetMode(mode host.RenderingMode) {
	h.mode = mode
}

// QueueMicrotask appends fn to the microtask queue. Nothing runs until
// FlushMicrotasks is called.
func (h *Host) QueueMicrotask(fn func()) {
	h.microtasks = append(h.microtasks, fn)
}

// PendingMicrotasks returns the number of queued tasks.
func (h *Host) PendingMicrotasks() int {
	return len(h.microtasks)
}

// FlushMicrotasks runs queued tasks in order until the queue is empty,
// including tasks queued while flushing. It returns the number of tasks run.
func (h *Host) FlushMicrotasks() int {
	ran := 0
	for len(h.microtasks) > 0 {
		fn := h.microtasks[0]
		h.microtasks = h.microtasks[1:]
		fn()
		ran++
	}
	return ran
}

// ScrollY returns the scripted vertical scroll offset.
func (h *Host) ScrollY() float64 {
	return h.scrollY
}

// SetScrollY scripts the scroll offset without notifying waiters.
func (h *Host) SetScrollY(y float64) {
	h.scrollY = y
}

// OnNextScroll registers a one-shot scroll waiter; see host.Scroller.
func (h *Host) OnNextScroll(fn func(scrolled bool)) (cancel func()) {
	if h.scrollWaits == nil {
		h.scrollWaits = map[int]func(bool){}
	}
	id := h.nextWaiterID
	h.nextWaiterID++
	h.scrollWaits[id] = fn
	return func() {
		delete(h.scrollWaits, id)
	}
}

// Scroll scripts a viewport scroll to y and notifies pending waiters with
// scrolled true.
func (h *Host) Scroll(y float64) {
	h.scrollY = y
	h.fireScrollWaits(true)
}

// SettleScroll closes the scroll window without a scroll, notifying pending
// waiters with scrolled false.
func (h *Host) SettleScroll() {
	h.fireScrollWaits(false)
}

func (h *Host) fireScrollWaits(scrolled bool) {
	waits := h.scrollWaits
	h.scrollWaits = nil
	for _, fn := range waits {
		fn(scrolled)
	}
}

// Scope is a fake host.Scope recording disposal.
type Scope struct {
	// Disposals counts Dispose calls; the engine guarantees exactly one.
	Disposals int
}

// Dispose records the disposal.
func (s *Scope) Dispose() {
	s.Disposals++
}

// Disposed reports whether Dispose has been called.
func (s *Scope) Disposed() bool {
	return s.Disposals > 0
}
