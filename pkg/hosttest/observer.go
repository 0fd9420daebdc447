package hosttest

import (
	"github.com/go-drift/motion/pkg/geometry"
	"github.com/go-drift/motion/pkg/host"
)

// ResizeObserver is a fake host.ResizeObserver driven manually from tests.
type ResizeObserver struct {
	nextID int
	subs   map[host.Element]map[int]func(geometry.Extent)
}

// NewResizeObserver creates an empty observer.
func NewResizeObserver() *ResizeObserver {
	return &ResizeObserver{subs: map[host.Element]map[int]func(geometry.Extent){}}
}

// Observe registers fn for el and, like the browser API, immediately reports
// the element's current size as the first observation.
func (o *ResizeObserver) Observe(el host.Element, fn func(geometry.Extent)) (cancel func()) {
	id := o.nextID
	o.nextID++
	if o.subs[el] == nil {
		o.subs[el] = map[int]func(geometry.Extent){}
	}
	o.subs[el][id] = fn

	fn(el.BoundingRect().Size())

	return func() {
		delete(o.subs[el], id)
	}
}

// Resize updates the element's scripted size when it is a fake [Element] and
// notifies its observers.
func (o *ResizeObserver) Resize(el host.Element, extent geometry.Extent) {
	if fake, ok := el.(*Element); ok {
		fake.SetSize(extent.Width, extent.Height)
	}
	for _, fn := range o.subs[el] {
		fn(extent)
	}
}
