package flip_test

import (
	"fmt"
	"time"

	"github.com/go-drift/motion/pkg/anim"
	"github.com/go-drift/motion/pkg/flip"
	"github.com/go-drift/motion/pkg/hosttest"
)

type task struct {
	ID    int
	Title string
}

// This example shows a keyed list reconciling across renders: removed items
// animate out while staying rendered, and the key order drives rendering.
func ExampleEngine() {
	h := hosttest.NewHost()
	engine := flip.New(flip.Config[int, task]{
		Key:  func(t task) int { return t.ID },
		Host: h,
	})

	engine.Apply([]task{{1, "write"}, {2, "review"}})
	for _, id := range engine.Keys() {
		// The renderer builds a child view per key and registers it.
		engine.Mount(id, hosttest.NewElement(h, fmt.Sprint(id)), &hosttest.Scope{})
	}
	h.FlushMicrotasks()

	// Task 1 is removed; it keeps rendering while its leave animation runs.
	engine.Apply([]task{{2, "review"}})
	h.FlushMicrotasks()

	fmt.Println(engine.Keys())
	// Output: [2 1]
}

// This example shows custom animation strategies and per-item overrides.
func ExampleConfig() {
	h := hosttest.NewHost()
	_ = flip.New(flip.Config[int, task]{
		Key:   func(t task) int { return t.ID },
		Host:  h,
		Enter: anim.Enter(anim.DefaultFade()),
		Move:  anim.Move(anim.NewDynamics(2, 0.65, 0)),
		EnterOverride: func(t task) (anim.AnyEnter, bool) {
			if t.Title == "urgent" {
				return anim.Enter(anim.NewFade(50*time.Millisecond, anim.EaseLinear)), true
			}
			return anim.AnyEnter{}, false
		},
	})
}
