package anim_test

import (
	"fmt"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/go-drift/motion/pkg/anim"
)

// This example shows the built-in strategies and how they erase into the
// engine-facing wrappers.
func Example() {
	enter := anim.Enter(anim.NewFade(150*time.Millisecond, anim.EaseInOut))
	move := anim.Move(anim.DefaultSliding())

	fmt.Println(enter.IsZero(), move.IsZero())
	// Output: false false
}

// This example shows a physics-based move strategy. The timing curve and
// settle time are precomputed once at construction.
func ExampleNewDynamics() {
	springy := anim.NewDynamics(2, 0.65, 0)

	fmt.Println(springy.Duration() > 0)
	// Output: true
}

// This example shows an eased strategy built from a gween easing function.
func ExampleNewTween() {
	bounce := anim.NewTween(300*time.Millisecond, ease.OutBounce)

	cfg := bounce.Enter()
	fmt.Println(cfg.Duration)
	// Output: 300ms
}
