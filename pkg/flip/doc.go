// Package flip implements the keyed reconciliation engine at the heart of
// the motion toolkit: a state machine that tracks a collection of keyed
// items across renders and drives FLIP-style enter, leave and move
// animations against the host's elements.
//
// # Lifecycle
//
// Each key moves through the states
//
//	absent -> entering -> alive -> leaving -> absent
//
// A key enters when it first appears in an applied collection, stays alive
// while present, starts leaving when it disappears, and becomes absent when
// its leave animation finishes. A key that reappears while still leaving is
// evicted from the leaving set and treated as brand-new: its old element
// keeps fading out while a fresh element enters. Leaving items are never
// resurrected; their observation scope is already disposed.
//
// # Reconciliation cycle
//
// [Engine.Apply] runs one cycle whenever the upstream collection changes:
//
//  1. Build the new keyed collection in order. Duplicate keys are a caller
//     error; the last occurrence wins, nothing is validated.
//  2. In a non-interactive rendering mode, replace the alive set, drop the
//     leaving set and all item metadata, and return. No animation runs on
//     first paint.
//  3. Snapshot geometry for every tracked element still attached to the
//     document.
//  4. Evict reappearing keys from the leaving set.
//  5. Invoke the post-snapshot callback. This is the only safe moment for
//     the caller to mutate layout-affecting styles: the "before" state is
//     captured and the "after" state has not rendered yet.
//  6. Commit: removed items move to the leaving set, their scopes are
//     disposed, their elements pinned to absolute positioning at the
//     snapshot geometry, and their leave animations started with a one-shot
//     completion handler that purges the key.
//  7. Defer a microtask pass over the alive items: keys new to the
//     collection get an enter animation, keys whose geometry changed beyond
//     the fuzzy tolerance get a move animation.
//
// The rendered key order is always the alive items in collection order
// followed by the leaving items in removal order ([Engine.Keys]), regardless
// of animation state. At most one animation handle is active per item;
// starting a new one always cancels the previous one first.
//
// Failures are contained per key: a detached element or a failed measurement
// skips that key's animation for the pass and never aborts reconciliation
// for the rest of the collection.
package flip
