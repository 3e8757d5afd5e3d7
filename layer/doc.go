// Package layer defines layer records and the pure operations on an ordered
// layer stack.
//
// Array order is render order: index 0 is drawn first (bottom), the last
// element is drawn last (top). There is no separate z-index.
//
// Layer id 0 ([Reserved]) denotes the canvas's own background. It is never
// drawn as a stack entry and never listed in editing UIs; use [Listable]
// when iterating for either purpose.
//
// Stack operations never mutate their input. They return a new slice that
// the caller persists through the project store.
package layer
