// Package motion animates elements between layouts by matching them on a stable layout id.
//
// A host describes each frame as a list of [Transition] values. The [Animator] compares
// them with the previous frame: an id it already knows springs from where it currently is
// to its new target, a new id appears in place, and an id that is no longer described is
// dropped. Springs are integrated with charmbracelet/harmonica, one per rect component.
//
// [Node] trees describe nested layouts with parent-relative rects; [Flatten] resolves them
// to absolute transitions so an element keeps its identity when it is reparented.
package motion
