// Package ui implements the interactive terminal demos using bubbletea's Elm architecture.
//
// Two models are provided:
//  1. [CardsModel] : two rows of cards; clicking a card (or pressing enter on it) flies it to the other row
//  2. [ReparentModel] : two elements that toggle between a nested and a flat arrangement
//
// Both describe every frame as a list of [motion.Transition] values and let a [motion.Animator]
// spring matched elements from their previous rects. Frames are driven by tea.Tick at the
// configured FPS and stop once everything has settled.
//
// [CardsModel] sequences each move through a [swap.Coordinator]: the request lifts the card into an
// overlay at its departure rect, a follow-up commit message flips row membership, and a settle tick
// carrying the commit ticket's generation drops the overlay. Overlays are never hit tested, so clicks
// land on the card underneath.
//
// Keyboard navigation uses vim-style bindings (h/j/k/l, enter, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
