// Package swap coordinates moving an item between two ordered rows while a flight
// animation is layered over the move.
//
// A move runs in two phases. [Coordinator.RequestMove] records the item as both the
// pending move and the animating item, so the host can paint a departure frame with the
// item lifted into an overlay. [Coordinator.Commit] then flips row membership and returns
// a [Ticket]; once the ticket's delay elapses the host calls [Coordinator.Settle] to drop
// the overlay.
//
//	Idle -> Requested -> Committed -> Idle
//
// Requests made while a move is pending or still animating are ignored. A newer commit
// supersedes any earlier ticket, so a stale settle never clears a newer animation.
//
// The coordinator is not safe for concurrent use. Hosts own it from a single goroutine
// (the bubbletea update loop, or the replay loop in package tasks) and feed timer
// expirations back into that goroutine, for example through [SettleTimer.C].
package swap
