// Package tasks runs scripted card moves without a terminal UI.
//
// # Replay
//
// [ReplayEngine.Run] drives a [swap.Coordinator] through a list of item ids:
//
//  1. Each request is paced by a [rate.Limiter]
//  2. An accepted request is committed straight away and its settle ticket armed on a [swap.SettleTimer]
//  3. Settle deliveries from the timer are applied on the same goroutine that owns the coordinator
//
// With [ReplayOptions.WaitSettle] the engine waits out each flight before the next request;
// without it, requests that arrive mid-flight are skipped exactly as a re-entrant click would be.
//
// # Progress Reporting
//
// Progress flows over a [ProgressUpdate] channel using non-blocking sends, so a slow reader drops
// updates instead of stalling the replay.
//
// # Journaling
//
// The optional [MoveRecorder] interface persists committed moves (repositories.MoveJournal).
// Recorder errors are logged and do not stop the replay.
package tasks
