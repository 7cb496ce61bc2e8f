// Package repositories implements SQLite persistence for the move journal.
//
// Key Implementations:
//   - [MoveRepository] : journaled moves with soft deletes and session/item filters
//   - [SessionRepository] : the runs moves belong to
//   - [MoveJournal] : adapts [MoveRepository] to the replay engine and the coordinator observer
//
// Sequence numbers provide stable, human-readable ordering (move #42) independent of UUIDs and timestamps.
// The [NextSequence] function atomically increments per-table sequence counters in dedicated sequence tables.
package repositories
