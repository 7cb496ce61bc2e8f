// Package models defines the persisted entities of the cardswap move journal.
//
//   - [MoveRecord] : one committed card move (item, source and destination row, position)
//   - [Session] : one interactive or replay run that moves belong to
//
// Persistent entities implement the [Model] interface providing ID, timestamps and validation.
// The Repository[T] interface defines standard CRUD operations for database access.
package models
