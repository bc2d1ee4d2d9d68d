// Package reviewqueue implements the Review Queue Selector inside the
// glossary context.
//
// The module hands reviewers a continuous stream of (term, candidate) cards
// drawn uniformly at random over the live candidate pool, maintains the
// fixed-size pending window, applies raise/lower vote deltas, and records
// confirmed hold-to-flag gestures as out-of-band moderation signals relayed
// to the event bus by a worker.
package reviewqueue
