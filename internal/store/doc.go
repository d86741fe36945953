// Package store provides SQLite-backed snapshots of the pharmacy collection.
//
// The store is a collaborator of the view engine, not part of it: it
// supplies the seed collection at session start and on refresh. Writes
// always replace the whole snapshot, mirroring session.ReplaceCollection.
//
// # Critical Patterns
//
// Whole-snapshot writes:
//   - SaveCollection deletes and re-inserts inside one transaction
//   - A rejected collection (duplicate ids, negative counters) writes nothing
//
// Deterministic reads:
//   - All queries use ORDER BY seq ASC, id ASC
//   - LoadCollection returns records in the order they were saved
//
// Logical time:
//   - Revision is a counter bumped by every save, never a timestamp
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
package store
