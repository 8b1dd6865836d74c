// Package state shares decoded records between the reader goroutine and
// the UI.
//
// # Overview
//
// The reader appends records as they are decoded; the UI takes snapshots
// on every tick and renders them. Both sides run independently:
//
//	Producer (reader):             Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ dec.Decode()   │            │                 │
//	│      ↓         │            │                 │
//	│ store.Append() │───────────→│ store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓          │
//	│  repeat...     │            │  render UI      │
//	└────────────────┘            └─────────────────┘
//
// # Capacity
//
// Store keeps at most Capacity records (DefaultCapacity when zero). Older
// records are evicted and counted in Snapshot.Dropped; Snapshot.Total keeps
// the running count of everything read.
//
// # Errors
//
// Fail records the most recent reader error without touching the buffered
// records. Decode errors are also counted, since the reader skips the bad
// line and keeps going. Finish marks the end of the stream.
//
// # Snapshots
//
// Snapshot returns a copy: the record slice is cloned so the UI can filter
// and sort without holding the lock. Record values share their argument
// slices and maps with the store; callers must not mutate them.
package state
