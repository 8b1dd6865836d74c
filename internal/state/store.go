package state

import (
	"sync"
	"time"

	"github.com/five82/tailback/internal/record"
)

// DefaultCapacity bounds the number of records kept for the UI.
const DefaultCapacity = 5000

// Snapshot represents the records available to the UI.
type Snapshot struct {
	Records      []record.Record // oldest first
	Total        int             // records read since start
	Dropped      int             // records evicted to respect Capacity
	DecodeErrors int
	LastError    error
	LastUpdated  time.Time
	Done         bool // the source is exhausted or an end marker arrived
}

// Store coordinates the reader goroutine and the UI.
type Store struct {
	// Capacity is the maximum number of records retained. Zero uses
	// DefaultCapacity.
	Capacity int

	mu       sync.RWMutex
	snapshot Snapshot
}

func (s *Store) capacity() int {
	if s.Capacity <= 0 {
		return DefaultCapacity
	}
	return s.Capacity
}

// Append adds records, evicting the oldest beyond Capacity.
func (s *Store) Append(recs ...record.Record) {
	if len(recs) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Records = append(s.snapshot.Records, recs...)
	s.snapshot.Total += len(recs)
	if over := len(s.snapshot.Records) - s.capacity(); over > 0 {
		kept := make([]record.Record, s.capacity())
		copy(kept, s.snapshot.Records[over:])
		s.snapshot.Records = kept
		s.snapshot.Dropped += over
	}
	s.snapshot.LastUpdated = time.Now()
}

// Fail records a reader error. Decode errors are counted separately since
// reading continues after them.
func (s *Store) Fail(err error, decode bool) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastError = err
	if decode {
		s.snapshot.DecodeErrors++
	}
	s.snapshot.LastUpdated = time.Now()
}

// Finish marks the source as exhausted.
func (s *Store) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Done = true
	s.snapshot.LastUpdated = time.Now()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Records = cloneRecords(s.snapshot.Records)
	return snap
}

func cloneRecords(items []record.Record) []record.Record {
	if len(items) == 0 {
		return nil
	}
	dup := make([]record.Record, len(items))
	copy(dup, items)
	return dup
}
