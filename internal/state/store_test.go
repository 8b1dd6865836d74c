package state

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/five82/tailback/internal/record"
)

func rec(msg string) record.Record {
	return record.Record{Template: msg}
}

func TestStore_AppendAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.Append(rec("a"), rec("b"))

	snap := s.Snapshot()
	if len(snap.Records) != 2 || snap.Records[0].Template != "a" {
		t.Fatalf("snapshot records = %#v, want 2 records", snap.Records)
	}
	if snap.Total != 2 {
		t.Fatalf("Total = %d, want 2", snap.Total)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Records[0].Template = "changed"
	snap2 := s.Snapshot()
	if snap2.Records[0].Template != "a" {
		t.Fatalf("Snapshot should clone records; got %q want a", snap2.Records[0].Template)
	}
}

func TestStore_EvictsOldest(t *testing.T) {
	s := Store{Capacity: 3}
	s.Append(rec("1"), rec("2"))
	s.Append(rec("3"), rec("4"), rec("5"))

	snap := s.Snapshot()
	if len(snap.Records) != 3 {
		t.Fatalf("len(Records) = %d, want 3", len(snap.Records))
	}
	if snap.Records[0].Template != "3" || snap.Records[2].Template != "5" {
		t.Fatalf("Records = %v, want 3..5", snap.Records)
	}
	if snap.Total != 5 || snap.Dropped != 2 {
		t.Fatalf("Total/Dropped = %d/%d, want 5/2", snap.Total, snap.Dropped)
	}
}

func TestStore_FailKeepsRecords(t *testing.T) {
	var s Store
	s.Append(rec("a"))

	origErr := errors.New("boom")
	s.Fail(origErr, true)
	s.Fail(nil, true)

	snap := s.Snapshot()
	if len(snap.Records) != 1 {
		t.Fatalf("records changed on error: %v", snap.Records)
	}
	if snap.LastError != origErr {
		t.Fatalf("LastError = %#v, want the stored error %#v itself", snap.LastError, origErr)
	}
	if snap.DecodeErrors != 1 {
		t.Fatalf("DecodeErrors = %d, want 1", snap.DecodeErrors)
	}
}

func TestStore_Finish(t *testing.T) {
	var s Store
	if s.Snapshot().Done {
		t.Fatal("Done = true before Finish")
	}
	s.Finish()
	if !s.Snapshot().Done {
		t.Fatal("Done = false after Finish")
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := Store{Capacity: 50}
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Append(rec("x"))
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.Snapshot()
			}
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	if snap.Total != 400 || len(snap.Records) != 50 || snap.Dropped != 350 {
		t.Fatalf("Total/len/Dropped = %d/%d/%d, want 400/50/350", snap.Total, len(snap.Records), snap.Dropped)
	}
}
