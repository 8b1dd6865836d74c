// Package logtail reads the tail of record files.
//
// # Overview
//
// tailback replays record files with --tail N: only the last N lines are
// decoded and rendered. Read extracts those lines in a single pass with a
// ring buffer of size N, so memory stays O(N) regardless of file size.
//
// # Ring Buffer Algorithm
//
//	1. Allocate ring buffer of size maxLines
//	2. For each line in file:
//	   - Store line at current index
//	   - Increment index (wrapping at maxLines)
//	   - Track total lines seen
//	3. If total < maxLines:
//	   - Return first 'count' entries from buffer
//	4. If total >= maxLines:
//	   - Return buffer starting from current index (oldest line)
//
// A maxLines of zero or less disables the ring and returns every line.
//
// # Records
//
// Reader wraps the tail as an io.Reader for record.Decoder:
//
//	r, err := logtail.Reader("/var/log/app/events.jsonl", 400)
//	dec := record.NewDecoder(r)
//
// # Error Handling
//
// Read returns nil, nil for non-existent files. Other errors (permission
// denied, I/O errors) are returned wrapped. Long lines are kept whole so
// the record decoder can report them.
package logtail
