// Package app provides the orchestration layer for tailback.
//
// # Overview
//
// This package wires together configuration, the record source, the output
// sink and the viewer. It is the composition root where all dependencies are
// initialized and connected.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()      Read tailback config
//	       ├─────> openSource()       Record file, tail replay or TCP socket
//	       ├─────> record.NewDecoder  Newline-delimited JSON records
//	       │
//	       ├── stream mode ──> Stream()        decode → filter → render → write
//	       │
//	       └── interactive ──> StartReader()   decode → state.Store
//	                           ui.Run()        state.Store.Snapshot() → viewport
//
// # Stream Mode
//
// Records are rendered one per line to stdout or to a rotating output file.
// Records below the threshold are skipped. Malformed lines are logged as
// warnings and skipped. The run ends when the source is exhausted, when ctx
// is cancelled, or after the first record that carries a marker, in which
// case "Read N messages" is logged.
//
// # Interactive Mode
//
// A reader goroutine feeds a bounded state.Store and the Bubble Tea viewer
// polls it. Quitting the viewer cancels the reader; Run waits for it to exit
// before returning.
//
// # Cancellation
//
// Decoding blocks in Read on the underlying file or socket. Run closes the
// source when ctx is done so a pending read returns promptly.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file unreadable or invalid
//   - Record file missing, or the socket never accepting a connection
//   - Output file cannot be opened, or a write fails
//
// Recoverable errors (logged, reading continues):
//   - Malformed record lines
//
// # Usage Example
//
//	level := severity.Debug
//	err := app.Run(ctx, app.Options{
//		File:  "records.jsonl",
//		Level: &level,
//	})
package app
