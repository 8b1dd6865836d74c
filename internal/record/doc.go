// Package record holds the decoded view of a logback logging event and a
// streaming decoder for newline-delimited JSON records.
//
// Each line carries one event:
//
//	{"message":"Loaded {} items","arguments":["3"],"loggerName":"uk.ac.diamond.daq.Loader",
//	 "threadName":"main","level":20000,"timeStamp":1733000000000}
//
// The level field is the logback integer code (5000 TRACE through 40000
// ERROR); unrecognised codes decode as severity.Unknown. Null argument
// elements decode as logfmt.NullArg so that the formatter prints "null".
//
// A record that carries a marker ends the session: consumers stop reading
// after it.
package record
