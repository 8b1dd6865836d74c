// Package severity maps logback level codes and user input onto an ordered
// set of log levels.
package severity

import (
	"fmt"
	"strings"
)

// Level is the importance of a log record. Named levels compare in the
// order Trace < Debug < Info < Warn < Error.
type Level int

const (
	Trace Level = iota
	Debug
	Info
	Warn
	Error
	// Unknown marks a record whose level code was not recognised. It sorts
	// above Error so threshold filters never hide it.
	Unknown
)

// logback's ch.qos.logback.classic.Level integer codes.
const (
	codeTrace int32 = 5_000
	codeDebug int32 = 10_000
	codeInfo  int32 = 20_000
	codeWarn  int32 = 30_000
	codeError int32 = 40_000
)

var names = [...]string{
	Trace:   "TRACE",
	Debug:   "DEBUG",
	Info:    "INFO",
	Warn:    "WARN",
	Error:   "ERROR",
	Unknown: "UNKNOWN",
}

// String returns the upper-case level name.
func (l Level) String() string {
	if l < Trace || l > Unknown {
		return names[Unknown]
	}
	return names[l]
}

// FromCode converts a logback level code. Unrecognised codes map to Unknown.
func FromCode(code int32) Level {
	switch code {
	case codeTrace:
		return Trace
	case codeDebug:
		return Debug
	case codeInfo:
		return Info
	case codeWarn:
		return Warn
	case codeError:
		return Error
	default:
		return Unknown
	}
}

// Code returns the logback code for l, or -1 for Unknown.
func (l Level) Code() int32 {
	switch l {
	case Trace:
		return codeTrace
	case Debug:
		return codeDebug
	case Info:
		return codeInfo
	case Warn:
		return codeWarn
	case Error:
		return codeError
	default:
		return -1
	}
}

// UnknownLevelError reports a level name that Parse does not recognise.
type UnknownLevelError struct {
	Input string
}

func (e *UnknownLevelError) Error() string {
	return fmt.Sprintf("unknown log level: %s", e.Input)
}

// Parse accepts a short or long level name, case-insensitively:
// t/trace, d/debug, i/info, w/warn, e/error.
func Parse(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "t", "trace":
		return Trace, nil
	case "d", "debug":
		return Debug, nil
	case "i", "info":
		return Info, nil
	case "w", "warn":
		return Warn, nil
	case "e", "error":
		return Error, nil
	default:
		return Unknown, &UnknownLevelError{Input: s}
	}
}

// Enabled reports whether a record at level l passes a minimum threshold.
func (l Level) Enabled(threshold Level) bool {
	return l >= threshold
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so levels can be read
// straight from config files.
func (l *Level) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
