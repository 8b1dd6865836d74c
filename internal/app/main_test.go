package app

import (
	"testing"

	"go.uber.org/goleak"
)

// lumberjack starts its mill goroutine on first write and never stops it.
var leakOptions = []goleak.Option{
	goleak.IgnoreTopFunction("gopkg.in/natefinch/lumberjack%2ev2.(*Logger).millRun"),
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, leakOptions...)
}
