package record

import (
	"strconv"
	"strings"
	"time"

	"github.com/five82/tailback/internal/logfmt"
	"github.com/five82/tailback/internal/severity"
)

// Record is a decoded logback logging event.
type Record struct {
	Template   string
	Arguments  []string
	LoggerName string
	ThreadName string
	Level      severity.Level
	Timestamp  int64 // milliseconds since the Unix epoch
	MDC        map[string]string
	Throwable  *Throwable
	Marker     *Marker
	Context    *Context
}

// Message renders the template with its arguments.
func (r Record) Message() string {
	return logfmt.Format(r.Template, r.Arguments)
}

// Time returns the event timestamp.
func (r Record) Time() time.Time {
	return time.UnixMilli(r.Timestamp)
}

// IsEndMarker reports whether the record carries a marker. Producers mark
// the final record of a session.
func (r Record) IsEndMarker() bool {
	return r.Marker != nil
}

// Stack renders the attached throwable, starting with a newline, or returns
// "" when there is none.
func (r Record) Stack() string {
	if r.Throwable == nil {
		return ""
	}
	var b strings.Builder
	r.Throwable.write(&b, "")
	return b.String()
}

// Throwable mirrors logback's ThrowableProxy.
type Throwable struct {
	ClassName    string       `json:"className"`
	Message      string       `json:"message"`
	CommonFrames int          `json:"commonFramesCount"`
	StackTrace   []Frame      `json:"stackTrace"`
	Cause        *Throwable   `json:"cause"`
	Suppressed   []*Throwable `json:"suppressed"`
}

const frameIndent = "\n     at "

func (t *Throwable) write(b *strings.Builder, prefix string) {
	b.WriteByte('\n')
	b.WriteString(prefix)
	b.WriteString(t.ClassName)
	if t.Message != "" {
		b.WriteString(": ")
		b.WriteString(t.Message)
	}
	for _, f := range t.StackTrace {
		b.WriteString(frameIndent)
		b.WriteString(f.String())
	}
	if t.CommonFrames > 0 {
		b.WriteString("\n     ... ")
		b.WriteString(strconv.Itoa(t.CommonFrames))
		b.WriteString(" common frames omitted")
	}
	for _, s := range t.Suppressed {
		if s != nil {
			s.write(b, "Suppressed: ")
		}
	}
	if t.Cause != nil {
		t.Cause.write(b, "Caused by: ")
	}
}

// Frame is one stack trace element.
type Frame struct {
	DeclaringClass string `json:"declaringClass"`
	MethodName     string `json:"methodName"`
	FileName       string `json:"fileName"`
	Line           int    `json:"lineNumber"`
}

// String formats the frame the way the JVM prints it.
func (f Frame) String() string {
	file := f.FileName
	if file == "" {
		file = "Unknown Source"
	}
	loc := file
	if f.FileName != "" && f.Line > 0 {
		loc += ":" + strconv.Itoa(f.Line)
	}
	return f.DeclaringClass + "." + f.MethodName + "(" + loc + ")"
}

// Marker is a named slf4j marker with optional references.
type Marker struct {
	Name       string    `json:"name"`
	References []*Marker `json:"references"`
}

// Context describes the logger context that produced a record.
type Context struct {
	Name       string            `json:"name"`
	BirthTime  int64             `json:"birthTime"`
	Properties map[string]string `json:"properties"`
}
