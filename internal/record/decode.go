package record

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/five82/tailback/internal/logfmt"
	"github.com/five82/tailback/internal/severity"
)

// wireRecord is the JSON shape of a record, one per line.
type wireRecord struct {
	Message    string            `json:"message"`
	Arguments  []json.RawMessage `json:"arguments"`
	LoggerName string            `json:"loggerName"`
	ThreadName string            `json:"threadName"`
	Level      int32             `json:"level"`
	TimeStamp  int64             `json:"timeStamp"`
	MDC        map[string]string `json:"mdc"`
	Throwable  *Throwable        `json:"throwable"`
	Marker     *Marker           `json:"marker"`
	Context    *Context          `json:"loggerContext"`
}

// DecodeError reports a line that could not be decoded. Decoding continues
// with the following line.
type DecodeError struct {
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode record on line %d: %v", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// MaxLineSize is the longest line the decoder will buffer.
const MaxLineSize = 1 << 20

// ErrLineTooLong is wrapped in the DecodeError returned for a line longer
// than MaxLineSize. The rest of that line is discarded.
var ErrLineTooLong = errors.New("line exceeds 1 MiB")

// Decoder reads newline-delimited JSON records.
type Decoder struct {
	reader *bufio.Reader
	buf    []byte
	line   int
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{reader: bufio.NewReaderSize(r, 64*1024)}
}

// Decode returns the next record. It returns io.EOF once the input is
// exhausted and a *DecodeError for a malformed or oversized line. Blank
// lines are skipped.
func (d *Decoder) Decode() (Record, error) {
	for {
		raw, tooLong, err := d.readLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return Record{}, fmt.Errorf("read records: %w", err)
		}
		if err != nil && len(raw) == 0 && !tooLong {
			return Record{}, io.EOF
		}
		d.line++
		if tooLong {
			return Record{}, &DecodeError{Line: d.line, Err: ErrLineTooLong}
		}
		line := bytes.TrimSpace(raw)
		if len(line) == 0 {
			continue
		}
		rec, err := Unmarshal(line)
		if err != nil {
			return Record{}, &DecodeError{Line: d.line, Err: err}
		}
		return rec, nil
	}
}

// readLine reads through the next newline. Once a line passes MaxLineSize
// its bytes are dropped and tooLong is set.
func (d *Decoder) readLine() (line []byte, tooLong bool, err error) {
	d.buf = d.buf[:0]
	for {
		chunk, err := d.reader.ReadSlice('\n')
		if !tooLong {
			if len(d.buf)+len(chunk) > MaxLineSize+1 {
				tooLong = true
				d.buf = d.buf[:0]
			} else {
				d.buf = append(d.buf, chunk...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		return d.buf, tooLong, err
	}
}

// Unmarshal decodes a single JSON record.
func Unmarshal(data []byte) (Record, error) {
	var w wireRecord
	if err := json.Unmarshal(data, &w); err != nil {
		return Record{}, err
	}
	args, err := decodeArguments(w.Arguments)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Template:   w.Message,
		Arguments:  args,
		LoggerName: w.LoggerName,
		ThreadName: w.ThreadName,
		Level:      severity.FromCode(w.Level),
		Timestamp:  w.TimeStamp,
		MDC:        w.MDC,
		Throwable:  w.Throwable,
		Marker:     w.Marker,
		Context:    w.Context,
	}, nil
}

// decodeArguments flattens arguments to strings. JSON null becomes
// logfmt.NullArg; numbers, booleans and objects keep their JSON text.
func decodeArguments(raw []json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	args := make([]string, len(raw))
	for i, msg := range raw {
		trimmed := bytes.TrimSpace(msg)
		switch {
		case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
			args[i] = logfmt.NullArg
		case trimmed[0] == '"':
			if err := json.Unmarshal(trimmed, &args[i]); err != nil {
				return nil, fmt.Errorf("argument %d: %w", i, err)
			}
		default:
			args[i] = string(trimmed)
		}
	}
	return args, nil
}
