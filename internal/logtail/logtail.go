package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read returns at most maxLines from the end of the file at path. A
// maxLines of zero or less returns every line. A missing file yields no
// lines and no error.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)

	if maxLines <= 0 {
		var lines []string
		for {
			line, ok, err := nextLine(reader)
			if err != nil {
				return nil, fmt.Errorf("read log: %w", err)
			}
			if !ok {
				return lines, nil
			}
			lines = append(lines, line)
		}
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for {
		line, ok, err := nextLine(reader)
		if err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		if !ok {
			break
		}
		ring[idx] = line
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// nextLine returns the next line without its line ending. Lines of any
// length are returned whole; the record decoder decides what is too long.
func nextLine(r *bufio.Reader) (string, bool, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}
	if err != nil && line == "" {
		return "", false, nil
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true, nil
}

// Reader returns the last maxLines lines of a record file as a stream for
// record.Decoder, using the same ring buffer as Read.
func Reader(path string, maxLines int) (io.Reader, error) {
	lines, err := Read(path, maxLines)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return strings.NewReader(""), nil
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n"), nil
}
