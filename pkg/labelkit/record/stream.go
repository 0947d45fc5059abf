package record

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Reader decodes records from a line-oriented JSON stream.
// Blank lines are skipped; a line that fails to decode aborts the
// whole read with an error wrapping ErrMalformed. There is no
// per-line recovery: record identity is positional, so a silently
// dropped line would shift every record after it.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader wraps r in a record stream reader.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{scanner: sc}
}

// Next returns the next record in the stream, or io.EOF at end of input.
func (r *Reader) Next() (Record, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return Record{}, fmt.Errorf("line %d: %w: %v", r.line, ErrMalformed, err)
		}
		return rec, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Record{}, err
	}
	return Record{}, io.EOF
}

// Writer encodes records onto a line-oriented JSON stream, one compact
// object per line. It never emits blank lines.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w in a record stream writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write appends one record to the stream.
func (w *Writer) Write(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if _, err := w.w.Write(data); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

// LoadFile reads every record from a JSONL file.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var recs []Record
	rd := NewReader(f)
	for {
		rec, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// SaveFile writes records to a JSONL file, replacing any existing content.
func SaveFile(path string, recs []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := NewWriter(f)
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return f.Close()
}
