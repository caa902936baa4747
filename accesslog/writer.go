// Package accesslog records served connections as JSON lines and follows
// the resulting log files.
package accesslog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

// Writer appends entries to an access log
type Writer struct {
	mu    sync.Mutex
	out   io.Writer
	lines int
}

// NewWriter creates a Writer appending to out
func NewWriter(out io.Writer) *Writer {
	return &Writer{
		out: out,
	}
}

// Len returns the number of entries recorded by this Writer
func (w *Writer) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lines
}

// Record writes an entry as a single line.
// A missing ID or Time is filled in before writing.
func (w *Writer) Record(entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewV4().String()
	}
	if entry.Time.IsZero() {
		entry.Time = time.Now()
	}

	jsonContent, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "could not prepare log line")
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	_, err = fmt.Fprintln(w.out, string(jsonContent))
	if err != nil {
		return errors.Wrap(err, "could not write log line")
	}
	w.lines++
	return nil
}

// ReadAll returns every entry currently in the log file at path.
// Lines that cannot be parsed are skipped.
func ReadAll(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		entry, err := ParseEntry(scanner.Text())
		if err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, errors.WithStack(scanner.Err())
}
