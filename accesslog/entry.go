package accesslog

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/yext/minihttpd/response"
)

// Entry represents a single served connection in the access log
type Entry struct {
	ID          string        `json:"id"`
	Time        time.Time     `json:"time"`
	Remote      string        `json:"remote"`
	RequestLine string        `json:"request"`
	Status      string        `json:"status"`
	Bytes       int           `json:"bytes"`
	Duration    time.Duration `json:"duration"`
	Error       string        `json:"error,omitempty"`
}

// Code returns the numeric status code of the entry, 0 if there was no response
func (e Entry) Code() int {
	return response.StatusCode(e.Status)
}

// ParseEntry parses the JSON representation of a log line into an Entry
func ParseEntry(line string) (Entry, error) {
	var entry Entry
	err := json.Unmarshal([]byte(line), &entry)
	if err != nil {
		return Entry{}, errors.WithStack(err)
	}
	return entry, nil
}
