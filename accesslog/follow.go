package accesslog

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/hpcloud/tail"
	"github.com/pkg/errors"
	"github.com/yext/minihttpd/common"
)

// Follower tails an access log file, emitting each entry as it is written
type Follower struct {
	Logger common.Logger

	done     chan struct{}
	stopOnce sync.Once
	path     string
}

// NewFollower creates a follower for the log file at path.
// The file does not need to exist when the follower is started.
func NewFollower(path string) *Follower {
	return &Follower{
		path: path,
		done: make(chan struct{}),
	}
}

// Start begins following the log. The returned channel is closed when
// the follower is stopped.
func (f *Follower) Start() <-chan Entry {
	entries := make(chan Entry)
	go f.doStart(entries)
	return entries
}

// Stop ends a follow started with Start. It may be called more than once.
func (f *Follower) Stop() {
	f.stopOnce.Do(func() {
		close(f.done)
	})
}

func (f *Follower) doStart(entries chan<- Entry) {
	defer close(entries)

	// Wait for file to exist
	for {
		if _, err := os.Stat(f.path); !os.IsNotExist(err) {
			break
		}
		select {
		case <-f.done:
			return
		case <-time.After(100 * time.Millisecond):
		}
	}

	err := f.follow(entries)
	if err != nil {
		common.MaskLogger(f.Logger).Printf("Error following %v: %v\n", f.path, err)
	}
}

func (f *Follower) follow(entries chan<- Entry) error {
	t, err := tail.TailFile(f.path, tail.Config{
		Follow: true,
		ReOpen: true,
		Logger: tail.DiscardingLogger,
		Location: &tail.SeekInfo{
			Offset: 0,
			Whence: io.SeekStart,
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}
	defer t.Cleanup()
	defer t.Stop()

	for {
		select {
		case <-f.done:
			return nil
		case line, ok := <-t.Lines:
			if !ok {
				return errors.WithStack(t.Err())
			}
			entry, err := ParseEntry(line.Text)
			if err != nil {
				continue
			}
			select {
			case entries <- entry:
			case <-f.done:
				return nil
			}
		}
	}
}
