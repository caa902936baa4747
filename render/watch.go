package render

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/yext/minihttpd/common"
	fsnotify "gopkg.in/fsnotify.v1"
)

// Watch enables caching of template text, using file system notifications on
// the template directory to drop cached entries when their files change.
// The function returned stops the watcher and disables the cache.
// Unlike loading, watching requires the template directory to exist.
func (s *Store) Watch() (func(), error) {
	logger := common.MaskLogger(s.Logger)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	err = watcher.Add(s.dir)
	if err != nil {
		watcher.Close()
		return nil, errors.WithMessage(err, "watch "+s.dir)
	}

	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				s.invalidate(filepath.Base(event.Name), logger)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Printf("Template watcher error: %v\n", err)
			}
		}
	}()

	closer := func() {
		logger.Printf("Closing template watcher\n")
		watcher.Close()
		<-done
		s.mu.Lock()
		s.cache = nil
		s.mu.Unlock()
	}
	return closer, nil
}

func (s *Store) invalidate(name string, logger common.Logger) {
	if name == IgnoreFile {
		ignores, err := loadIgnores(s.dir)
		if err != nil {
			logger.Printf("Could not reload %v: %v\n", IgnoreFile, err)
			return
		}
		s.mu.Lock()
		s.ignores = ignores
		s.gen++
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	if s.cache == nil {
		return
	}
	if _, ok := s.cache[name]; ok {
		logger.Printf("Template changed: %v\n", name)
		delete(s.cache, name)
	}
}
