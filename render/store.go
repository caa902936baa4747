// Package render loads template files from a directory and fills their
// placeholders by literal token replacement.
package render

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	ignore "github.com/sabhiram/go-git-ignore"
	"github.com/yext/minihttpd/common"
	"github.com/yext/minihttpd/response"
)

// IgnoreFile lists, in gitignore syntax, template files that must not be served
const IgnoreFile = ".pageignore"

// ErrNotFound is returned when a template does not exist or may not be served
var ErrNotFound = errors.New("template not found")

// Store provides access to the templates in a single directory.
type Store struct {
	Logger common.Logger

	dir string

	mu      sync.RWMutex
	ignores *ignore.GitIgnore
	cache   map[string]string // nil unless watching
	gen     uint64            // incremented on every invalidation
}

// NewStore creates a Store for the templates in dir.
// The directory need not exist yet; missing templates render as 404s.
func NewStore(dir string) (*Store, error) {
	s := &Store{
		dir: dir,
	}
	ignores, err := loadIgnores(dir)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	s.ignores = ignores
	return s, nil
}

// Dir returns the directory templates are loaded from
func (s *Store) Dir() string {
	return s.dir
}

func loadIgnores(dir string) (*ignore.GitIgnore, error) {
	ignoreFile := filepath.Join(dir, IgnoreFile)
	if _, err := os.Stat(ignoreFile); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WithStack(err)
	}
	ignores, err := ignore.CompileIgnoreFile(ignoreFile)
	return ignores, errors.WithMessage(err, "compile "+IgnoreFile)
}

func (s *Store) isServable(name string) bool {
	if name == "" || name == "." || name == ".." || name == IgnoreFile {
		return false
	}
	if filepath.Base(name) != name {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ignores != nil && s.ignores.MatchesPath(name) {
		return false
	}
	return true
}

// Load returns the full text of the named template.
// ErrNotFound is returned for missing or ignored templates, and for names that
// are not bare file names.
func (s *Store) Load(name string) (string, error) {
	if !s.isServable(name) {
		return "", ErrNotFound
	}

	s.mu.RLock()
	gen := s.gen
	if s.cache != nil {
		if text, ok := s.cache[name]; ok {
			s.mu.RUnlock()
			return text, nil
		}
	}
	s.mu.RUnlock()

	content, err := ioutil.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", errors.WithStack(err)
	}
	text := string(content)

	s.mu.Lock()
	if s.cache != nil && s.gen == gen {
		s.cache[name] = text
	}
	s.mu.Unlock()
	return text, nil
}

// Render loads the named template and substitutes vars into it.
// A missing template produces a 404 response, any other failure a 500.
func (s *Store) Render(name string, vars Vars) (resp response.Response) {
	logger := common.MaskLogger(s.Logger)
	defer func() {
		if r := recover(); r != nil {
			logger.Printf("Recovered from panic rendering %v: %v\n", name, r)
			resp = response.InternalError()
		}
	}()

	text, err := s.Load(name)
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return response.NotFound()
		}
		logger.Printf("Could not load template %v: %v\n", name, err)
		return response.InternalError()
	}
	return response.New(Substitute(text, vars))
}
