package home

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/yext/minihttpd/common"
)

// Configuration defines the working directories used by minihttpd
type Configuration struct {
	Dir      string
	LogDir   string
	PidDir   string
	CacheDir string
}

// NewConfiguration creates a Configuration rooted at dir, creating any
// missing directories. If dir is empty, ~/.minihttpd is used.
func NewConfiguration(dir string) (*Configuration, error) {
	if dir == "" {
		userHome, err := homedir.Dir()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		dir = filepath.Join(userHome, "."+common.Name)
	}
	c := &Configuration{
		Dir:      dir,
		LogDir:   filepath.Join(dir, "logs"),
		PidDir:   filepath.Join(dir, "pidFiles"),
		CacheDir: filepath.Join(dir, ".cache"),
	}
	for _, d := range []string{c.Dir, c.LogDir, c.PidDir, c.CacheDir} {
		if err := createDirIfNeeded(d); err != nil {
			return nil, errors.WithStack(err)
		}
	}
	return c, nil
}

// ToolLog is the path of the diagnostic log for minihttpd commands
func (c *Configuration) ToolLog() string {
	return filepath.Join(c.LogDir, common.Name+".log")
}

// AccessLog is the path of the access log written by running servers
func (c *Configuration) AccessLog() string {
	return filepath.Join(c.LogDir, "access.log")
}

func createDirIfNeeded(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return errors.WithStack(os.MkdirAll(path, 0777))
	}
	return nil
}
