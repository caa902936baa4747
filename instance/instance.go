// Package instance tracks running servers through instance files in the
// pid directory, one per listening port.
package instance

import (
	"encoding/json"
	"io/ioutil"
	"net"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrNotRunning is returned when no instance file exists for an address
var ErrNotRunning = errors.New("no server running")

const (
	filePrefix = "server-"
	fileSuffix = ".json"
)

// Instance describes a running server
type Instance struct {
	Pid        int       `json:"pid"`
	Addr       string    `json:"addr"`
	Command    string    `json:"command"`
	StartTime  time.Time `json:"startTime"`
	ConfigFile string    `json:"configFile,omitempty"`
	AccessLog  string    `json:"accessLog,omitempty"`
}

// Port returns the port portion of the instance address
func (i Instance) Port() string {
	_, port, err := net.SplitHostPort(i.Addr)
	if err != nil {
		return i.Addr
	}
	return port
}

// FileName returns the name of the instance file for a server on addr
func FileName(addr string) string {
	return filePrefix + Instance{Addr: addr}.Port() + fileSuffix
}

// Save writes the instance file for i into pidDir
func Save(pidDir string, i Instance) error {
	content, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		return errors.WithMessage(err, "marshal instance")
	}
	err = ioutil.WriteFile(filepath.Join(pidDir, FileName(i.Addr)), content, 0644)
	return errors.WithMessage(err, "save instance")
}

// Load reads the instance file for a server on addr.
// ErrNotRunning is returned if there is none.
func Load(pidDir, addr string) (*Instance, error) {
	return loadFile(filepath.Join(pidDir, FileName(addr)))
}

func loadFile(path string) (*Instance, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotRunning
		}
		return nil, errors.WithStack(err)
	}
	var i Instance
	if err := json.Unmarshal(raw, &i); err != nil {
		return nil, errors.WithMessage(err, "parse "+filepath.Base(path))
	}
	return &i, nil
}

// LoadAll reads every instance file in pidDir, ordered by port.
// Files that cannot be parsed are skipped.
func LoadAll(pidDir string) ([]Instance, error) {
	files, err := ioutil.ReadDir(pidDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WithStack(err)
	}
	var instances []Instance
	for _, f := range files {
		if f.IsDir() || !strings.HasPrefix(f.Name(), filePrefix) || !strings.HasSuffix(f.Name(), fileSuffix) {
			continue
		}
		i, err := loadFile(filepath.Join(pidDir, f.Name()))
		if err != nil {
			continue
		}
		instances = append(instances, *i)
	}
	sort.Slice(instances, func(a, b int) bool {
		pa, errA := strconv.Atoi(instances[a].Port())
		pb, errB := strconv.Atoi(instances[b].Port())
		if errA != nil || errB != nil {
			return instances[a].Port() < instances[b].Port()
		}
		return pa < pb
	})
	return instances, nil
}

// Remove deletes the instance file for a server on addr, if any
func Remove(pidDir, addr string) error {
	err := os.Remove(filepath.Join(pidDir, FileName(addr)))
	if err != nil && !os.IsNotExist(err) {
		return errors.WithStack(err)
	}
	return nil
}
