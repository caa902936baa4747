package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/yext/minihttpd/common"
)

// FileNames are the config file names searched for, in order of preference
var FileNames = []string{
	common.Name + ".yaml",
	common.Name + ".yml",
	common.Name + ".json",
	common.Name + ".toml",
}

// GetConfigPathFromWorkingDirectory identifies the config file to use from the
// current working directory, see GetConfigPath.
func GetConfigPathFromWorkingDirectory(homeDir string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.WithStack(err)
	}
	return GetConfigPath(homeDir, wd), nil
}

// GetConfigPath identifies the location of a config file, if any exists.
// The working directory and its parents are searched first, then homeDir.
// An empty string is returned if no file is found.
func GetConfigPath(homeDir string, wd string) string {
	var dirs []string
	for {
		dirs = append(dirs, wd)
		parent := filepath.Dir(wd)
		if parent == wd {
			break
		}
		wd = parent
	}
	if homeDir != "" {
		dirs = append(dirs, homeDir)
	}

	for _, dir := range dirs {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			info, err := os.Stat(candidate)
			if err != nil || info.IsDir() {
				continue
			}
			absfp, err := filepath.Abs(candidate)
			if err != nil {
				return candidate
			}
			return absfp
		}
	}
	return ""
}
