package home

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/theothertomelliott/must"
)

func TestNewConfiguration(t *testing.T) {
	dir, err := ioutil.TempDir("", "home")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	root := filepath.Join(dir, "nested", ".minihttpd")
	cfg, err := NewConfiguration(root)
	must.BeNoError(t, err)

	must.BeEqual(t, &Configuration{
		Dir:      root,
		LogDir:   filepath.Join(root, "logs"),
		PidDir:   filepath.Join(root, "pidFiles"),
		CacheDir: filepath.Join(root, ".cache"),
	}, cfg)

	for _, d := range []string{cfg.Dir, cfg.LogDir, cfg.PidDir, cfg.CacheDir} {
		info, err := os.Stat(d)
		if err != nil {
			t.Errorf("%v was not created: %v", d, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%v is not a directory", d)
		}
	}
	must.BeEqual(t, filepath.Join(root, "logs", "minihttpd.log"), cfg.ToolLog())
	must.BeEqual(t, filepath.Join(root, "logs", "access.log"), cfg.AccessLog())

	// Existing directories are reused
	_, err = NewConfiguration(root)
	must.BeNoError(t, err)
}
