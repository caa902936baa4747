package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/theothertomelliott/must"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New())
	must.BeNoError(t, err)
	must.BeEqual(t, Config{
		Host:          "127.0.0.1",
		Port:          8080,
		BufferSize:    1024,
		AcceptTimeout: time.Second,
		ReadTimeout:   5 * time.Second,
		TemplateDir:   "templates",
		AccessLog:     true,
		Site: Site{
			Name:  "minihttpd",
			Email: "admin@example.com",
		},
	}, cfg)
	must.BeEqual(t, "127.0.0.1:8080", cfg.Addr())
}

func TestReadFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "config")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "minihttpd.yaml")
	content := `
host: 0.0.0.0
port: 9090
accept_timeout: 250ms
template_dir: /srv/templates
watch_templates: true
site:
  name: Example
`
	if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	v := New()
	must.BeNoError(t, ReadFile(v, path))
	cfg, err := Load(v)
	must.BeNoError(t, err)

	must.BeEqual(t, "0.0.0.0:9090", cfg.Addr())
	must.BeEqual(t, 250*time.Millisecond, cfg.AcceptTimeout)
	must.BeEqual(t, "/srv/templates", cfg.TemplateDir)
	must.BeEqual(t, true, cfg.WatchTemplates)
	must.BeEqual(t, Site{Name: "Example", Email: "admin@example.com"}, cfg.Site)
	must.BeEqual(t, 1024, cfg.BufferSize)
}

func TestReadFileMissing(t *testing.T) {
	err := ReadFile(New(), filepath.Join(os.TempDir(), "minihttpd-missing.yaml"))
	if err == nil {
		t.Errorf("expected an error")
	}
}

func TestEnvOverrides(t *testing.T) {
	os.Setenv("MINIHTTPD_PORT", "9191")
	os.Setenv("MINIHTTPD_SITE_NAME", "From env")
	defer os.Unsetenv("MINIHTTPD_PORT")
	defer os.Unsetenv("MINIHTTPD_SITE_NAME")

	cfg, err := Load(New())
	must.BeNoError(t, err)
	must.BeEqual(t, 9191, cfg.Port)
	must.BeEqual(t, "From env", cfg.Site.Name)
}

func TestValidate(t *testing.T) {
	valid := Config{Port: 8080, BufferSize: 1024}
	var tests = []struct {
		name     string
		modify   func(c *Config)
		expected error
	}{
		{
			name:   "valid",
			modify: func(c *Config) {},
		},
		{
			name:     "port too large",
			modify:   func(c *Config) { c.Port = 70000 },
			expected: errors.New("port out of range: 70000"),
		},
		{
			name:     "zero buffer",
			modify:   func(c *Config) { c.BufferSize = 0 },
			expected: errors.New("buffer_size must be positive, got 0"),
		},
		{
			name:     "negative timeout",
			modify:   func(c *Config) { c.ReadTimeout = -time.Second },
			expected: errors.New("read_timeout must not be negative"),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := valid
			test.modify(&cfg)
			must.BeEqualErrors(t, test.expected, cfg.Validate())
		})
	}
}

func TestGetConfigPath(t *testing.T) {
	dir, err := ioutil.TempDir("", "config")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	homeDir := filepath.Join(dir, "home")
	project := filepath.Join(dir, "project")
	nested := filepath.Join(project, "a", "b")
	for _, d := range []string{homeDir, nested} {
		if err := os.MkdirAll(d, 0755); err != nil {
			t.Fatal(err)
		}
	}

	must.BeEqual(t, "", GetConfigPath(homeDir, nested))

	homeConfig := filepath.Join(homeDir, "minihttpd.yaml")
	must.BeNoError(t, ioutil.WriteFile(homeConfig, []byte("port: 1"), 0644))
	must.BeEqual(t, homeConfig, GetConfigPath(homeDir, nested))

	projectConfig := filepath.Join(project, "minihttpd.toml")
	must.BeNoError(t, ioutil.WriteFile(projectConfig, []byte("port = 2"), 0644))
	must.BeEqual(t, projectConfig, GetConfigPath(homeDir, nested))
}
