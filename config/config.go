// Package config holds the settings of a minihttpd server, loaded through
// viper from defaults, an optional config file, flags and MINIHTTPD_* env vars.
package config

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/yext/minihttpd/common"
)

// Setting keys
const (
	KeyHost           = "host"
	KeyPort           = "port"
	KeyBufferSize     = "buffer_size"
	KeyAcceptTimeout  = "accept_timeout"
	KeyReadTimeout    = "read_timeout"
	KeyTemplateDir    = "template_dir"
	KeyWatchTemplates = "watch_templates"
	KeyAccessLog      = "access_log"
	KeySiteName       = "site.name"
	KeySiteEmail      = "site.email"
)

// Config defines how a server listens and what the site shows
type Config struct {
	Host           string
	Port           int
	BufferSize     int
	AcceptTimeout  time.Duration
	ReadTimeout    time.Duration
	TemplateDir    string
	WatchTemplates bool
	AccessLog      bool
	Site           Site
}

// Site holds the values substituted into the site's templates
type Site struct {
	Name  string
	Email string
}

// Addr returns the host:port the server listens on
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// SetDefaults registers the default value of every setting on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyHost, "127.0.0.1")
	v.SetDefault(KeyPort, 8080)
	v.SetDefault(KeyBufferSize, 1024)
	v.SetDefault(KeyAcceptTimeout, time.Second)
	v.SetDefault(KeyReadTimeout, 5*time.Second)
	v.SetDefault(KeyTemplateDir, "templates")
	v.SetDefault(KeyWatchTemplates, false)
	v.SetDefault(KeyAccessLog, true)
	v.SetDefault(KeySiteName, common.Name)
	v.SetDefault(KeySiteEmail, "admin@example.com")
}

// New creates a viper instance with defaults set and env overrides enabled.
// A setting such as site.name can be overridden with MINIHTTPD_SITE_NAME.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(common.Name)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile merges the config file at path into v
func ReadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	return errors.WithMessage(v.ReadInConfig(), "could not read config file "+path)
}

// Load builds a Config from the current values in v
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Host:           v.GetString(KeyHost),
		Port:           v.GetInt(KeyPort),
		BufferSize:     v.GetInt(KeyBufferSize),
		AcceptTimeout:  v.GetDuration(KeyAcceptTimeout),
		ReadTimeout:    v.GetDuration(KeyReadTimeout),
		TemplateDir:    v.GetString(KeyTemplateDir),
		WatchTemplates: v.GetBool(KeyWatchTemplates),
		AccessLog:      v.GetBool(KeyAccessLog),
		Site: Site{
			Name:  v.GetString(KeySiteName),
			Email: v.GetString(KeySiteEmail),
		},
	}
	return cfg, errors.WithStack(cfg.Validate())
}

// Validate checks that the settings can be used to start a server
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return errors.Errorf("port out of range: %d", c.Port)
	}
	if c.BufferSize <= 0 {
		return errors.Errorf("%s must be positive, got %d", KeyBufferSize, c.BufferSize)
	}
	if c.AcceptTimeout < 0 {
		return errors.Errorf("%s must not be negative", KeyAcceptTimeout)
	}
	if c.ReadTimeout < 0 {
		return errors.Errorf("%s must not be negative", KeyReadTimeout)
	}
	return nil
}
