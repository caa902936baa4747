package minihttpd

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/yext/minihttpd/common"
	"github.com/yext/minihttpd/config"
	"github.com/yext/minihttpd/home"
	"github.com/yext/minihttpd/pages"
	"github.com/yext/minihttpd/render"
	"github.com/yext/minihttpd/router"
	"github.com/yext/minihttpd/ui"
	"github.com/yext/minihttpd/ui/terminal"
)

// Client runs minihttpd operations against a loaded configuration
type Client struct {
	// Diagnostic log for the operation being run
	Logger *log.Logger
	// Phase-by-phase output of a running server
	Console common.Logger

	UI ui.Provider

	Config     config.Config
	ConfigFile string // Path to the config file, if any was loaded

	DirConfig *home.Configuration

	// Executable name recorded for running servers, used to recognize them later
	Command string
}

// NewClient creates a client for the given settings and working directories
func NewClient(cfg config.Config, dirConfig *home.Configuration) *Client {
	return &Client{
		Logger:    log.New(ioutil.Discard, "", 0), // Default to a logger that discards output
		UI:        terminal.NewProvider(),
		Config:    cfg,
		DirConfig: dirConfig,
		Command:   filepath.Base(os.Args[0]),
	}
}

// Store opens the template store for the configured template directory
func (c *Client) Store() (*render.Store, error) {
	store, err := render.NewStore(c.Config.TemplateDir)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	store.Logger = common.PrefixLogger("templates: ", c.Logger)
	return store, nil
}

// Router builds the route table of the site
func (c *Client) Router() (*router.Router, error) {
	store, err := c.Store()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return pages.NewRouter(store, c.Config.Site), nil
}

// Routes lists the paths served by the site
func (c *Client) Routes() error {
	r, err := c.Router()
	if err != nil {
		return errors.WithStack(err)
	}
	c.UI.Routes(r.Paths())
	return nil
}
