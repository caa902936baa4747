// Package pages defines the site served by minihttpd: the fixed set of paths
// and the handler bound to each.
package pages

import (
	"github.com/yext/minihttpd/common"
	"github.com/yext/minihttpd/config"
	"github.com/yext/minihttpd/render"
	"github.com/yext/minihttpd/response"
	"github.com/yext/minihttpd/router"
)

// HomeBody is the body of the home page
const HomeBody = "<h1>Главная страница</h1><p>Добро пожаловать!</p>"

// Template file names
const (
	AboutTemplate   = "about.html"
	ContactTemplate = "contact.html"
)

// NewRouter builds the route table for the site.
func NewRouter(store *render.Store, site config.Site) *router.Router {
	r := router.New()
	r.Register("/", home)
	r.Register("/about", func() response.Response {
		return store.Render(AboutTemplate, render.Vars{
			"name":    site.Name,
			"version": common.Version,
		})
	})
	r.Register("/contact", func() response.Response {
		return store.Render(ContactTemplate, render.Vars{
			"name":  site.Name,
			"email": site.Email,
		})
	})
	r.Register("/favicon.ico", favicon)
	return r
}

func home() response.Response {
	return response.New(HomeBody)
}

// There is no icon to serve, but browsers ask for one on every page load.
func favicon() response.Response {
	return response.New("", response.WithContentType("image/x-icon"))
}
