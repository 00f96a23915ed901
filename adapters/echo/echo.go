// Package pagecraftecho provides Echo framework integration for the
// pagecraft editor.
//
// Mount an editor session onto an Echo instance or group:
//
//	e := echo.New()
//	s := editor.NewSession(editor.Options{})
//	pagecraftecho.Mount(e, s)
//
// Or mount on a group with middleware:
//
//	g := e.Group("/app", authMiddleware)
//	pagecraftecho.MountGroup(g, s)
package pagecraftecho

import (
	"crypto/rand"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/pthm/pagecraft/editor"
)

// Option configures the Mount and MountGroup functions.
type Option func(*options)

type options struct {
	key     []byte
	path    string
	archive string
}

// WithKey sets the drag token signing key.
// The key should be at least 32 bytes of cryptographically random data.
// If not provided, a random key is generated (suitable for development only).
func WithKey(key []byte) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithPath sets the URL path prefix for editor routes.
// Defaults to "/api/".
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithArchiveName sets the download name of the exported site.
func WithArchiveName(name string) Option {
	return func(o *options) {
		o.archive = name
	}
}

// Mount creates an editor handler for s and mounts it on an Echo instance.
//
//	e := echo.New()
//	h := pagecraftecho.Mount(e, s, pagecraftecho.WithKey(key))
func Mount(e *echo.Echo, s *editor.Session, opts ...Option) *editor.Handler {
	h, path := newHandler(s, opts)
	e.Any(path+"*", wrap(h))
	return h
}

// MountGroup creates an editor handler for s and mounts it on an Echo group.
// This allows the editor to share middleware with the group (auth, logging, etc.).
//
//	g := e.Group("/app", authMiddleware)
//	pagecraftecho.MountGroup(g, s)
func MountGroup(g *echo.Group, s *editor.Session, opts ...Option) *editor.Handler {
	h, path := newHandler(s, opts)
	g.Any(path+"*", wrap(h))
	return h
}

func newHandler(s *editor.Session, opts []Option) (*editor.Handler, string) {
	o := &options{path: "/api/"}
	for _, opt := range opts {
		opt(o)
	}

	key := o.key
	if key == nil {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("pagecraftecho: failed to generate random key: %v", err))
		}
	}

	h, err := editor.NewHandler(s, key, editor.WithArchiveName(o.archive))
	if err != nil {
		panic(fmt.Sprintf("pagecraftecho: %v", err))
	}
	return h, o.path
}

// wrap serves h with the path rewritten to the wildcard remainder, so the
// editor routes resolve under any mount prefix.
func wrap(h http.Handler) echo.HandlerFunc {
	return func(c echo.Context) error {
		r := c.Request().Clone(c.Request().Context())
		r.URL.Path = "/" + c.Param("*")
		r.URL.RawPath = ""
		h.ServeHTTP(c.Response(), r)
		return nil
	}
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return pagecraftecho.Render(c, generator.FragmentComponent(inst))
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.Request().Context(), c.Response())
}
