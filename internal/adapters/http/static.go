package http

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// StaticMiddleware serves the game front-end from root. "/" resolves to
// index.html. Dotfiles (.env in particular) are never served.
func StaticMiddleware(root string) echo.MiddlewareFunc {
	return middleware.StaticWithConfig(middleware.StaticConfig{
		Root:       ".",
		Index:      "index.html",
		Filesystem: hiddenDotFS{http.Dir(root)},
		Skipper: func(c echo.Context) bool {
			m := c.Request().Method
			return m != http.MethodGet && m != http.MethodHead
		},
	})
}

// hiddenDotFS reports any name with a dot-prefixed element as missing. It
// sees the name after echo has unescaped the request path, so encoded dots
// are caught as well.
type hiddenDotFS struct {
	dir http.FileSystem
}

func (h hiddenDotFS) Open(name string) (http.File, error) {
	if hasDotSegment(name) {
		return nil, fs.ErrNotExist
	}
	return h.dir.Open(name)
}

func hasDotSegment(name string) bool {
	for _, seg := range strings.Split(name, "/") {
		if seg != "." && strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}
