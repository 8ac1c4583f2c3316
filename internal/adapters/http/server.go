package http

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/soapsrc/ImposterGame/internal/app"
)

// NewServer assembles the echo instance: middleware, API routes and the
// static front-end rooted at staticDir.
func NewServer(svc *app.HintService, staticDir string, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestIDMiddleware())
	e.Use(LoggingMiddleware(logger))
	e.Use(middleware.CORS())
	e.Use(StaticMiddleware(staticDir))

	NewHandler(svc).Register(e)
	return e
}
