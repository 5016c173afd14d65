package handlers

import (
	"strings"

	"ovies_landing_go/config"
	"ovies_landing_go/models"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// wantsJSON reports whether an API client asked for JSON
func wantsJSON(c echo.Context) bool {
	req := c.Request()
	return strings.Contains(req.Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) ||
		strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}

// render writes a component with an explicit status code
func render(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

// htmxError renders an inline error for HTMX requests and a plain HTTP
// error otherwise
func htmxError(c echo.Context, status int, message string) error {
	if isHTMX(c) {
		return c.HTML(status, `<div class="form-error" role="alert">`+message+`</div>`)
	}
	return echo.NewHTTPError(status, message)
}

func getConfig(c echo.Context) *config.Config {
	if cfg, ok := c.Get("config").(*config.Config); ok {
		return cfg
	}
	return &config.Config{}
}

func getContent(c echo.Context) *models.LandingContent {
	if content, ok := c.Get("content").(*models.LandingContent); ok {
		return content
	}
	return &models.LandingContent{}
}

// requestOrigin returns the scheme and host the request came in on
func requestOrigin(c echo.Context) string {
	return c.Scheme() + "://" + c.Request().Host
}

// baseURL prefers the configured public URL over the request origin
func baseURL(c echo.Context) string {
	if cfg := getConfig(c); cfg.AppURL != "" {
		return cfg.AppURL
	}
	return requestOrigin(c)
}
