package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ovies_landing_go/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetCSRFToken(t *testing.T) {
	e := echo.New()

	t.Run("TokenExists", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		expectedToken := "test-csrf-token"
		c.Set("csrf", expectedToken)

		token := GetCSRFToken(c)
		assert.Equal(t, expectedToken, token)
	})

	t.Run("TokenMissing", func(t *testing.T) {
		c := e.NewContext(nil, nil)

		token := GetCSRFToken(c)
		assert.Equal(t, "", token)
	})

	t.Run("TokenInvalidType", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		c.Set("csrf", 123) // Not a string

		token := GetCSRFToken(c)
		assert.Equal(t, "", token)
	})
}

func TestCSRFMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(CSRF(&config.Config{Environment: "test"}))
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, GetCSRFToken(c))
	})
	e.POST("/lead/submit", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	t.Run("GetIssuesToken", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Body.String())
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "_csrf=")
	})

	t.Run("PostWithoutTokenRejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/lead/submit", strings.NewReader("fullName=Jane"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("PostWithHeaderTokenAccepted", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		token := rec.Body.String()
		cookie := rec.Result().Cookies()[0]

		rec = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/lead/submit", nil)
		req.Header.Set("X-CSRF-Token", token)
		req.AddCookie(cookie)
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
