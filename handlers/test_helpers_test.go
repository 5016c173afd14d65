package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"ovies_landing_go/config"
	"ovies_landing_go/middleware"
	"ovies_landing_go/models"
	"ovies_landing_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	content, err := services.LoadLandingContent()
	if err != nil {
		panic(err)
	}

	c.Set("config", &config.Config{
		Environment: "test",
		AppURL:      "https://ovies.example",
	})
	c.Set("content", content)

	return e, c, rec
}

// formRequest builds a url-encoded POST context
func formRequest(path string, values url.Values, htmx bool) (echo.Context, *httptest.ResponseRecorder) {
	_, c, rec := setupEcho("POST", path, strings.NewReader(values.Encode()))
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		c.Request().Header.Set("HX-Request", "true")
	}
	return c, rec
}

// jsonRequest builds a JSON POST context
func jsonRequest(path, body string) (echo.Context, *httptest.ResponseRecorder) {
	_, c, rec := setupEcho("POST", path, strings.NewReader(body))
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c.Request().Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	return c, rec
}

func attachLeadForm(c echo.Context, submitter services.LeadSubmitter) *services.LeadFormController {
	form := services.NewLeadFormController(submitter)
	c.Set(middleware.ContextKeyLeadForm, form)
	return form
}

func okSubmitter() services.LeadSubmitter {
	return services.SubmitterFunc(func(ctx context.Context, lead models.Lead) error { return nil })
}

func decodeSnapshot(t *testing.T, rec *httptest.ResponseRecorder) models.LeadSnapshot {
	t.Helper()
	var snapshot models.LeadSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	return snapshot
}

func validLeadValues() url.Values {
	return url.Values{
		"fullName": {"Jane Doe"},
		"email":    {"jane@example.com"},
		"company":  {"Acme"},
		"goal":     {"Book more calls"},
	}
}
