package handlers

import (
	"net/http"
	"testing"

	"ovies_landing_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLandingHandler(t *testing.T) {
	t.Run("Renders copy and an empty form", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/", nil)
		attachLeadForm(c, okSubmitter())

		require.NoError(t, LandingHandler(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "<title>Free Landing Page Mini-Audit | Ovies Landing</title>")
		assert.Contains(t, body, `<link rel="canonical" href="https://ovies.example/">`)
		assert.Contains(t, body, "booked calls")
		assert.Contains(t, body, `id="form"`)
		assert.Contains(t, body, "Send Me the Audit")
		assert.Contains(t, body, "FAQPage")
		assert.Contains(t, body, "<code>LEAD_SUBMITTER</code>")
		assert.NotContains(t, body, "cf-turnstile")
	})

	t.Run("Keeps the visitor's in-progress values", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/", nil)
		form := attachLeadForm(c, okSubmitter())
		form.UpdateField(models.FieldFullName, "Jane Doe")
		form.UpdateField(models.FieldEmail, "jane@")

		require.NoError(t, LandingHandler(c))

		body := rec.Body.String()
		assert.Contains(t, body, `value="Jane Doe"`)
		assert.Contains(t, body, "Enter a valid email address.")
	})

	t.Run("Submit button works without JavaScript", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/", nil)
		attachLeadForm(c, okSubmitter())

		require.NoError(t, LandingHandler(c))

		body := rec.Body.String()
		assert.Contains(t, body, `data-can-submit="false">`)
		assert.NotContains(t, body, `data-can-submit="false" disabled`)
	})

	t.Run("Renders without a session", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/", nil)
		require.NoError(t, LandingHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestBookingHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/book", nil)

	require.NoError(t, BookingHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Book a free call")
	assert.Contains(t, body, `<link rel="canonical" href="https://ovies.example/book">`)
	assert.Contains(t, body, "Back to landing")
}

func TestHealthHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/healthz", nil)
	require.NoError(t, HealthHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
