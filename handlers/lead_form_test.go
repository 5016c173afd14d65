package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"ovies_landing_go/config"
	"ovies_landing_go/models"
	"ovies_landing_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadFieldHandler(t *testing.T) {
	t.Run("HTMX edit returns status and email hint", func(t *testing.T) {
		c, rec := formRequest("/lead/field", url.Values{"key": {"email"}, "email": {"jane@"}}, true)
		form := attachLeadForm(c, okSubmitter())

		require.NoError(t, LeadFieldHandler(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "jane@", form.Form().Email)
		body := rec.Body.String()
		assert.Contains(t, body, `id="lead-form-status"`)
		assert.Contains(t, body, `hx-swap-oob="true"`)
		assert.Contains(t, body, services.EmailHintMessage)
		assert.Contains(t, body, `data-can-submit="false" disabled>`)
	})

	t.Run("JSON edit returns the snapshot", func(t *testing.T) {
		c, rec := jsonRequest("/lead/field", `{"key":"fullName","value":"Jane"}`)
		attachLeadForm(c, okSubmitter())

		require.NoError(t, LeadFieldHandler(c))

		snapshot := decodeSnapshot(t, rec)
		assert.Equal(t, "Jane", snapshot.Form.FullName)
		assert.False(t, snapshot.CanSubmit)
	})

	t.Run("Edit clears a previous error", func(t *testing.T) {
		c, rec := jsonRequest("/lead/field", `{"key":"goal","value":"grow"}`)
		form := attachLeadForm(c, okSubmitter())
		require.ErrorIs(t, form.Submit(context.Background()), services.ErrLeadValidation)

		require.NoError(t, LeadFieldHandler(c))
		assert.Empty(t, decodeSnapshot(t, rec).Error)
	})

	t.Run("Unknown key is rejected", func(t *testing.T) {
		c, _ := jsonRequest("/lead/field", `{"key":"phone","value":"555"}`)
		form := attachLeadForm(c, okSubmitter())

		err := LeadFieldHandler(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.True(t, form.Form().IsEmpty())
	})

	t.Run("Unknown key over HTMX renders inline error", func(t *testing.T) {
		c, rec := formRequest("/lead/field", url.Values{"key": {"phone"}}, true)
		attachLeadForm(c, okSubmitter())

		require.NoError(t, LeadFieldHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "form-error")
	})

	t.Run("Missing session", func(t *testing.T) {
		c, _ := jsonRequest("/lead/field", `{"key":"email","value":"x"}`)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, LeadFieldHandler(c), &httpErr)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
	})
}

func TestLeadSubmitHandler(t *testing.T) {
	t.Run("HTMX success renders the thank-you overlay", func(t *testing.T) {
		c, rec := formRequest("/lead/submit", validLeadValues(), true)
		form := attachLeadForm(c, okSubmitter())

		require.NoError(t, LeadSubmitHandler(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "leadSubmitted", rec.Header().Get("HX-Trigger"))
		assert.Contains(t, rec.Body.String(), "Request received")
		assert.Contains(t, rec.Body.String(), `action="/lead/reset"`)
		assert.Equal(t, models.SubmissionSubmitted, form.Submission().Status)
		assert.Equal(t, "Acme", form.Form().Company)
	})

	t.Run("JSON validation failure is 422", func(t *testing.T) {
		c, rec := jsonRequest("/lead/submit", `{"fullName":"J","email":"nope","goal":"grow"}`)
		form := attachLeadForm(c, okSubmitter())

		require.NoError(t, LeadSubmitHandler(c))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		snapshot := decodeSnapshot(t, rec)
		assert.Equal(t, services.ValidationMessage, snapshot.Error)
		assert.Equal(t, models.IdleSubmission(), snapshot.Submission)
		assert.Equal(t, "J", form.Form().FullName)
	})

	t.Run("JSON submission failure is 502", func(t *testing.T) {
		c, rec := jsonRequest("/lead/submit", `{"fullName":"Jane","email":"jane@example.com","goal":"Book more calls"}`)
		attachLeadForm(c, services.SubmitterFunc(func(ctx context.Context, lead models.Lead) error {
			return errors.New("crm down")
		}))

		require.NoError(t, LeadSubmitHandler(c))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		snapshot := decodeSnapshot(t, rec)
		assert.Equal(t, models.FailedSubmission(services.SubmissionFailedMessage), snapshot.Submission)
		assert.Equal(t, services.SubmissionFailedMessage, snapshot.Error)
	})

	t.Run("JSON body without fields submits current state", func(t *testing.T) {
		c, rec := jsonRequest("/lead/submit", `{}`)
		form := attachLeadForm(c, okSubmitter())
		form.UpdateField(models.FieldFullName, "Jane")
		form.UpdateField(models.FieldEmail, "jane@example.com")
		form.UpdateField(models.FieldGoal, "Book more calls")

		require.NoError(t, LeadSubmitHandler(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Jane", form.Form().FullName)
	})

	t.Run("Plain form post redirects to the form", func(t *testing.T) {
		c, rec := formRequest("/lead/submit", validLeadValues(), false)
		form := attachLeadForm(c, okSubmitter())

		require.NoError(t, LeadSubmitHandler(c))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/#form", rec.Header().Get(echo.HeaderLocation))
		assert.Equal(t, models.SubmissionSubmitted, form.Submission().Status)
	})

	t.Run("Missing Turnstile token leaves state untouched", func(t *testing.T) {
		c, rec := jsonRequest("/lead/submit", `{"fullName":"Jane","email":"jane@example.com","goal":"Book more calls"}`)
		c.Set("config", &config.Config{TurnstileSecretKey: "secret"})
		var calls int
		form := attachLeadForm(c, services.SubmitterFunc(func(ctx context.Context, lead models.Lead) error {
			calls++
			return nil
		}))

		require.NoError(t, LeadSubmitHandler(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, TurnstileMissingMessage, decodeSnapshot(t, rec).Error)
		assert.Zero(t, calls)
		assert.Equal(t, models.IdleSubmission(), form.Submission())
		assert.Empty(t, form.Error())
	})
}

func TestLeadResetHandler(t *testing.T) {
	t.Run("HTMX reset renders an empty form", func(t *testing.T) {
		c, rec := formRequest("/lead/reset", url.Values{}, true)
		form := attachLeadForm(c, okSubmitter())
		for key, values := range validLeadValues() {
			form.UpdateField(models.FieldKey(key), values[0])
		}
		require.NoError(t, form.Submit(context.Background()))

		require.NoError(t, LeadResetHandler(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "leadReset", rec.Header().Get("HX-Trigger"))
		assert.NotContains(t, rec.Body.String(), "Request received")
		assert.True(t, form.Form().IsEmpty())
		assert.Equal(t, models.IdleSubmission(), form.Submission())
	})

	t.Run("Plain post redirects home", func(t *testing.T) {
		c, rec := formRequest("/lead/reset", url.Values{}, false)
		attachLeadForm(c, okSubmitter())

		require.NoError(t, LeadResetHandler(c))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestLeadSnapshotHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/api/lead", nil)
	form := attachLeadForm(c, okSubmitter())
	form.UpdateField(models.FieldEmail, "jane@")

	require.NoError(t, LeadSnapshotHandler(c))

	snapshot := decodeSnapshot(t, rec)
	assert.Equal(t, "jane@", snapshot.Form.Email)
	assert.True(t, snapshot.ShowEmailHint)
	assert.False(t, snapshot.IsEmailValid)
}

func TestLeadSnapshotHandlerWithoutSession(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/api/lead", nil)

	require.NoError(t, LeadSnapshotHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	snapshot := decodeSnapshot(t, rec)
	assert.True(t, snapshot.Form.IsEmpty())
	assert.Equal(t, models.IdleSubmission(), snapshot.Submission)
}
