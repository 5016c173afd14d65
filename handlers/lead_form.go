package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"ovies_landing_go/middleware"
	"ovies_landing_go/models"
	"ovies_landing_go/services"
	"ovies_landing_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// Messages shown when the bot check blocks a submission
const (
	TurnstileMissingMessage = "Please complete the security check."
	TurnstileFailedMessage  = "Security check failed. Please try again."
)

type fieldUpdateRequest struct {
	Key   string `json:"key" form:"key"`
	Value string `json:"value" form:"value"`
}

// leadPayload is a full form post; absent fields are left untouched
type leadPayload struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Company  *string `json:"company"`
	Goal     *string `json:"goal"`
}

func leadFormView(c echo.Context, snapshot models.LeadSnapshot) partials.LeadFormView {
	return partials.LeadFormView{
		Snapshot:         snapshot,
		Offer:            getContent(c).Offer,
		CSRFToken:        middleware.GetCSRFToken(c),
		TurnstileSiteKey: getConfig(c).TurnstileSiteKey,
		Enhanced:         isHTMX(c),
	}
}

func requireLeadForm(c echo.Context) (*services.LeadFormController, error) {
	form := middleware.GetLeadForm(c)
	if form == nil {
		c.Logger().Error("Lead form session missing from context")
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Lead form unavailable")
	}
	return form, nil
}

// LeadFieldHandler applies a single field edit and returns the derived state
func LeadFieldHandler(c echo.Context) error {
	form, err := requireLeadForm(c)
	if err != nil {
		return err
	}

	var req fieldUpdateRequest
	if err := c.Bind(&req); err != nil {
		return htmxError(c, http.StatusBadRequest, "Invalid request")
	}

	key, ok := models.ParseFieldKey(req.Key)
	if !ok {
		return htmxError(c, http.StatusBadRequest, "Unknown field")
	}

	// HTMX sends the input under its own name
	value := req.Value
	if value == "" {
		value = c.FormValue(string(key))
	}

	form.UpdateField(key, value)
	snapshot := form.Snapshot()

	if isHTMX(c) {
		return render(c, http.StatusOK, partials.LeadFieldResponse(leadFormView(c, snapshot)))
	}
	return c.JSON(http.StatusOK, snapshot)
}

// applyLeadFields copies whichever fields the request carries into the form
func applyLeadFields(c echo.Context, form *services.LeadFormController) error {
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		var payload leadPayload
		if err := c.Bind(&payload); err != nil {
			return err
		}
		for key, value := range map[models.FieldKey]*string{
			models.FieldFullName: payload.FullName,
			models.FieldEmail:    payload.Email,
			models.FieldCompany:  payload.Company,
			models.FieldGoal:     payload.Goal,
		} {
			if value != nil {
				form.UpdateField(key, *value)
			}
		}
		return nil
	}

	params, err := c.FormParams()
	if err != nil {
		return err
	}
	for _, key := range models.FieldKeys {
		if values, ok := params[string(key)]; ok && len(values) > 0 {
			form.UpdateField(key, values[0])
		}
	}
	return nil
}

// verifyTurnstile checks the bot challenge when a secret is configured. It
// returns the user-facing message when the check fails.
func verifyTurnstile(c echo.Context) string {
	verifier := services.NewTurnstileVerifier(getConfig(c).TurnstileSecretKey)
	err := verifier.Verify(c.Request().Context(), c.FormValue(services.TurnstileResponseField), c.RealIP())
	switch {
	case err == nil:
		return ""
	case errors.Is(err, services.ErrTurnstileTokenMissing):
		return TurnstileMissingMessage
	default:
		c.Logger().Warnf("Turnstile verification failed: %v", err)
		return TurnstileFailedMessage
	}
}

func trackRejected(c echo.Context, reason string) {
	if services.Monitor != nil {
		services.Monitor.TrackRejectedSubmission(c.RealIP(), reason)
	}
}

// LeadSubmitHandler submits the visitor's lead
func LeadSubmitHandler(c echo.Context) error {
	form, err := requireLeadForm(c)
	if err != nil {
		return err
	}

	if err := applyLeadFields(c, form); err != nil {
		return htmxError(c, http.StatusBadRequest, "Invalid request")
	}

	if msg := verifyTurnstile(c); msg != "" {
		trackRejected(c, "turnstile")
		snapshot := form.Snapshot()
		snapshot.Error = msg
		return respondLead(c, http.StatusBadRequest, snapshot, "/#form")
	}

	// The lead is delivered even if the visitor navigates away mid-request
	ctx := context.WithoutCancel(c.Request().Context())
	err = form.Submit(ctx)
	snapshot := form.Snapshot()

	status := http.StatusOK
	var subErr *services.SubmissionError
	switch {
	case err == nil:
		if isHTMX(c) {
			c.Response().Header().Set("HX-Trigger", "leadSubmitted")
		}
	case errors.Is(err, services.ErrLeadValidation):
		trackRejected(c, "validation")
		status = http.StatusUnprocessableEntity
	case errors.As(err, &subErr):
		c.Logger().Errorf("Lead submission failed: %v", subErr.Err)
		status = http.StatusBadGateway
	default:
		c.Logger().Errorf("Lead submission failed: %v", err)
		status = http.StatusInternalServerError
	}

	return respondLead(c, status, snapshot, "/#form")
}

// LeadResetHandler dismisses the confirmation and clears the form
func LeadResetHandler(c echo.Context) error {
	form, err := requireLeadForm(c)
	if err != nil {
		return err
	}

	form.Reset()
	if isHTMX(c) {
		c.Response().Header().Set("HX-Trigger", "leadReset")
	}
	return respondLead(c, http.StatusOK, form.Snapshot(), "/")
}

// LeadSnapshotHandler returns the visitor's form state as JSON; visitors
// without a session get the empty form
func LeadSnapshotHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, currentSnapshot(c))
}

func currentSnapshot(c echo.Context) models.LeadSnapshot {
	if form := middleware.GetLeadForm(c); form != nil {
		return form.Snapshot()
	}
	return models.LeadSnapshot{Submission: models.IdleSubmission()}
}

// respondLead negotiates the response: the form card for HTMX, the snapshot
// for JSON clients and a redirect for plain form posts
func respondLead(c echo.Context, status int, snapshot models.LeadSnapshot, redirect string) error {
	switch {
	case isHTMX(c):
		return render(c, status, partials.LeadFormCard(leadFormView(c, snapshot)))
	case wantsJSON(c):
		return c.JSON(status, snapshot)
	default:
		return c.Redirect(http.StatusSeeOther, redirect)
	}
}
