package middleware

import (
	"net/http"

	"ovies_landing_go/config"
	"ovies_landing_go/services"

	"github.com/labstack/echo/v4"
)

const (
	// LeadSessionCookie carries the visitor's lead form session id
	LeadSessionCookie = "lead_session"
	// ContextKeyLeadForm is where the visitor's LeadFormController is stored
	ContextKeyLeadForm = "lead_form"
)

// LeadSession attaches the visitor's lead form controller to the request. A
// session (and cookie) is only created by state-changing requests; page views
// without one render an empty form. It also records the request details that
// travel with a submitted lead.
func LeadSession(store *services.LeadSessionStore, cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sessionID string
			if cookie, err := c.Cookie(LeadSessionCookie); err == nil {
				sessionID = cookie.Value
			}

			switch c.Request().Method {
			case http.MethodGet, http.MethodHead:
				if controller, ok := store.Get(sessionID); ok {
					c.Set(ContextKeyLeadForm, controller)
				}
			default:
				id, controller := store.GetOrCreate(sessionID)
				if id != sessionID {
					c.SetCookie(&http.Cookie{
						Name:     LeadSessionCookie,
						Value:    id,
						Path:     "/",
						HttpOnly: true,
						Secure:   cfg.IsProduction(),
						SameSite: http.SameSiteLaxMode,
					})
				}
				c.Set(ContextKeyLeadForm, controller)
			}

			ctx := services.WithLeadMetadata(c.Request().Context(), services.LeadMetadata{
				IPAddress: c.RealIP(),
				UserAgent: c.Request().UserAgent(),
				Source:    "web",
			})
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLeadForm retrieves the visitor's lead form controller from the context
func GetLeadForm(c echo.Context) *services.LeadFormController {
	if controller, ok := c.Get(ContextKeyLeadForm).(*services.LeadFormController); ok {
		return controller
	}
	return nil
}
