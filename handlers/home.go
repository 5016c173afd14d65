package handlers

import (
	"net/http"

	"ovies_landing_go/templates/pages"

	"github.com/labstack/echo/v4"
)

func basePage(c echo.Context, page string) pages.Page {
	cfg := getConfig(c)
	return pages.Page{
		Content:          getContent(c),
		SEO:              GetSEO(page, baseURL(c)),
		TurnstileSiteKey: cfg.TurnstileSiteKey,
	}
}

// LandingHandler renders the landing page with the visitor's current form
func LandingHandler(c echo.Context) error {
	page := basePage(c, "landing")
	page.StructuredData = landingStructuredData(page.Content, baseURL(c))

	component := pages.Landing(c.Request().Context(), pages.LandingPage{
		Page: page,
		Form: leadFormView(c, currentSnapshot(c)),
	})
	return render(c, http.StatusOK, component)
}

// BookingHandler renders the booking page
func BookingHandler(c echo.Context) error {
	component := pages.Booking(c.Request().Context(), pages.BookingPage{Page: basePage(c, "booking")})
	return render(c, http.StatusOK, component)
}

// HealthHandler reports liveness
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
