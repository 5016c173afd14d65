package pages

import (
	"context"
	"embed"
	"html/template"

	"ovies_landing_go/middleware"
	"ovies_landing_go/models"
	"ovies_landing_go/templates/partials"

	"github.com/a-h/templ"
)

//go:embed *.html
var files embed.FS

var tmpl = template.Must(
	template.Must(template.New("pages").Funcs(partials.Funcs).ParseFS(partials.FS, "*.html")).
		ParseFS(files, "*.html"),
)

// Assets holds versioned static asset paths
type Assets struct {
	CSS     string
	JS      string
	Favicon string
}

// Page is the data shared by every full page
type Page struct {
	Content          *models.LandingContent
	SEO              *models.SEO
	Assets           Assets
	Nonce            string
	TurnstileSiteKey string
	StructuredData   template.JS
}

// LandingPage is the data behind the landing page
type LandingPage struct {
	Page
	Form partials.LeadFormView
}

// BookingPage is the data behind the booking page
type BookingPage struct {
	Page
}

func withRequest(ctx context.Context, p Page) Page {
	p.Nonce = middleware.GetNonce(ctx)
	p.Assets = Assets{
		CSS:     versioned(ctx, middleware.AssetCSS),
		JS:      versioned(ctx, middleware.AssetJS),
		Favicon: versioned(ctx, middleware.AssetFavicon),
	}
	return p
}

func versioned(ctx context.Context, path string) string {
	return path + "?v=" + middleware.GetAssetVersion(ctx, path)
}

// Landing renders the landing page
func Landing(ctx context.Context, data LandingPage) templ.Component {
	data.Page = withRequest(ctx, data.Page)
	data.Form.TurnstileSiteKey = data.TurnstileSiteKey
	return templ.FromGoHTML(tmpl.Lookup("landing"), data)
}

// Booking renders the booking page
func Booking(ctx context.Context, data BookingPage) templ.Component {
	data.Page = withRequest(ctx, data.Page)
	return templ.FromGoHTML(tmpl.Lookup("booking"), data)
}
