package partials

import (
	"embed"
	"html/template"

	"ovies_landing_go/models"

	"github.com/a-h/templ"
)

// FS holds the partial templates so pages can parse them alongside their own
//
//go:embed *.html
var FS embed.FS

var tmpl = template.Must(template.New("partials").Funcs(Funcs).ParseFS(FS, "*.html"))

// LeadFormView is the data behind the lead form card
type LeadFormView struct {
	Snapshot         models.LeadSnapshot
	Offer            models.Offer
	CSRFToken        string
	TurnstileSiteKey string
	OutOfBand        bool // Render the email hint as an htmx out-of-band swap
	// Enhanced marks htmx responses. Full page renders leave the submit button
	// enabled so the form still posts without JavaScript; landing.js disables
	// it on load when the form is incomplete.
	Enhanced bool
}

// LeadFormCard renders the whole #form card, thank-you overlay included
func LeadFormCard(v LeadFormView) templ.Component {
	v.OutOfBand = false
	return templ.FromGoHTML(tmpl.Lookup("lead_form_card"), v)
}

// LeadFieldResponse renders the status block plus an out-of-band email hint,
// the response to a single field edit
func LeadFieldResponse(v LeadFormView) templ.Component {
	v.OutOfBand = true
	return templ.FromGoHTML(tmpl.Lookup("lead_field_response"), v)
}
