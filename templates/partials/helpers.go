package partials

import (
	"html/template"
	"time"

	"ovies_landing_go/models"
	"ovies_landing_go/services"
)

// Funcs are the template helpers shared by partials and pages
var Funcs = template.FuncMap{
	"isSubmitted": isSubmitted,
	"submitLabel": submitLabel,
	"emailHint":   func() string { return services.EmailHintMessage },
	"fieldView":   fieldView,
	"currentYear": func() int { return time.Now().Year() },
}

func isSubmitted(s models.LeadSnapshot) bool {
	return s.Submission.Status == models.SubmissionSubmitted
}

// submitLabel is the submit button text for the current state
func submitLabel(s models.LeadSnapshot, offer models.Offer) string {
	if s.Submission.IsSubmitting() {
		return "Submitting..."
	}
	return offer.SubmitLabel
}

// FieldView is the data for a single text input
type FieldView struct {
	Key   string
	Type  string
	Value string
	Copy  models.FieldCopy
}

func fieldView(v LeadFormView, key, inputType string, copy models.FieldCopy) FieldView {
	return FieldView{
		Key:   key,
		Type:  inputType,
		Value: v.Snapshot.Form.Get(models.FieldKey(key)),
		Copy:  copy,
	}
}
