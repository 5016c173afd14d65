package models

import "time"

// FieldKey names one of the lead form inputs
type FieldKey string

// Lead form fields
const (
	FieldFullName FieldKey = "fullName"
	FieldEmail    FieldKey = "email"
	FieldCompany  FieldKey = "company" // Optional
	FieldGoal     FieldKey = "goal"
)

// FieldKeys lists the form fields in display order
var FieldKeys = []FieldKey{FieldFullName, FieldEmail, FieldCompany, FieldGoal}

// ParseFieldKey resolves a form key; the second result is false for unknown keys
func ParseFieldKey(key string) (FieldKey, bool) {
	for _, k := range FieldKeys {
		if string(k) == key {
			return k, true
		}
	}
	return "", false
}

// FormState holds the raw values typed into the lead form. Fields are plain
// strings so they are never absent; the zero value is the empty form.
type FormState struct {
	FullName string `json:"fullName" form:"fullName"`
	Email    string `json:"email" form:"email"`
	Company  string `json:"company" form:"company"`
	Goal     string `json:"goal" form:"goal"`
}

// Get returns the value of a field
func (f FormState) Get(key FieldKey) string {
	switch key {
	case FieldFullName:
		return f.FullName
	case FieldEmail:
		return f.Email
	case FieldCompany:
		return f.Company
	case FieldGoal:
		return f.Goal
	}
	return ""
}

// With returns a copy of the form with one field replaced. Unknown keys
// leave the form unchanged.
func (f FormState) With(key FieldKey, value string) FormState {
	switch key {
	case FieldFullName:
		f.FullName = value
	case FieldEmail:
		f.Email = value
	case FieldCompany:
		f.Company = value
	case FieldGoal:
		f.Goal = value
	}
	return f
}

// IsEmpty reports whether every field is empty
func (f FormState) IsEmpty() bool {
	return f == FormState{}
}

// SubmissionStatus is the lifecycle position of the lead form
type SubmissionStatus string

// Submission statuses
const (
	SubmissionIdle       SubmissionStatus = "idle"
	SubmissionSubmitting SubmissionStatus = "submitting"
	SubmissionSubmitted  SubmissionStatus = "submitted"
	SubmissionFailed     SubmissionStatus = "failed"
)

// SubmissionState is the derived submission lifecycle. Message is only set
// for SubmissionFailed.
type SubmissionState struct {
	Status  SubmissionStatus `json:"status"`
	Message string           `json:"message,omitempty"`
}

// IdleSubmission is the initial submission state
func IdleSubmission() SubmissionState {
	return SubmissionState{Status: SubmissionIdle}
}

// FailedSubmission builds a failed state carrying a user-facing message
func FailedSubmission(message string) SubmissionState {
	return SubmissionState{Status: SubmissionFailed, Message: message}
}

func (s SubmissionState) String() string {
	if s.Status == SubmissionFailed {
		return string(s.Status) + "(" + s.Message + ")"
	}
	return string(s.Status)
}

// IsSubmitting reports whether a submission is outstanding
func (s SubmissionState) IsSubmitting() bool {
	return s.Status == SubmissionSubmitting
}

// Lead is a captured prospect as handed to a lead submitter
type Lead struct {
	ID          string    `json:"id"` // ULID, sortable by submission time
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Company     string    `json:"company,omitempty"`
	Goal        string    `json:"goal"`
	SubmittedAt time.Time `json:"submitted_at"`

	// Audit fields
	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	Source    string `json:"source,omitempty"` // web, tui
}

// LeadSnapshot is everything a view needs to render the lead form
type LeadSnapshot struct {
	Form          FormState       `json:"form"`
	IsEmailValid  bool            `json:"isEmailValid"`
	CanSubmit     bool            `json:"canSubmit"`
	ShowEmailHint bool            `json:"showEmailHint"`
	Submission    SubmissionState `json:"submission"`
	Error         string          `json:"error,omitempty"`
}
