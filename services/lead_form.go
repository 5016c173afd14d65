package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"ovies_landing_go/models"
)

// User-facing messages of the lead form
const (
	ValidationMessage       = "Please fill in your name, a valid email, and your goal."
	SubmissionFailedMessage = "Something went wrong. Please try again."
	EmailHintMessage        = "Enter a valid email address."
)

// DefaultSubmitTimeout bounds a submission when no timeout is configured
const DefaultSubmitTimeout = 10 * time.Second

var (
	// ErrLeadValidation is returned by Submit when the form does not pass the submit gate
	ErrLeadValidation = errors.New("lead form is incomplete")
)

// SubmissionError wraps a failure reported by the lead submitter
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("lead submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// TransitionHook observes submission state changes. It runs while the
// controller is locked, so hooks see transitions in order and must not call
// back into the controller.
type TransitionHook func(from, to models.SubmissionState)

// LeadFormController owns one visitor's lead form: the field values, the
// derived validity and the submission lifecycle
// Idle -> Submitting -> {Submitted | Failed} -> Idle (via Reset).
//
// All methods are safe for concurrent use. The submitter runs outside the
// lock, so reads and field updates keep working while a submission is
// outstanding; the Submitting state is what blocks a second Submit.
type LeadFormController struct {
	mu         sync.Mutex
	form       models.FormState
	submission models.SubmissionState
	errMsg     string
	generation uint64 // bumped by Reset so a late result cannot resurrect a cleared form

	submitter    LeadSubmitter
	timeout      time.Duration
	onTransition TransitionHook
}

// LeadFormOption configures a LeadFormController
type LeadFormOption func(*LeadFormController)

// WithSubmitTimeout bounds every submission; zero or negative disables the bound
func WithSubmitTimeout(d time.Duration) LeadFormOption {
	return func(c *LeadFormController) {
		c.timeout = d
	}
}

// WithTransitionHook registers a callback invoked after each state change
func WithTransitionHook(hook TransitionHook) LeadFormOption {
	return func(c *LeadFormController) {
		c.onTransition = hook
	}
}

// NewLeadFormController creates an empty, idle lead form. A nil submitter
// falls back to the simulated one.
func NewLeadFormController(submitter LeadSubmitter, opts ...LeadFormOption) *LeadFormController {
	if submitter == nil {
		submitter = NewSimulatedSubmitter(DefaultSimulatedDelay)
	}
	c := &LeadFormController{
		submission: models.IdleSubmission(),
		submitter:  submitter,
		timeout:    DefaultSubmitTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UpdateField replaces one field and clears any active error. Unknown keys
// are ignored.
func (c *LeadFormController) UpdateField(key models.FieldKey, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.form = c.form.With(key, value)
	c.errMsg = ""
}

// Submit validates the form and, if it passes, hands it to the submitter.
//
// A failed gate returns ErrLeadValidation, records ValidationMessage and
// leaves the submission state untouched. A submitter failure returns a
// *SubmissionError and leaves the form in the Failed state; field values are
// kept so the visitor can retry.
func (c *LeadFormController) Submit(ctx context.Context) error {
	c.mu.Lock()
	c.errMsg = ""
	if !c.canSubmitLocked() {
		c.errMsg = ValidationMessage
		c.mu.Unlock()
		return ErrLeadValidation
	}

	form := c.form
	generation := c.generation
	c.setSubmissionLocked(models.SubmissionState{Status: models.SubmissionSubmitting})
	c.mu.Unlock()

	err := c.deliver(ctx, form)

	c.mu.Lock()
	if c.generation != generation {
		// Reset while in flight: the form the result belongs to is gone
		c.mu.Unlock()
		if err != nil {
			return &SubmissionError{Err: err}
		}
		return nil
	}
	if err != nil {
		c.setSubmissionLocked(models.FailedSubmission(SubmissionFailedMessage))
		c.errMsg = SubmissionFailedMessage
	} else {
		// A rejected re-entry may have left ValidationMessage behind
		c.setSubmissionLocked(models.SubmissionState{Status: models.SubmissionSubmitted})
		c.errMsg = ""
	}
	c.mu.Unlock()

	if err != nil {
		return &SubmissionError{Err: err}
	}
	return nil
}

// deliver runs the submitter with the configured timeout and turns a panic
// into an ordinary error
func (c *LeadFormController) deliver(ctx context.Context, form models.FormState) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lead submitter panicked: %v", r)
		}
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	return c.submitter.SubmitLead(ctx, NewLead(form, LeadMetadataFromContext(ctx)))
}

// Reset empties the form, returns to Idle and clears the error
func (c *LeadFormController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.form = models.FormState{}
	c.setSubmissionLocked(models.IdleSubmission())
	c.errMsg = ""
	c.generation++
}

// Form returns the current field values
func (c *LeadFormController) Form() models.FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Submission returns the current submission state
func (c *LeadFormController) Submission() models.SubmissionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submission
}

// Error returns the active user-facing error, or "" when there is none
func (c *LeadFormController) Error() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// IsEmailValid reports whether the current email passes validation
func (c *LeadFormController) IsEmailValid() bool {
	return IsEmailValid(c.Form().Email)
}

// CanSubmit reports whether Submit would pass its gate right now
func (c *LeadFormController) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canSubmitLocked()
}

func (c *LeadFormController) canSubmitLocked() bool {
	return IsFullNameValid(c.form.FullName) &&
		IsEmailValid(c.form.Email) &&
		IsGoalValid(c.form.Goal) &&
		!c.submission.IsSubmitting()
}

// Snapshot captures a consistent view of the controller for rendering
func (c *LeadFormController) Snapshot() models.LeadSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return models.LeadSnapshot{
		Form:          c.form,
		IsEmailValid:  IsEmailValid(c.form.Email),
		CanSubmit:     c.canSubmitLocked(),
		ShowEmailHint: ShouldHintEmail(c.form.Email),
		Submission:    c.submission,
		Error:         c.errMsg,
	}
}

func (c *LeadFormController) setSubmissionLocked(to models.SubmissionState) {
	from := c.submission
	c.submission = to
	if from != to && c.onTransition != nil {
		c.onTransition(from, to)
	}
}

type leadMetadataKey struct{}

// WithLeadMetadata attaches request details that end up on the submitted lead
func WithLeadMetadata(ctx context.Context, meta LeadMetadata) context.Context {
	return context.WithValue(ctx, leadMetadataKey{}, meta)
}

// LeadMetadataFromContext returns the metadata set by WithLeadMetadata
func LeadMetadataFromContext(ctx context.Context) LeadMetadata {
	if meta, ok := ctx.Value(leadMetadataKey{}).(LeadMetadata); ok {
		return meta
	}
	return LeadMetadata{}
}
