package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"time"

	"ovies_landing_go/config"
	"ovies_landing_go/models"

	"github.com/oklog/ulid/v2"
)

// LeadSubmitter delivers a captured lead to wherever leads go (CRM webhook,
// inbox, form backend). Implementations must honour ctx cancellation.
type LeadSubmitter interface {
	SubmitLead(ctx context.Context, lead models.Lead) error
}

// SubmitterFunc adapts a plain function to LeadSubmitter
type SubmitterFunc func(ctx context.Context, lead models.Lead) error

// SubmitLead calls f(ctx, lead)
func (f SubmitterFunc) SubmitLead(ctx context.Context, lead models.Lead) error {
	return f(ctx, lead)
}

// SimulatedSubmitter stands in for a real endpoint: it waits Delay and succeeds
type SimulatedSubmitter struct {
	Delay time.Duration
}

// DefaultSimulatedDelay is how long the demo submission takes
const DefaultSimulatedDelay = 700 * time.Millisecond

// NewSimulatedSubmitter creates a simulated submitter with the given delay
func NewSimulatedSubmitter(delay time.Duration) *SimulatedSubmitter {
	if delay < 0 {
		delay = 0
	}
	return &SimulatedSubmitter{Delay: delay}
}

// SubmitLead waits for the configured delay and reports success
func (s *SimulatedSubmitter) SubmitLead(ctx context.Context, lead models.Lead) error {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		log.Printf("[INFO] Simulated lead submission %s accepted", lead.ID)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// MultiSubmitter delivers a lead to every submitter in order and stops at the
// first failure
type MultiSubmitter []LeadSubmitter

// SubmitLead fans the lead out to all submitters
func (m MultiSubmitter) SubmitLead(ctx context.Context, lead models.Lead) error {
	for i, s := range m {
		if err := s.SubmitLead(ctx, lead); err != nil {
			return fmt.Errorf("submitter %d: %w", i, err)
		}
	}
	return nil
}

// NewLeadID returns a time-sortable identifier for a lead
func NewLeadID(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), rand.Reader).String()
}

// NewLead builds the payload handed to a LeadSubmitter from a form
func NewLead(form models.FormState, meta LeadMetadata) models.Lead {
	now := time.Now().UTC()
	return models.Lead{
		ID:          NewLeadID(now),
		FullName:    TrimField(form.FullName),
		Email:       TrimField(form.Email),
		Company:     TrimField(form.Company),
		Goal:        TrimField(form.Goal),
		SubmittedAt: now,
		IPAddress:   meta.IPAddress,
		UserAgent:   meta.UserAgent,
		Source:      meta.Source,
	}
}

// LeadMetadata describes where a submission came from
type LeadMetadata struct {
	IPAddress string
	UserAgent string
	Source    string
}

// NewLeadSubmitterFromConfig builds the submitter chain named by
// cfg.LeadSubmitter. Unknown names are skipped; an empty chain falls back to
// the simulated submitter.
func NewLeadSubmitterFromConfig(cfg *config.Config) LeadSubmitter {
	var chain MultiSubmitter
	for _, name := range cfg.SubmitterNames() {
		switch name {
		case config.SubmitterSimulated:
			chain = append(chain, NewSimulatedSubmitter(cfg.LeadSubmitDelay))
		case config.SubmitterWebhook:
			chain = append(chain, NewWebhookSubmitter(cfg.LeadWebhookURL))
		case config.SubmitterEmail:
			chain = append(chain, NewEmailSubmitter(cfg))
		default:
			log.Printf("[WARNING] Ignoring unknown lead submitter %q", name)
		}
	}

	switch len(chain) {
	case 0:
		return NewSimulatedSubmitter(cfg.LeadSubmitDelay)
	case 1:
		return chain[0]
	}
	return chain
}
