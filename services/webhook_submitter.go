package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ovies_landing_go/models"
)

// WebhookSubmitter POSTs each lead as JSON to a CRM or form-backend webhook
type WebhookSubmitter struct {
	URL    string
	Client *http.Client
}

// NewWebhookSubmitter creates a webhook submitter for url
func NewWebhookSubmitter(url string) *WebhookSubmitter {
	return &WebhookSubmitter{
		URL:    url,
		Client: &http.Client{Timeout: 15 * time.Second},
	}
}

// SubmitLead posts the lead; any non-2xx response is an error
func (w *WebhookSubmitter) SubmitLead(ctx context.Context, lead models.Lead) error {
	if w.URL == "" {
		return fmt.Errorf("webhook URL not configured")
	}

	body, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("failed to encode lead: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", lead.ID)

	client := w.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post lead to webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
