package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TurnstileResponseField is the form field the Turnstile widget fills in
const TurnstileResponseField = "cf-turnstile-response"

const defaultTurnstileVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

var (
	ErrTurnstileTokenMissing = errors.New("turnstile token missing")
	ErrTurnstileRejected     = errors.New("turnstile challenge rejected")
)

var turnstileClient = &http.Client{Timeout: 10 * time.Second}

type turnstileResult struct {
	Success     bool      `json:"success"`
	ChallengeTS time.Time `json:"challenge_ts"`
	Hostname    string    `json:"hostname"`
	ErrorCodes  []string  `json:"error-codes"`
}

// TurnstileVerifier checks Cloudflare Turnstile tokens posted with the lead
// form. A verifier without a secret is disabled and accepts everything.
type TurnstileVerifier struct {
	Secret    string
	VerifyURL string
	Client    *http.Client
}

// NewTurnstileVerifier creates a verifier against Cloudflare's siteverify API
func NewTurnstileVerifier(secret string) *TurnstileVerifier {
	return &TurnstileVerifier{
		Secret:    secret,
		VerifyURL: defaultTurnstileVerifyURL,
		Client:    turnstileClient,
	}
}

// Enabled reports whether tokens are checked at all
func (v *TurnstileVerifier) Enabled() bool {
	return v.Secret != ""
}

// Verify validates a visitor's token. It returns ErrTurnstileTokenMissing
// for an empty token and wraps ErrTurnstileRejected when Cloudflare says no;
// other errors mean the check itself could not be completed.
func (v *TurnstileVerifier) Verify(ctx context.Context, token, remoteIP string) error {
	if !v.Enabled() {
		return nil
	}
	if token == "" {
		return ErrTurnstileTokenMissing
	}

	form := url.Values{
		"secret":   {v.Secret},
		"response": {token},
	}
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.VerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build verification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to verify token: %w", err)
	}
	defer resp.Body.Close()

	var result turnstileResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode turnstile response: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("%w: %s", ErrTurnstileRejected, strings.Join(result.ErrorCodes, ", "))
	}
	return nil
}
