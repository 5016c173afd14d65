package services

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"log"
	"strings"
	texttemplate "text/template"
	"time"

	"ovies_landing_go/config"
	"ovies_landing_go/models"

	"github.com/microcosm-cc/bluemonday"
	"github.com/resend/resend-go/v2"
)

//go:embed templates/emails/*
var emailTemplates embed.FS

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// renderEmailTemplate executes templateName.html and templateName.txt
func renderEmailTemplate(templateName string, data interface{}) (html string, text string, err error) {
	htmlPath := "templates/emails/" + templateName + ".html"
	htmlTmpl, err := htmltemplate.ParseFS(emailTemplates, htmlPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s: %w", htmlPath, err)
	}
	var htmlBuf bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s: %w", htmlPath, err)
	}

	textPath := "templates/emails/" + templateName + ".txt"
	textTmpl, err := texttemplate.ParseFS(emailTemplates, textPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s: %w", textPath, err)
	}
	var textBuf bytes.Buffer
	if err := textTmpl.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s: %w", textPath, err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// SendEmail sends an email using Resend API
func SendEmail(ctx context.Context, cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		log.Printf("✅ Email logged successfully (development mode - not actually sent)")
		return nil
	}

	// Validate configuration
	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
	}
	if email.HTMLBody != "" {
		params.Html = email.HTMLBody
	}
	if email.TextBody != "" {
		params.Text = email.TextBody
	}

	// Validate we have at least one body
	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// logEmailToConsole logs email details to console in development mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\n📧 EMAIL (Development Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("\n--- HTML BODY (first 500 chars) ---\n%s...", truncate(email.HTMLBody, 500))
	log.Printf("%s\n", separator)
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// LeadNotificationEmailData contains data for the lead notification template
type LeadNotificationEmailData struct {
	LeadID      string
	SubmittedAt string
	FullName    string
	Email       string
	Company     string
	Goal        string
	GoalHTML    htmltemplate.HTML
}

var emailBodyPolicy = bluemonday.UGCPolicy()

// goalToHTML keeps the visitor's line breaks in the HTML body
func goalToHTML(goal string) htmltemplate.HTML {
	escaped := htmltemplate.HTMLEscapeString(goal)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return htmltemplate.HTML(emailBodyPolicy.Sanitize(escaped))
}

// BuildLeadNotificationEmail creates the email the site owner receives for a new lead
func BuildLeadNotificationEmail(to string, lead models.Lead) (*Email, error) {
	data := LeadNotificationEmailData{
		LeadID:      lead.ID,
		SubmittedAt: lead.SubmittedAt.Format(time.RFC1123),
		FullName:    lead.FullName,
		Email:       lead.Email,
		Company:     lead.Company,
		Goal:        lead.Goal,
		GoalHTML:    goalToHTML(lead.Goal),
	}

	htmlBody, textBody, err := renderEmailTemplate("lead_notification", data)
	if err != nil {
		return nil, err
	}

	return &Email{
		To:       []string{to},
		Subject:  fmt.Sprintf("New mini-audit request from %s", lead.FullName),
		HTMLBody: htmlBody,
		TextBody: textBody,
	}, nil
}

// EmailSubmitter delivers each lead as a notification email through Resend
type EmailSubmitter struct {
	cfg  *config.Config
	to   string
	send func(ctx context.Context, cfg *config.Config, email *Email) error
}

// NewEmailSubmitter creates a submitter that mails leads to cfg.LeadNotifyEmail
func NewEmailSubmitter(cfg *config.Config) *EmailSubmitter {
	return &EmailSubmitter{
		cfg:  cfg,
		to:   cfg.LeadNotifyEmail,
		send: SendEmail,
	}
}

// SubmitLead renders and sends the notification email
func (s *EmailSubmitter) SubmitLead(ctx context.Context, lead models.Lead) error {
	if s.to == "" {
		return fmt.Errorf("LEAD_NOTIFY_EMAIL not configured")
	}

	email, err := BuildLeadNotificationEmail(s.to, lead)
	if err != nil {
		return fmt.Errorf("failed to build lead notification: %w", err)
	}

	return s.send(ctx, s.cfg, email)
}
