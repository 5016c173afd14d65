package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Lead submitter backends
const (
	SubmitterSimulated = "simulated"
	SubmitterWebhook   = "webhook"
	SubmitterEmail     = "email"
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	// Lead submission
	LeadSubmitter     string        // simulated, webhook, email (comma-separated for fan-out)
	LeadSubmitDelay   time.Duration // Delay of the simulated submitter
	LeadSubmitTimeout time.Duration // Upper bound on a single submission
	LeadWebhookURL    string
	LeadNotifyEmail   string
	// Email (Resend)
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	EmailTestMode bool // When true, emails are logged to console instead of sent
	// Visitor sessions
	SessionTTL time.Duration
	// Cloudflare Turnstile
	TurnstileSiteKey   string
	TurnstileSecretKey string
	// Other
	AllowedOrigins []string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		AppURL:             strings.TrimRight(getEnv("APP_URL", "http://localhost:8080"), "/"),
		LeadSubmitter:      strings.ToLower(getEnv("LEAD_SUBMITTER", SubmitterSimulated)),
		LeadSubmitDelay:    getEnvDuration("LEAD_SUBMIT_DELAY", 700*time.Millisecond),
		LeadSubmitTimeout:  getEnvDuration("LEAD_SUBMIT_TIMEOUT", 10*time.Second),
		LeadWebhookURL:     getEnv("LEAD_WEBHOOK_URL", ""),
		LeadNotifyEmail:    getEnv("LEAD_NOTIFY_EMAIL", ""),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		EmailFrom:          getEnv("EMAIL_FROM", "noreply@ovieslanding.com"),
		EmailFromName:      getEnv("EMAIL_FROM_NAME", "Ovies Landing"),
		EmailTestMode:      getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		SessionTTL:         getEnvDuration("SESSION_TTL", 2*time.Hour),
		TurnstileSiteKey:   getEnv("TURNSTILE_SITE_KEY", ""),
		TurnstileSecretKey: getEnv("TURNSTILE_SECRET_KEY", ""),
		AllowedOrigins:     strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}

	for _, warning := range cfg.Validate() {
		log.Printf("[WARNING] %s", warning)
	}

	return cfg
}

// Validate reports configuration combinations that will make lead submission
// fail at runtime. It never aborts startup: the simulated submitter is always
// available as a fallback.
func (c *Config) Validate() []string {
	var warnings []string
	for _, name := range c.SubmitterNames() {
		switch name {
		case SubmitterSimulated:
		case SubmitterWebhook:
			if c.LeadWebhookURL == "" {
				warnings = append(warnings, "LEAD_SUBMITTER includes webhook but LEAD_WEBHOOK_URL is empty")
			}
		case SubmitterEmail:
			if c.LeadNotifyEmail == "" {
				warnings = append(warnings, "LEAD_SUBMITTER includes email but LEAD_NOTIFY_EMAIL is empty")
			}
			if c.ResendAPIKey == "" && !c.EmailTestMode {
				warnings = append(warnings, "RESEND_API_KEY not configured and EMAIL_TEST_MODE is off")
			}
		default:
			warnings = append(warnings, "unknown lead submitter \""+name+"\", it will be ignored")
		}
	}
	if c.LeadSubmitTimeout <= 0 {
		warnings = append(warnings, "LEAD_SUBMIT_TIMEOUT must be positive, submissions will not be bounded")
	}
	return warnings
}

// SubmitterNames splits LeadSubmitter into its backend names
func (c *Config) SubmitterNames() []string {
	var names []string
	for _, name := range strings.Split(c.LeadSubmitter, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return []string{SubmitterSimulated}
	}
	return names
}

// IsProduction reports whether the app runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("[WARNING] Invalid duration for %s (%q), using default %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
