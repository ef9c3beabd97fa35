package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config carries everything the service reads from its environment. Secrets
// (store credentials, API keys, SMTP password) come from env vars only; the
// optional YAML overlay is for non-secret deployment settings.
type Config struct {
	HTTPAddr string `yaml:"http_addr"`
	GelfAddr string `yaml:"gelf_addr"`

	// Lead store (service-account credential, three parts).
	FirebaseProjectID   string `yaml:"-"`
	FirebaseClientEmail string `yaml:"-"`
	FirebasePrivateKey  string `yaml:"-"`

	// Structured generation.
	GeminiAPIKey string `yaml:"-"`
	GeminiModel  string `yaml:"gemini_model"`

	// Outbound mail.
	SMTPHost   string `yaml:"smtp_host"`
	SMTPPort   int    `yaml:"smtp_port"`
	SMTPUser   string `yaml:"-"`
	SMTPPass   string `yaml:"-"`
	MailFrom   string `yaml:"mail_from"`
	AdminEmail string `yaml:"admin_email"`

	BusinessName string `yaml:"business_name"`
}

// Load reads env vars, then overlays the YAML file named by LEADGATE_CONFIG
// (if any) for the non-secret fields. Env values win over file values.
func Load() *Config {
	cfg := &Config{
		HTTPAddr:     ":8080",
		GeminiModel:  "gemini-2.0-flash",
		SMTPPort:     587,
		BusinessName: "Summit Point Home Inspections",
	}

	if path := os.Getenv("LEADGATE_CONFIG"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			yaml.Unmarshal(data, cfg)
		}
	}

	cfg.HTTPAddr = getEnv("LEADGATE_ADDR", cfg.HTTPAddr)
	cfg.GelfAddr = getEnv("LEADGATE_GELF_ADDR", cfg.GelfAddr)

	cfg.FirebaseProjectID = os.Getenv("FIREBASE_PROJECT_ID")
	cfg.FirebaseClientEmail = os.Getenv("FIREBASE_CLIENT_EMAIL")
	// Private keys travel through single-line env vars with escaped newlines.
	cfg.FirebasePrivateKey = strings.ReplaceAll(os.Getenv("FIREBASE_PRIVATE_KEY"), `\n`, "\n")

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.GeminiModel = getEnv("GEMINI_MODEL", cfg.GeminiModel)

	cfg.SMTPHost = getEnv("SMTP_HOST", cfg.SMTPHost)
	cfg.SMTPPort = getEnvInt("SMTP_PORT", cfg.SMTPPort)
	cfg.SMTPUser = os.Getenv("SMTP_USER")
	cfg.SMTPPass = os.Getenv("SMTP_PASS")
	cfg.MailFrom = getEnv("MAIL_FROM", cfg.MailFrom)
	cfg.AdminEmail = getEnv("ADMIN_EMAIL", cfg.AdminEmail)

	cfg.BusinessName = getEnv("LEADGATE_BUSINESS_NAME", cfg.BusinessName)

	return cfg
}

// StoreReady reports whether the lead store credential is complete. The error
// text depends only on which variables are missing, never on the flow, so a
// misconfigured deployment fails identically no matter what the user typed.
func (c *Config) StoreReady() error {
	var missing []string
	if c.FirebaseProjectID == "" {
		missing = append(missing, "FIREBASE_PROJECT_ID")
	}
	if c.FirebaseClientEmail == "" {
		missing = append(missing, "FIREBASE_CLIENT_EMAIL")
	}
	if c.FirebasePrivateKey == "" {
		missing = append(missing, "FIREBASE_PRIVATE_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("lead store is not configured: set %s", strings.Join(missing, ", "))
	}
	return nil
}

// GeneratorReady reports whether the generation service key is present.
func (c *Config) GeneratorReady() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("generation service is not configured: set GEMINI_API_KEY")
	}
	return nil
}

// MailerReady reports whether outbound mail can be attempted. A missing
// mailer is not a configuration error for any flow; it surfaces as failed
// notification outcomes instead.
func (c *Config) MailerReady() error {
	var missing []string
	if c.SMTPHost == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if c.MailFrom == "" {
		missing = append(missing, "MAIL_FROM")
	}
	if c.AdminEmail == "" {
		missing = append(missing, "ADMIN_EMAIL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("mailer is not configured: set %s", strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n := 0
	for _, c := range v {
		if c < '0' || c > '9' {
			return fallback
		}
		n = n*10 + int(c-'0')
	}
	return n
}
