package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultAPIVersion = "2024-07-01-preview"

// Config is the environment-driven configuration surface. A .env file is
// loaded first if present; real environment variables win.
type Config struct {
	Provider   string // azure | openai | ollama
	Endpoint   string
	APIKey     string
	Deployment string // model name outside Azure
	APIVersion string

	Host           string
	Port           int
	RequestTimeout time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Provider:       getenv("LLM_PROVIDER", "azure"),
		Endpoint:       os.Getenv("AZURE_OPENAI_ENDPOINT"),
		APIKey:         os.Getenv("AZURE_OPENAI_API_KEY"),
		Deployment:     os.Getenv("AZURE_OPENAI_DEPLOYMENT_NAME"),
		APIVersion:     getenv("AZURE_OPENAI_API_VERSION", defaultAPIVersion),
		Host:           os.Getenv("HOST"),
		Port:           getint("PORT", 5000),
		RequestTimeout: getduration("REQUEST_TIMEOUT", 30*time.Second),
	}
}

// Addr returns the host:port bind address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// MissingVars lists the required variables that are unset for the chosen
// provider, for a startup warning. Ollama needs no credentials.
func (c *Config) MissingVars() []string {
	if c.Provider == "ollama" {
		return nil
	}
	var missing []string
	if c.Endpoint == "" && c.Provider == "azure" {
		missing = append(missing, "AZURE_OPENAI_ENDPOINT")
	}
	if c.APIKey == "" {
		missing = append(missing, "AZURE_OPENAI_API_KEY")
	}
	if c.Deployment == "" {
		missing = append(missing, "AZURE_OPENAI_DEPLOYMENT_NAME")
	}
	return missing
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
