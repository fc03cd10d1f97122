/*
Package configs is responsible for loading and parsing the application's configuration settings.

It configures server parameters by reading operating system environment variables,
including the running environment, port, CORS allowed origins, session token secret,
and the upstream Groq relay settings. The Groq API key is sourced exclusively from
the environment; it is never embedded in source or written to logs.
*/
package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"pingroom/internal/gateway/groq"
)

// AppConfig contains all configuration parameters required for the application to run.
// All configuration values are loaded from environment variables.
type AppConfig struct {
	// General Server Settings
	Environment string
	Port        int

	// Security Settings
	AllowedOrigins []string
	JWTSecret      string

	// Groq Relay Settings
	GroqAPIKey  string
	GroqAPIURL  string
	GroqModel   string
	GroqTimeout time.Duration
}

// LoadConfig reads and parses the application configuration from environment variables.
// It provides default values for each configuration item and performs necessary type
// conversions and validation. It returns a pointer to the AppConfig struct and any
// error encountered.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}

	// --- General Server Settings ---
	// Environment
	cfg.Environment = os.Getenv("ENVIRONMENT")
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	// Port
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT environment variable: %w", err)
	}
	cfg.Port = port

	if cfg.Port < 1024 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port number %d is outside the recommended range (%d-%d) to avoid privileged ports", cfg.Port, 1024, 65535)
	}

	// --- Security Settings ---
	// AllowedOrigins
	originsStr := os.Getenv("ALLOWED_ORIGINS")
	if originsStr != "" {
		origins := strings.Split(originsStr, ",")
		for _, origin := range origins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	} else {
		cfg.AllowedOrigins = []string{}
	}

	// JWTSecret
	jwtSecret := os.Getenv("JWT_SECRET")
	if cfg.Environment == "development" {
		if jwtSecret == "" {
			jwtSecret = "your_default_insecure_secret_key_change_me"
		}
	} else {
		if jwtSecret == "" {
			return nil, fmt.Errorf("JWT_SECRET environment variable is required in %s environment for security", cfg.Environment)
		}
	}
	cfg.JWTSecret = jwtSecret

	// --- Groq Relay Settings ---
	// Groq API Key
	cfg.GroqAPIKey = os.Getenv("GROQ_API_KEY")
	if cfg.GroqAPIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY environment variable is required for the chat-completion relay")
	}

	// Groq API URL
	cfg.GroqAPIURL = os.Getenv("GROQ_API_URL")
	if cfg.GroqAPIURL == "" {
		cfg.GroqAPIURL = groq.DefaultAPIURL
	}

	// Groq Model
	cfg.GroqModel = os.Getenv("GROQ_MODEL")
	if cfg.GroqModel == "" {
		cfg.GroqModel = groq.DefaultModel
	}

	// Groq Timeout
	timeoutStr := os.Getenv("GROQ_TIMEOUT_SECONDS")
	if timeoutStr == "" {
		timeoutStr = "60"
	}
	timeoutSeconds, err := strconv.Atoi(timeoutStr)
	if err != nil || timeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid GROQ_TIMEOUT_SECONDS environment variable: %q", timeoutStr)
	}
	cfg.GroqTimeout = time.Duration(timeoutSeconds) * time.Second

	return cfg, nil
}
