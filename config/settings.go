package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Settings is the app-level configuration read once at startup.
type Settings struct {
	Port          string
	JWTSecret     string
	JWTTTLHours   int
	AllowRegister bool
	CORSOrigins   []string
}

// LoadSettings reads settings from the environment. JWT_SECRET is required.
func LoadSettings() (*Settings, error) {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	ttl := 168 // a week, matching the auth cookie lifetime the frontend expects
	if raw := strings.TrimSpace(os.Getenv("JWT_TTL_HOURS")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid JWT_TTL_HOURS: %q", raw)
		}
		ttl = parsed
	}

	return &Settings{
		Port:          envOrDefault("PORT", "8080"),
		JWTSecret:     secret,
		JWTTTLHours:   ttl,
		AllowRegister: strings.EqualFold(envOrDefault("ALLOW_REGISTER", "false"), "true"),
		CORSOrigins:   parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
	}, nil
}

func parseCORSOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
