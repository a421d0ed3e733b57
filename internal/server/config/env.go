package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Unset or
// malformed values leave the current value untouched.
//
// Recognized variables:
//
//	ADDRESS         HTTP bind address
//	DATABASE_DSN    PostgreSQL DSN
//	JWT_SECRET      token signing key
//	TOKEN_VALIDITY  token/cookie lifetime (Go duration, e.g. "168h")
//	BCRYPT_COST     bcrypt work factor
//	QUERY_TIMEOUT   per-call DB timeout (Go duration)
//	SECURE_COOKIES  "true"/"false"
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
	if v, ok := os.LookupEnv("QUERY_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.QueryTimeout = d
		}
	}
	if v, ok := os.LookupEnv("SECURE_COOKIES"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			config.SecureCookies = b
		}
	}
}
