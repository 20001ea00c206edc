package config

import (
	"strconv"
	"strings"
	"time"
)

// parseEnv overlays environment variables onto config.
//
//	ADDRESS          HTTP bind address
//	DATABASE_DRIVER  pgx | sqlite
//	DATABASE_DSN     database DSN
//	SECRET           JWT HMAC secret
//	TOKEN_TTL        token validity in seconds
//	CORS_ORIGIN      comma-separated list of allowed origins
//	LOG_LEVEL        debug | info | warn | error
//
// Malformed numeric values are ignored and the previous value is kept.
func parseEnv(config *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup("ADDRESS"); ok && v != "" {
		config.EndpointAddrHTTP = v
	}
	if v, ok := lookup("DATABASE_DRIVER"); ok && v != "" {
		config.DatabaseDriver = v
	}
	if v, ok := lookup("DATABASE_DSN"); ok && v != "" {
		config.DatabaseDSN = v
	}
	if v, ok := lookup("SECRET"); ok && v != "" {
		config.SecretKey = v
	}
	if v, ok := lookup("TOKEN_TTL"); ok && v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			config.AccessTokenValidityDuration = time.Duration(secs) * time.Second
		}
	}
	if v, ok := lookup("CORS_ORIGIN"); ok && v != "" {
		config.CORSOrigins = splitOrigins(v)
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		config.LogLevel = v
	}
}

func splitOrigins(s string) []string {
	var origins []string
	for _, p := range strings.Split(s, ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
