package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/devauth/internal/flagx"
	"github.com/dmitrijs2005/devauth/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations use
// timex.Duration so both "3600s" and integer nanoseconds are accepted.
// Absent keys leave the current value untouched.
type JsonConfig struct {
	EndpointAddrHTTP            *string         `json:"endpoint_addr_http"`
	DatabaseDriver              *string         `json:"database_driver"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	ShutdownTimeout             *timex.Duration `json:"shutdown_timeout"`
	CORSOrigins                 []string        `json:"cors_origins"`
	LogLevel                    *string         `json:"log_level"`
}

// parseJson loads the file named by -c/-config (if any) into config.
// An unreadable file or invalid JSON panics: the server must not start
// on a config the operator did not intend.
func parseJson(config *Config, args []string) {
	jsonConfigFile := flagx.ConfigFileFlag(args)

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)

	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.CORSOrigins != nil {
		config.CORSOrigins = c.CORSOrigins
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
