package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "127.0.0.1:9090", "-b", "sqlite", "-d", "file:auth.db", "-s", "secret",
				"-t", "60", "-o", "http://a.example/, http://b.example", "-l", "debug",
			},
			expected: &Config{
				EndpointAddrHTTP:            "127.0.0.1:9090",
				DatabaseDriver:              "sqlite",
				DatabaseDSN:                 "file:auth.db",
				SecretKey:                   "secret",
				AccessTokenValidityDuration: time.Minute,
				CORSOrigins:                 []string{"http://a.example", "http://b.example"},
				LogLevel:                    "debug",
			},
		},
		{
			name: "config flag is ignored here",
			args: []string{"-c", "cfg.json", "-s", "k"},
			expected: &Config{
				SecretKey: "k",
			},
		},
		{
			name:        "non-numeric validity panics",
			args:        []string{"-t", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config, tt.args) })
				return
			}

			require.NotPanics(t, func() { parseFlags(config, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
