package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/devauth/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-b string   database driver: pgx or sqlite
//	-d string   database DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, seconds
//	-o string   comma-separated CORS origins
//	-l string   log level
//
// Only the flags above are looked at (see flagx.FilterArgs), so -c/-config
// and anything else on the command line is left alone.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-b", "-d", "-s", "-t", "-o", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDriver, "b", config.DatabaseDriver, "database driver (pgx or sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	tokenValidity := fs.Int("t", int(config.AccessTokenValidityDuration.Seconds()), "access token validity (in seconds)")
	origins := fs.String("o", "", "comma-separated CORS origins")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*tokenValidity) * time.Second
	if *origins != "" {
		config.CORSOrigins = splitOrigins(*origins)
	}
}
