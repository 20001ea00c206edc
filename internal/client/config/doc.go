// Package config holds the devauth CLI settings. Values are layered:
// defaults, then an optional JSON file named by -c/-config, then flags.
package config
