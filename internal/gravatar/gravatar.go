// Package gravatar builds Gravatar image URLs from email addresses.
package gravatar

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"
)

const baseURL = "//www.gravatar.com/avatar/"

// Options control the query string of the generated URL. Zero values are
// left out.
type Options struct {
	Size    int    // s: square size in pixels
	Rating  string // r: g, pg, r or x
	Default string // d: fallback image, e.g. "mp"
	Secure  bool   // use https:// instead of a protocol-relative URL
}

// ProfileAvatar is what registration uses: 200px, PG rated, "mystery person"
// fallback.
var ProfileAvatar = Options{Size: 200, Rating: "pg", Default: "mp"}

// Hash returns the Gravatar hash of email: md5 of the trimmed, lower-cased
// address.
func Hash(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}

// URL returns the avatar URL for email. It does no I/O and is deterministic.
func URL(email string, opts Options) string {
	var b strings.Builder
	if opts.Secure {
		b.WriteString("https:")
	}
	b.WriteString(baseURL)
	b.WriteString(Hash(email))

	// Fixed parameter order keeps URLs stable across calls.
	var q []string
	if opts.Size > 0 {
		q = append(q, "s="+strconv.Itoa(opts.Size))
	}
	if opts.Rating != "" {
		q = append(q, "r="+url.QueryEscape(opts.Rating))
	}
	if opts.Default != "" {
		q = append(q, "d="+url.QueryEscape(opts.Default))
	}
	if len(q) > 0 {
		b.WriteString("?")
		b.WriteString(strings.Join(q, "&"))
	}
	return b.String()
}
