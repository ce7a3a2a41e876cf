package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase HTTP header names whose values never reach
// the logs. The HTTP middleware consults it when it logs request headers and
// the masq layer below redacts attributes that carry the same names.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
}

var (
	bearerValue = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// JWTs always start with a base64url "{" header. Anchoring on "eyJ" keeps
	// long dotted DOI suffixes from being mistaken for tokens.
	jwtValue = regexp.MustCompile(`eyJ[a-zA-Z0-9\-_]{7,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	inlineAPIKey = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)

	// Signed document URLs carry their credential in the query string.
	queryCredential = regexp.MustCompile(`(?i)[?&](access_token|token|key|sig|signature|x-amz-signature)=[^&\s]+`)
)

// newRedactAttr builds the slog ReplaceAttr hook used by New. Attributes are
// masked by key for known credential names and by value for credential shapes
// that show up inside free-form strings such as fetched URLs.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := []masq.Option{
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerValue),
		masq.WithRegex(jwtValue),
		masq.WithRegex(inlineAPIKey),
		masq.WithRegex(queryCredential),
	}
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	return masq.New(opts...)
}
