package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// maxURLBytes bounds caller-supplied document URLs.
const maxURLBytes = 2048

// ValidateURL checks that raw is an absolute http or https URL with a host
// and no embedded credentials.
func ValidateURL(field, raw string) error {
	invalid := func(msg string) error {
		return &ValidationError{Fields: map[string]string{field: msg}}
	}

	if strings.TrimSpace(raw) == "" {
		return invalid(msgRequired)
	}
	if len(raw) > maxURLBytes {
		return invalid(fmt.Sprintf("must be at most %d bytes", maxURLBytes))
	}

	u, err := url.Parse(raw)
	if err != nil {
		return invalid("must be a valid URL")
	}
	switch u.Scheme {
	case "http", "https":
	default:
		return invalid("scheme must be http or https")
	}
	if u.Hostname() == "" {
		return invalid("must include a host")
	}
	if u.User != nil {
		return invalid("must not contain credentials")
	}
	return nil
}
