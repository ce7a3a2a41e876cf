package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"syscall"
)

var (
	// ErrBodyTooLarge is returned when a document exceeds the configured
	// maximum body size.
	ErrBodyTooLarge = errors.New("document exceeds maximum size")

	// ErrUnsupportedContent is returned for media types that cannot carry
	// DOIs as text, such as images or archives.
	ErrUnsupportedContent = errors.New("unsupported content type")

	// ErrBlockedAddress is returned when a fetch resolves to a loopback,
	// private, or link-local address and private networks are not allowed.
	ErrBlockedAddress = errors.New("address is not publicly routable")
)

// StatusError reports a non-2xx response from the remote host.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetching %s: HTTP %d", e.URL, e.StatusCode)
}

const acceptHeader = "text/html, text/plain;q=0.9, application/xhtml+xml, application/xml;q=0.8, application/json;q=0.8, */*;q=0.1"

// Fetch retrieves rawURL with GET and returns its body as text. Documents
// larger than the configured maximum fail with ErrBodyTooLarge instead of
// being truncated.
func (c *Client) Fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %w", rawURL, err)
	}
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.Do(ctx, req)
	if resp != nil {
		defer func() { _ = resp.Body.Close() }()
	}
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", rawURL, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &StatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	if err := checkContentType(resp.Header.Get("Content-Type")); err != nil {
		return "", fmt.Errorf("fetching %s: %w", rawURL, err)
	}

	if resp.ContentLength > c.maxBodyBytes {
		return "", fmt.Errorf("fetching %s: %w (%d > %d bytes)", rawURL, ErrBodyTooLarge, resp.ContentLength, c.maxBodyBytes)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", rawURL, err)
	}
	if int64(len(body)) > c.maxBodyBytes {
		return "", fmt.Errorf("fetching %s: %w (limit %d bytes)", rawURL, ErrBodyTooLarge, c.maxBodyBytes)
	}

	return string(body), nil
}

// checkContentType rejects media types that are not text-like. A missing or
// unparsable Content-Type is accepted and scanned as-is.
func checkContentType(contentType string) error {
	if contentType == "" {
		return nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil
	}

	switch {
	case strings.HasPrefix(mediaType, "text/"),
		mediaType == "application/json",
		mediaType == "application/xml",
		mediaType == "application/xhtml+xml",
		mediaType == "application/x-bibtex",
		mediaType == "application/x-research-info-systems",
		strings.HasSuffix(mediaType, "+json"),
		strings.HasSuffix(mediaType, "+xml"):
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedContent, mediaType)
	}
}

// denyPrivateAddress is a net.Dialer Control hook that refuses connections
// to non-public addresses. It runs after DNS resolution, so a public name
// that resolves to a private address is refused too.
func denyPrivateAddress(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBlockedAddress, address)
	}
	ip, err := netip.ParseAddr(host)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBlockedAddress, address)
	}
	ip = ip.Unmap()

	if ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() ||
		ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() ||
		ip.IsInterfaceLocalMulticast() || ip.IsMulticast() {
		return fmt.Errorf("%w: %s", ErrBlockedAddress, ip)
	}
	return nil
}
