package s3

import (
	"fmt"
	"net/url"
	"strings"
)

const defaultEndpointHost = "s3.amazonaws.com"

// ParseEndpointURL turns a storage_endpoint_url job input into the host and
// TLS flag the client expects. Empty selects AWS over TLS. Plain http is
// allowed because local MinIO deployments commonly run without TLS, but the
// URL must be otherwise unambiguous: no userinfo, no path, no query.
func ParseEndpointURL(endpoint string) (host string, secure bool, err error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return defaultEndpointHost, true, nil
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return "", false, fmt.Errorf("invalid storage_endpoint_url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", false, fmt.Errorf("invalid storage_endpoint_url %q: absolute URL with host is required", endpoint)
	}
	if u.User != nil {
		return "", false, fmt.Errorf("invalid storage_endpoint_url %q: userinfo is not allowed", endpoint)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", false, fmt.Errorf("invalid storage_endpoint_url %q: query and fragment are not allowed", endpoint)
	}
	if p := strings.Trim(u.Path, "/"); p != "" {
		return "", false, fmt.Errorf("invalid storage_endpoint_url %q: path is not allowed", endpoint)
	}

	switch strings.ToLower(u.Scheme) {
	case "https":
		return u.Host, true, nil
	case "http":
		return u.Host, false, nil
	default:
		return "", false, fmt.Errorf("invalid storage_endpoint_url %q: http or https is required", endpoint)
	}
}
