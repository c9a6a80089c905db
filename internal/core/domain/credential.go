package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// EnvironmentCredentialID selects the credential described by RANCHER2_* environment variables.
const EnvironmentCredentialID = "env"

// Credential holds what is needed to call the Rancher2 API.
type Credential struct {
	ID          string `json:"id"`
	Endpoint    string `json:"endpoint"`
	TrustCert   bool   `json:"trustCert"`
	BearerToken string `json:"bearerToken"`
	Description string `json:"description,omitempty"`
}

// BaseURL returns the endpoint without a trailing slash.
func (c *Credential) BaseURL() string {
	return strings.TrimRight(c.Endpoint, "/")
}

// ValidateEndpoint checks a Rancher2 API endpoint. Problems that still allow the endpoint
// to be used are returned as warnings.
func ValidateEndpoint(endpoint string) ([]string, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}
	if strings.HasSuffix(endpoint, "/") {
		return nil, fmt.Errorf("endpoint must not end with '/'")
	}
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("endpoint is not a valid URL: %w", err)
	}

	var warnings []string
	if !strings.HasSuffix(endpoint, "/v3") {
		warnings = append(warnings, "endpoint does not end with /v3, the Rancher2 API is usually served there")
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		warnings = append(warnings, "endpoint does not start with http:// or https://")
	}
	return warnings, nil
}

// ValidateBearerToken checks an API token as it is copied from the Rancher UI.
func ValidateBearerToken(token string) error {
	if token == "" {
		return fmt.Errorf("bearer token is required")
	}
	if strings.HasPrefix(token, "Bearer") {
		return fmt.Errorf("bearer token must not include the 'Bearer' prefix")
	}
	return nil
}

// ValidateCredentialID checks that an id can be used as a credential name.
func ValidateCredentialID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("credential id cannot be empty")
	}
	if id == EnvironmentCredentialID {
		return fmt.Errorf("credential id '%s' is reserved", EnvironmentCredentialID)
	}
	if strings.ContainsAny(id, " \t\n/\\$") {
		return fmt.Errorf("credential id contains invalid characters")
	}
	return nil
}
