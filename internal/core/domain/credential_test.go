package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredential_BaseURLStripsTrailingSlash(t *testing.T) {
	credential := Credential{Endpoint: "https://rancher.local/v3/"}

	assert.Equal(t, "https://rancher.local/v3", credential.BaseURL())
}

func TestValidateEndpoint(t *testing.T) {
	tests := []struct {
		name         string
		endpoint     string
		wantErr      bool
		wantWarnings int
	}{
		{"valid", "https://rancher.local/v3", false, 0},
		{"plain http", "http://rancher.local/v3", false, 0},
		{"empty", "", true, 0},
		{"trailing slash", "https://rancher.local/v3/", true, 0},
		{"not a url", "rancher.local/v3", true, 0},
		{"missing v3", "https://rancher.local/v1", false, 1},
		{"other scheme", "ftp://rancher.local/api", false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings, err := ValidateEndpoint(tt.endpoint)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, warnings, tt.wantWarnings)
		})
	}
}

func TestValidateBearerToken(t *testing.T) {
	assert.NoError(t, ValidateBearerToken("token-abcde:secret"))
	assert.Error(t, ValidateBearerToken(""))
	assert.Error(t, ValidateBearerToken("Bearer token-abcde:secret"))
}

func TestValidateCredentialID(t *testing.T) {
	assert.NoError(t, ValidateCredentialID("rancher-prod"))
	assert.Error(t, ValidateCredentialID(""))
	assert.Error(t, ValidateCredentialID(EnvironmentCredentialID))
	assert.Error(t, ValidateCredentialID("../prod"))
	assert.Error(t, ValidateCredentialID("${CREDENTIAL}"))
}
