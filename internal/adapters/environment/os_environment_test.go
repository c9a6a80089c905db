package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOsEnvironment_Expand(t *testing.T) {
	t.Setenv("BUILD_TAG", "1.4.2")
	t.Setenv("PROJECT", "c-abc12:p-xyz34")
	sut := ProvideOsEnvironment()

	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"braces", "registry.local/api:${BUILD_TAG}", "registry.local/api:1.4.2"},
		{"bare", "registry.local/api:$BUILD_TAG", "registry.local/api:1.4.2"},
		{"several", "/project/${PROJECT}/workloads/deployment:default:api-${BUILD_TAG}", "/project/c-abc12:p-xyz34/workloads/deployment:default:api-1.4.2"},
		{"unset kept", "api:${REDEPLOY_TEST_UNSET_VARIABLE}", "api:${REDEPLOY_TEST_UNSET_VARIABLE}"},
		{"no placeholders", "api:1.0", "api:1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sut.Expand(tt.value))
		})
	}
}

func TestOsEnvironment_Lookup(t *testing.T) {
	t.Setenv("RANCHER2_ENDPOINT", "https://rancher.local/v3")
	sut := ProvideOsEnvironment()

	value, ok := sut.Lookup("RANCHER2_ENDPOINT")
	assert.True(t, ok)
	assert.Equal(t, "https://rancher.local/v3", value)

	_, ok = sut.Lookup("REDEPLOY_TEST_UNSET_VARIABLE")
	assert.False(t, ok)
}
