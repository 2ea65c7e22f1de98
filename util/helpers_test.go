package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPURLEcosystem(t *testing.T) {
	tests := []struct {
		name     string
		purl     string
		expected string
	}{
		{"npm package", "pkg:npm/lodash@4.17.20", "npm"},
		{"scoped npm package", "pkg:npm/%40babel/core@7.0.0", "npm"},
		{"pypi package", "pkg:pypi/requests@2.25.0", "pypi"},
		{"golang package", "pkg:golang/github.com/gofiber/fiber@2.52.0", "golang"},
		{"uppercase type lowered", "pkg:NPM/lodash@4.17.20", "npm"},
		{"malformed", "not-a-purl", "unknown"},
		{"empty", "", "unknown"},
		{"missing type", "pkg:/name@1.0.0", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PURLEcosystem(tt.purl))
		})
	}
}

func TestCleanPURLStripsQualifiers(t *testing.T) {
	cleaned, err := CleanPURL("pkg:golang/github.com/arangodb/go-driver@v2.1.6?type=module#v2")
	require.NoError(t, err)
	assert.NotContains(t, cleaned, "?")
	assert.Contains(t, cleaned, "#v2")
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{0.666666, 0.67},
		{0.664, 0.66},
		{0.125, 0.13}, // half rounds up
		{0.7, 0.7},
		{0, 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, Round2(tt.in), 1e-9)
	}
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"npm", "pypi"}, "npm"))
	assert.False(t, Contains([]string{"npm", "pypi"}, "golang"))
	assert.False(t, Contains(nil, "npm"))
}

func TestGetEnvDefault(t *testing.T) {
	t.Setenv("CVEBUMP_TEST_ENV", "set")
	assert.Equal(t, "set", GetEnvDefault("CVEBUMP_TEST_ENV", "fallback"))
	assert.Equal(t, "fallback", GetEnvDefault("CVEBUMP_TEST_ENV_MISSING", "fallback"))
}
