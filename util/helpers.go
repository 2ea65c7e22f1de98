// Package util provides utility functions for working with Package URLs
// (PURLs), numeric rounding for report statistics, and environment defaults.
//
//revive:disable-next-line:var-naming
package util

import (
	"math"
	"os"
	"strings"

	"github.com/package-url/packageurl-go"
)

// GetEnvDefault is a convenience function for handling env vars
func GetEnvDefault(key, defVal string) string {
	val, ex := os.LookupEnv(key) // get the env var
	if !ex {                     // not found return default
		return defVal
	}
	return val // return value for env var
}

// IsEmpty checks if a string is empty or contains only whitespace
func IsEmpty(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}

// Contains checks if a string slice contains an item
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// PURLEcosystem extracts the ecosystem (the PURL type, e.g. "npm") from a
// package-URL-style identifier. Malformed identifiers degrade to "unknown"
// rather than erroring.
func PURLEcosystem(purlStr string) string {
	parsed, err := packageurl.FromString(purlStr)
	if err != nil || parsed.Type == "" {
		return "unknown"
	}
	return strings.ToLower(parsed.Type)
}

// CleanPURL removes qualifiers (after ?) but preserves the subpath (after #)
// to maintain module identity (e.g. #v2)
func CleanPURL(purlStr string) (string, error) {
	parsed, err := packageurl.FromString(purlStr)
	if err != nil {
		return "", err
	}

	cleaned := packageurl.PackageURL{
		Type:      parsed.Type,
		Namespace: parsed.Namespace,
		Name:      parsed.Name,
		Version:   parsed.Version,
		Subpath:   parsed.Subpath,
		// Qualifiers are intentionally omitted to clean the string
	}

	return strings.ToLower(cleaned.ToString()), nil
}

// Round2 rounds to two decimal places, half up on the base value.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
