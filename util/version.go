// Package util - ecosystem-aware version comparison for the dependency
// freshness poller.
package util

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	npm "github.com/aquasecurity/go-npm-version/pkg"
	pep440 "github.com/aquasecurity/go-pep440-version"
)

// IsOutdated reports whether installed is strictly older than latest,
// using the ecosystem-specific parser for npm and PyPI and falling back to
// semver (with a string comparison of last resort) for everything else.
func IsOutdated(ecosystem, installed, latest string) bool {
	if installed == "" || latest == "" {
		return false
	}

	switch strings.ToLower(ecosystem) {
	case "npm":
		return isOutdatedNPM(installed, latest)
	case "pypi":
		return isOutdatedPython(installed, latest)
	}

	iv, err1 := semver.NewVersion(strings.TrimPrefix(installed, "v"))
	lv, err2 := semver.NewVersion(strings.TrimPrefix(latest, "v"))
	if err1 != nil || err2 != nil {
		return installed != latest
	}
	return iv.LessThan(lv)
}

func isOutdatedNPM(installed, latest string) bool {
	iv, err1 := npm.NewVersion(installed)
	lv, err2 := npm.NewVersion(latest)
	if err1 != nil || err2 != nil {
		return installed != latest
	}
	return iv.LessThan(lv)
}

func isOutdatedPython(installed, latest string) bool {
	iv, err1 := pep440.Parse(installed)
	lv, err2 := pep440.Parse(latest)
	if err1 != nil || err2 != nil {
		return installed != latest
	}
	return iv.LessThan(lv)
}
