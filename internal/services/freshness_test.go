package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthScore(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		outdated int
		expected int
	}{
		{"nothing tracked scores perfect", 0, 0, 100},
		{"all fresh", 10, 0, 100},
		{"half outdated", 10, 5, 50},
		{"all outdated", 4, 4, 0},
		{"integer truncation", 3, 1, 66},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HealthScore(tt.total, tt.outdated))
		})
	}
}
