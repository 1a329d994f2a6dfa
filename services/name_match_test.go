package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "jose ortega", normalizeName("  José   ORTEGA "))
	assert.Equal(t, "", normalizeName("   "))
}

func TestSuggestName(t *testing.T) {
	candidates := []string{"john smith", "jose ortega", "mary jones"}

	tests := []struct {
		query string
		want  string
		ok    bool
	}{
		{"jon smith", "john smith", true},
		{"mary jone", "mary jones", true},
		{"john smith", "", false},
		{"margaret hamilton", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := suggestName(tt.query, candidates)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := suggestName("john", nil)
	assert.False(t, ok)
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, similarity("", ""))
	assert.Equal(t, 1.0, similarity("abc", "abc"))
	assert.InDelta(t, 0.9, similarity("jon smith", "john smith"), 0.001)
}
