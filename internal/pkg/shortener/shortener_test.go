package shortener

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecureSlug(t *testing.T) {
	t.Parallel()

	slug, err := GenerateSecureSlug(8)
	require.NoError(t, err)
	assert.Len(t, slug, 8)

	for _, ch := range slug {
		assert.True(t, strings.ContainsRune(alphabet, ch), "slug must only use the base62 alphabet")
	}

	_, err = GenerateSecureSlug(0)
	assert.Error(t, err)
}

func TestGenerateSecureSlugUniqueness(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		slug, err := GenerateSecureSlug(8)
		require.NoError(t, err)
		assert.False(t, seen[slug], "slug collision within 100 draws")
		seen[slug] = true
	}
}
