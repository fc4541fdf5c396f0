package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CampusFound/CampusFound/app/models"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tokens := Tokenize("Black Leather Wallet, lost near the ITE building!")
	assert.Equal(t, []string{"black", "leather", "wallet", "lost", "near", "the", "ite", "building"}, tokens)
}

func TestCosine(t *testing.T) {
	t.Parallel()

	a := Embed("black leather wallet")
	b := Embed("black leather wallet")
	assert.InDelta(t, 1.0, Cosine(a, b), 1e-9, "identical text must score 1.0")

	c := Embed("silver water bottle")
	assert.Equal(t, 0.0, Cosine(a, c), "disjoint text must score 0.0")

	assert.Equal(t, 0.0, Cosine(a, Embed("")), "empty vector scores 0.0")
}

func TestOppositeType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, models.ReportTypeFound, OppositeType("lost"))
	assert.Equal(t, models.ReportTypeLost, OppositeType("found"))
	assert.Equal(t, models.ReportTypeLost, OppositeType("FOUND"))
}

func TestFindMatches(t *testing.T) {
	t.Parallel()

	post := &models.Post{ID: 1, UserID: 10, ReportType: "lost", ItemName: "black leather wallet", Description: "lost near the library"}
	candidates := []models.Post{
		{ID: 1, UserID: 10, ReportType: "found", ItemName: "black leather wallet", Description: "lost near the library"},
		{ID: 2, UserID: 10, ReportType: "found", ItemName: "black leather wallet", Description: "lost near the library"},
		{ID: 3, UserID: 20, ReportType: "found", ItemName: "black leather wallet", Description: "found near the library"},
		{ID: 4, UserID: 30, ReportType: "found", ItemName: "silver water bottle", Description: "left at the gym"},
	}

	matches := FindMatches(post, candidates, DefaultThreshold)

	assert.Len(t, matches, 1)
	assert.Equal(t, uint(3), matches[0].Post.ID, "same post and same owner must be skipped, dissimilar item filtered")
	assert.GreaterOrEqual(t, matches[0].Similarity, DefaultThreshold)
}

func TestFindMatchesSortedBestFirst(t *testing.T) {
	t.Parallel()

	post := &models.Post{ID: 100, UserID: 1, ItemName: "red umbrella", Description: "red umbrella with wooden handle"}
	candidates := []models.Post{
		{ID: 101, UserID: 2, ItemName: "red umbrella", Description: "wooden handle"},
		{ID: 102, UserID: 3, ItemName: "red umbrella", Description: "red umbrella with wooden handle"},
	}

	matches := FindMatches(post, candidates, 0.1)
	assert.Len(t, matches, 2)
	assert.Equal(t, uint(102), matches[0].Post.ID, "exact duplicate must rank first")
}

func TestVectorCache(t *testing.T) {
	t.Parallel()

	post := &models.Post{ID: 9999, ItemName: "calculator"}
	vec := CacheVector(post)
	assert.NotEmpty(t, vec)

	DropVector(post.ID)
	cacheMu.RLock()
	_, ok := vectorCache[post.ID]
	cacheMu.RUnlock()
	assert.False(t, ok)
}
