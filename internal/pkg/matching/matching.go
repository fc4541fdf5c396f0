// Package matching scores lost posts against found posts so that likely
// pairs can be surfaced to both owners. Posts are embedded as bag-of-words
// term-frequency vectors over item name + description and compared by
// cosine similarity. Vectors are cached in memory keyed by post ID.
package matching

import (
	"math"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/CampusFound/CampusFound/app/models"
)

// DefaultThreshold is the minimum cosine similarity for a match to be
// reported.
const DefaultThreshold = 0.70

// Vector is a sparse term-frequency vector.
type Vector map[string]float64

var (
	cacheMu     sync.RWMutex
	vectorCache = make(map[uint]Vector)
)

// Match pairs a candidate post with its similarity score.
type Match struct {
	Post       models.Post
	Similarity float64
}

// Tokenize lowercases the text and splits it on any non-alphanumeric rune,
// dropping single-character fragments.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 1 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Embed builds the term-frequency vector for a text.
func Embed(text string) Vector {
	vec := make(Vector)
	for _, tok := range Tokenize(text) {
		vec[tok]++
	}
	return vec
}

// Cosine returns the cosine similarity of two vectors, 0 when either is empty.
func Cosine(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for term, w := range a {
		normA += w * w
		if wb, ok := b[term]; ok {
			dot += w * wb
		}
	}
	for _, w := range b {
		normB += w * w
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func postText(post *models.Post) string {
	return post.ItemName + " " + post.Description
}

// CacheVector embeds and caches a post's vector.
func CacheVector(post *models.Post) Vector {
	vec := Embed(postText(post))
	cacheMu.Lock()
	vectorCache[post.ID] = vec
	cacheMu.Unlock()
	return vec
}

// DropVector forgets a deleted post's vector.
func DropVector(postID uint) {
	cacheMu.Lock()
	delete(vectorCache, postID)
	cacheMu.Unlock()
}

func cachedVector(post *models.Post) Vector {
	cacheMu.RLock()
	vec, ok := vectorCache[post.ID]
	cacheMu.RUnlock()
	if ok {
		return vec
	}
	return CacheVector(post)
}

// OppositeType returns the report type a post should be matched against.
func OppositeType(reportType string) string {
	if models.NormalizeReportType(reportType) == models.ReportTypeLost {
		return models.ReportTypeFound
	}
	return models.ReportTypeLost
}

// FindMatches scores post against the candidates (expected to be of the
// opposite report type) and returns those at or above threshold, best first.
// The post itself and its owner's other reports are skipped: matching a
// user's lost report to their own found report helps nobody.
func FindMatches(post *models.Post, candidates []models.Post, threshold float64) []Match {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	current := CacheVector(post)

	matches := make([]Match, 0)
	for i := range candidates {
		other := &candidates[i]
		if other.ID == post.ID || other.UserID == post.UserID {
			continue
		}
		similarity := Cosine(current, cachedVector(other))
		if similarity >= threshold {
			matches = append(matches, Match{Post: *other, Similarity: similarity})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	return matches
}
