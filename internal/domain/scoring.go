package domain

import (
	"sort"
	"strings"
)

const (
	// Scoring weights
	ScoreExactMatch     = 100.0
	ScorePrefixMatch    = 75.0
	ScoreSubstringMatch = 50.0
	ScoreFuzzyMatch     = 25.0

	// Position bonus (earlier substring matches are better)
	ScorePositionBonus = 10.0

	// Exact name match bonus (huge boost)
	ScoreExactNameBonus = 200.0

	// Description matches are weaker than name matches
	descriptionWeight = 0.25
)

// Candidate represents an entry candidate with its match score
type Candidate struct {
	Entry *Entry
	Score float64
}

// ScoreEntry calculates the match score for an entry against a query string.
// The name dominates; the description contributes a weaker signal so that
// "systems" still finds the Rust bookmark.
func ScoreEntry(queryStr string, entry *Entry) float64 {
	if entry == nil || queryStr == "" {
		return 0.0
	}

	queryStr = strings.ToLower(strings.TrimSpace(queryStr))
	name := strings.ToLower(entry.Name)

	score := scoreText(queryStr, name)
	if score == 0.0 {
		score = descriptionWeight * scoreText(queryStr, strings.ToLower(entry.Description))
	}
	return score
}

// scoreText scores a query against a single text field
func scoreText(queryStr, text string) float64 {
	if text == "" {
		return 0.0
	}

	// Exact match (highest score)
	if queryStr == text {
		return ScoreExactMatch + ScoreExactNameBonus
	}

	// Prefix match
	if strings.HasPrefix(text, queryStr) {
		return ScorePrefixMatch
	}

	// Substring match
	if strings.Contains(text, queryStr) {
		index := strings.Index(text, queryStr)
		// Earlier substring matches get higher score
		substringBonus := ScorePositionBonus * (1.0 - float64(index)/float64(len(text)))
		return ScoreSubstringMatch + substringBonus
	}

	// Fuzzy match (word-based)
	// Check if all query words appear in the text
	queryWords := strings.Fields(queryStr)
	if len(queryWords) > 1 {
		allMatch := true
		for _, word := range queryWords {
			if !strings.Contains(text, word) {
				allMatch = false
				break
			}
		}
		if allMatch {
			return ScoreFuzzyMatch
		}
	}

	// Character similarity
	similarity := calculateSimilarity(queryStr, text)
	if similarity > 0.5 {
		return ScoreFuzzyMatch * similarity
	}

	return 0.0
}

// calculateSimilarity calculates fuzzy similarity between two strings
func calculateSimilarity(s1, s2 string) float64 {
	if s1 == "" || s2 == "" {
		return 0.0
	}

	// Simple similarity: ratio of matching characters
	matches := 0
	for _, c := range s1 {
		if strings.ContainsRune(s2, c) {
			matches++
		}
	}

	return float64(matches) / float64(len(s1))
}

// RankCandidates ranks entry candidates by score (descending)
func RankCandidates(queryStr string, entries []*Entry) []*Candidate {
	candidates := make([]*Candidate, 0, len(entries))

	for _, entry := range entries {
		// Skip disabled entries
		if entry.Disabled {
			continue
		}

		score := ScoreEntry(queryStr, entry)

		// Skip entries with zero score (no match)
		if score == 0.0 {
			continue
		}

		candidates = append(candidates, &Candidate{
			Entry: entry,
			Score: score,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}

// FindBestEntry finds the best matching entry for a query
func FindBestEntry(queryStr string, entries []*Entry) *Entry {
	candidates := RankCandidates(queryStr, entries)
	if len(candidates) == 0 {
		return nil
	}
	return candidates[0].Entry
}
