package fields

import (
	"regexp"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/ravi/jobmatch/internal/lexicon"
	"github.com/ravi/jobmatch/internal/types"
)

const (
	// fuzzyThreshold is the minimum normalized similarity for a fuzzy
	// dictionary match.
	fuzzyThreshold = 0.8

	exactConfidence = 1.0
	fuzzyConfidence = 0.8
)

// tokenPattern keeps letters, digits and the symbols that distinguish
// c#, c++ and friends from their single-letter stems.
var tokenPattern = regexp.MustCompile(`[a-z0-9+#]+`)

// ExtractSkills matches the skill dictionary against the resume text. An
// exact match requires every token of the skill phrase to appear among the
// document's tokens, order-independent. Skills missed exactly are retried
// with a normalized edit-distance scan over sliding token windows. Results
// are deduplicated by name, exact confidence winning, and sorted by name so
// repeated parses of the same bytes are identical.
func ExtractSkills(text string) []types.ExtractedSkill {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return []types.ExtractedSkill{}
	}

	tokenSet := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		tokenSet[tok] = true
	}

	confidences := make(map[string]float64)
	for _, skill := range lexicon.Skills() {
		skillTokens := tokenize(skill)
		if len(skillTokens) == 0 {
			continue
		}

		if containsAll(tokenSet, skillTokens) {
			confidences[skill] = exactConfidence
			continue
		}
		if fuzzyMatch(skill, tokens, len(skillTokens)) {
			confidences[skill] = fuzzyConfidence
		}
	}

	skills := make([]types.ExtractedSkill, 0, len(confidences))
	for name, confidence := range confidences {
		skills = append(skills, types.ExtractedSkill{
			Name:       name,
			Category:   lexicon.Category(name),
			Confidence: confidence,
		})
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	return skills
}

// tokenize lowercases the text, splits it into word tokens and maps variant
// spellings (golang, k8s, js) to their dictionary forms.
func tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		tokens = append(tokens, lexicon.Canonical(tok))
	}
	return tokens
}

func containsAll(tokenSet map[string]bool, skillTokens []string) bool {
	for _, tok := range skillTokens {
		if !tokenSet[tok] {
			return false
		}
	}
	return true
}

// fuzzyMatch slides a window of windowLen tokens across the document and
// accepts the skill when any window's normalized similarity to the skill
// phrase reaches the threshold.
func fuzzyMatch(skill string, tokens []string, windowLen int) bool {
	skillLower := strings.ToLower(skill)
	for i := 0; i+windowLen <= len(tokens); i++ {
		window := strings.Join(tokens[i:i+windowLen], " ")
		if similarity(skillLower, window) >= fuzzyThreshold {
			return true
		}
	}
	return false
}

// similarity is 1 minus the edit distance normalized by the longer string.
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(longest)
}
