// Package analytics produces corpus-level keyword summaries for batch
// runs. Stopwords are excluded so the top-N list reflects content words.
package analytics

import (
	"sort"
	"strings"
)

// stopwords are high-frequency function words excluded from keyword
// frequency analysis.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "also": {}, "am": {}, "an": {}, "and": {}, "any": {}, "are": {},
	"as": {}, "at": {}, "be": {}, "because": {}, "been": {}, "before": {},
	"being": {}, "below": {}, "between": {}, "both": {}, "but": {}, "by": {},
	"can": {}, "could": {}, "did": {}, "do": {}, "does": {}, "doing": {},
	"down": {}, "during": {}, "each": {}, "few": {}, "for": {}, "from": {},
	"further": {}, "had": {}, "has": {}, "have": {}, "having": {}, "he": {},
	"her": {}, "here": {}, "hers": {}, "herself": {}, "him": {}, "himself": {},
	"his": {}, "how": {}, "i": {}, "if": {}, "in": {}, "into": {}, "is": {},
	"it": {}, "its": {}, "itself": {}, "just": {}, "me": {}, "more": {},
	"most": {}, "my": {}, "myself": {}, "no": {}, "nor": {}, "not": {},
	"now": {}, "of": {}, "off": {}, "on": {}, "once": {}, "only": {}, "or": {},
	"other": {}, "our": {}, "ours": {}, "ourselves": {}, "out": {}, "over": {},
	"own": {}, "same": {}, "she": {}, "should": {}, "so": {}, "some": {},
	"such": {}, "than": {}, "that": {}, "the": {}, "their": {}, "theirs": {},
	"them": {}, "themselves": {}, "then": {}, "there": {}, "these": {},
	"they": {}, "this": {}, "those": {}, "through": {}, "to": {}, "too": {},
	"under": {}, "until": {}, "up": {}, "very": {}, "was": {}, "we": {},
	"were": {}, "what": {}, "when": {}, "where": {}, "which": {}, "while": {},
	"who": {}, "whom": {}, "why": {}, "will": {}, "with": {}, "would": {},
	"you": {}, "your": {}, "yours": {}, "yourself": {}, "yourselves": {},
}

// IsStopword reports whether a word is excluded from keyword analysis.
func IsStopword(word string) bool {
	_, exists := stopwords[strings.ToLower(word)]
	return exists
}

// WordFrequency counts content-word occurrences in already-filtered
// tokens (see pkg/textstat).
func WordFrequency(tokens []string) map[string]int {
	frequencies := make(map[string]int)
	for _, token := range tokens {
		word := strings.ToLower(token)
		if _, exists := stopwords[word]; exists {
			continue
		}
		frequencies[word]++
	}
	return frequencies
}

// Merge aggregates per-document frequency maps into one corpus map.
func Merge(perDocument []map[string]int) map[string]int {
	merged := make(map[string]int)
	for _, counts := range perDocument {
		for word, count := range counts {
			merged[word] += count
		}
	}
	return merged
}

// TopKeywords returns the n most frequent words, most frequent first.
// Ties break alphabetically so the output is deterministic.
func TopKeywords(frequencies map[string]int, n int) []string {
	type wordCount struct {
		word  string
		count int
	}

	counts := make([]wordCount, 0, len(frequencies))
	for word, count := range frequencies {
		counts = append(counts, wordCount{word, count})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].word < counts[j].word
	})

	if len(counts) < n {
		n = len(counts)
	}

	top := make([]string, n)
	for i := 0; i < n; i++ {
		top[i] = counts[i].word
	}
	return top
}
