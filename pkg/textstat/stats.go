// Package textstat derives descriptive statistics from plain text:
// sentence and token segmentation, syllable estimates, and the aggregate
// bundle consumed by pkg/readability.
package textstat

import "github.com/dtnitsch/readscore/pkg/readability"

// Describe computes the full statistics bundle for a document in one
// pass. Degenerate input (no sentences, no tokens) yields zero counts
// and NaN means; downstream readability scoring is defined for that.
func Describe(text string) readability.DocumentStatistics {
	sentences := Sentences(text)

	var filtered []string
	var syllableCounts []int
	tokensPerSentence := make([]int, 0, len(sentences))

	for _, sentence := range sentences {
		tokens := Tokens(sentence)
		tokensPerSentence = append(tokensPerSentence, len(tokens))
		for _, token := range tokens {
			filtered = append(filtered, token)
			syllableCounts = append(syllableCounts, CountSyllables(token))
		}
	}

	totalChars := 0
	for _, token := range filtered {
		totalChars += len([]rune(token))
	}
	totalSyllables := 0
	for _, count := range syllableCounts {
		totalSyllables += count
	}
	totalTokens := 0
	for _, count := range tokensPerSentence {
		totalTokens += count
	}

	// Integer-to-float division keeps the means total: 0/0 is NaN, not
	// a panic, which is exactly the degenerate-input contract.
	return readability.DocumentStatistics{
		SentenceLengthMean:    float64(totalTokens) / float64(len(sentences)),
		TokenLengthMean:       float64(totalChars) / float64(len(filtered)),
		SyllablesPerTokenMean: float64(totalSyllables) / float64(len(filtered)),
		NSentences:            len(sentences),
		NTokens:               len(filtered),
		SyllableCounts:        syllableCounts,
		FilteredTokens:        filtered,
	}
}
