// Package readability computes standard readability scores from
// precomputed document statistics. All formulas are tuned for English.
package readability

import "math"

// DocumentStatistics is the aggregate input for score computation.
// It is produced upstream (see pkg/textstat) and never mutated here.
type DocumentStatistics struct {
	SentenceLengthMean    float64  // mean tokens per sentence
	TokenLengthMean       float64  // mean characters per token
	SyllablesPerTokenMean float64  // mean syllables per token
	NSentences            int      // total sentence count
	NTokens               int      // total token count
	SyllableCounts        []int    // per-token syllable counts
	FilteredTokens        []string // content tokens, punctuation excluded
}

// Scores holds the eight computed readability metrics.
type Scores struct {
	FleschReadingEase         float64 `json:"flesch_reading_ease" yaml:"flesch_reading_ease"`
	FleschKincaidGrade        float64 `json:"flesch_kincaid_grade" yaml:"flesch_kincaid_grade"`
	SMOG                      float64 `json:"smog" yaml:"smog"`
	GunningFog                float64 `json:"gunning_fog" yaml:"gunning_fog"`
	AutomatedReadabilityIndex float64 `json:"automated_readability_index" yaml:"automated_readability_index"`
	ColemanLiauIndex          float64 `json:"coleman_liau_index" yaml:"coleman_liau_index"`
	Lix                       float64 `json:"lix" yaml:"lix"`
	Rix                       float64 `json:"rix" yaml:"rix"`
}

// Map returns the scores keyed by their canonical metric names.
func (s Scores) Map() map[string]float64 {
	return map[string]float64{
		"flesch_reading_ease":         s.FleschReadingEase,
		"flesch_kincaid_grade":        s.FleschKincaidGrade,
		"smog":                        s.SMOG,
		"gunning_fog":                 s.GunningFog,
		"automated_readability_index": s.AutomatedReadabilityIndex,
		"coleman_liau_index":          s.ColemanLiauIndex,
		"lix":                         s.Lix,
		"rix":                         s.Rix,
	}
}

// HardWords counts tokens with 3 or more syllables (SMOG, Gunning Fog).
func (d DocumentStatistics) HardWords() int {
	count := 0
	for _, syllables := range d.SyllableCounts {
		if syllables >= 3 {
			count++
		}
	}
	return count
}

// LongWords counts content tokens longer than 6 characters (LIX, RIX).
func (d DocumentStatistics) LongWords() int {
	count := 0
	for _, token := range d.FilteredTokens {
		if len([]rune(token)) > 6 {
			count++
		}
	}
	return count
}

// Compute evaluates all eight metrics. It is pure and total: degenerate
// inputs (zero sentences or tokens) produce IEEE-754 Inf/NaN in the
// affected scores rather than an error. Only SMOG carries an explicit
// floor, returning 0.0 below 3 sentences; the asymmetry matches the
// reference behavior and callers must treat non-finite values as
// "undefined for this document".
func Compute(stats DocumentStatistics) Scores {
	hardWords := stats.HardWords()
	longWords := stats.LongWords()

	return Scores{
		FleschReadingEase:         fleschReadingEase(stats),
		FleschKincaidGrade:        fleschKincaidGrade(stats),
		SMOG:                      smog(stats, hardWords),
		GunningFog:                gunningFog(stats, hardWords),
		AutomatedReadabilityIndex: automatedReadabilityIndex(stats),
		ColemanLiauIndex:          colemanLiauIndex(stats),
		Lix:                       lix(stats, longWords),
		Rix:                       rix(stats, longWords),
	}
}

// fleschReadingEase: 206.835 - 1.015*avg_sentence_len - 84.6*avg_syllables_per_word.
// Higher = easier to read.
func fleschReadingEase(stats DocumentStatistics) float64 {
	return 206.835 - 1.015*stats.SentenceLengthMean - 84.6*stats.SyllablesPerTokenMean
}

// fleschKincaidGrade: 0.39*avg_sentence_len + 11.8*avg_syllables_per_word - 15.59.
// Score is the school grade required to read the text.
func fleschKincaidGrade(stats DocumentStatistics) float64 {
	return 0.39*stats.SentenceLengthMean + 11.8*stats.SyllablesPerTokenMean - 15.59
}

// smog: 1.043*sqrt(30*hard_words/n_sentences) + 3.1291.
// SMOG wants 30+ sentences to be reliable; below 3 sentences the
// division floor kicks in and the sentinel 0.0 is returned.
func smog(stats DocumentStatistics, hardWords int) float64 {
	if stats.NSentences >= 3 {
		return 1.043*math.Sqrt(30*float64(hardWords)/float64(stats.NSentences)) + 3.1291
	}
	return 0.0
}

// gunningFog: 0.4*(avg_sentence_len + percent hard words).
func gunningFog(stats DocumentStatistics, hardWords int) float64 {
	percentHardWords := float64(hardWords) / float64(stats.NTokens) * 100
	return 0.4 * (stats.SentenceLengthMean + percentHardWords)
}

// automatedReadabilityIndex: 4.71*avg_token_len + 0.5*avg_sentence_len - 21.43.
func automatedReadabilityIndex(stats DocumentStatistics) float64 {
	return 4.71*stats.TokenLengthMean + 0.5*stats.SentenceLengthMean - 21.43
}

// colemanLiauIndex: 0.0588*L - 0.296*S - 15.8 where L is avg characters
// per 100 words and S is avg sentences per 100 words.
func colemanLiauIndex(stats DocumentStatistics) float64 {
	l := stats.TokenLengthMean * 100
	s := float64(stats.NSentences) / stats.SentenceLengthMean * 100
	return 0.0588*l - 0.296*s - 15.8
}

// lix: avg_sentence_len + percent words longer than 6 letters.
func lix(stats DocumentStatistics, longWords int) float64 {
	percentLongWords := float64(longWords) / float64(stats.NTokens) * 100
	return stats.SentenceLengthMean + percentLongWords
}

// rix: long words per sentence.
func rix(stats DocumentStatistics, longWords int) float64 {
	return float64(longWords) / float64(stats.NSentences)
}
