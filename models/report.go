package models

import (
	"math"

	"github.com/dtnitsch/readscore/pkg/language"
	"github.com/dtnitsch/readscore/pkg/readability"
)

// Report is the per-document output of a scoring run.
type Report struct {
	Source      string             `json:"source" yaml:"source"`
	Title       string             `json:"title,omitempty" yaml:"title,omitempty"`
	ContentHash string             `json:"content_hash" yaml:"content_hash"`
	Language    language.Detection `json:"language" yaml:"language"`
	Statistics  StatisticsSummary  `json:"statistics" yaml:"statistics"`
	Scores      ScoreReport        `json:"scores" yaml:"scores"`
	CacheHit    bool               `json:"cache_hit,omitempty" yaml:"cache_hit,omitempty"`
}

// StatisticsSummary is the aggregate statistics block of a report.
type StatisticsSummary struct {
	NSentences            int     `json:"n_sentences" yaml:"n_sentences"`
	NTokens               int     `json:"n_tokens" yaml:"n_tokens"`
	SentenceLengthMean    float64 `json:"sentence_length_mean" yaml:"sentence_length_mean"`
	TokenLengthMean       float64 `json:"token_length_mean" yaml:"token_length_mean"`
	SyllablesPerTokenMean float64 `json:"syllables_per_token_mean" yaml:"syllables_per_token_mean"`
	HardWords             int     `json:"hard_words" yaml:"hard_words"`
	LongWords             int     `json:"long_words" yaml:"long_words"`
}

// ScoreReport carries the eight metrics with non-finite values rendered
// as null. encoding/json refuses NaN/Inf outright, and "undefined for
// this document" is the documented meaning anyway. All eight keys are
// always present.
type ScoreReport struct {
	FleschReadingEase         *float64 `json:"flesch_reading_ease" yaml:"flesch_reading_ease"`
	FleschKincaidGrade        *float64 `json:"flesch_kincaid_grade" yaml:"flesch_kincaid_grade"`
	SMOG                      *float64 `json:"smog" yaml:"smog"`
	GunningFog                *float64 `json:"gunning_fog" yaml:"gunning_fog"`
	AutomatedReadabilityIndex *float64 `json:"automated_readability_index" yaml:"automated_readability_index"`
	ColemanLiauIndex          *float64 `json:"coleman_liau_index" yaml:"coleman_liau_index"`
	Lix                       *float64 `json:"lix" yaml:"lix"`
	Rix                       *float64 `json:"rix" yaml:"rix"`
}

// NewScoreReport converts raw scores into the null-aware report form.
func NewScoreReport(scores readability.Scores) ScoreReport {
	return ScoreReport{
		FleschReadingEase:         finite(scores.FleschReadingEase),
		FleschKincaidGrade:        finite(scores.FleschKincaidGrade),
		SMOG:                      finite(scores.SMOG),
		GunningFog:                finite(scores.GunningFog),
		AutomatedReadabilityIndex: finite(scores.AutomatedReadabilityIndex),
		ColemanLiauIndex:          finite(scores.ColemanLiauIndex),
		Lix:                       finite(scores.Lix),
		Rix:                       finite(scores.Rix),
	}
}

// Scores converts the report form back to raw score values, restoring
// NaN for metrics recorded as undefined. Storage maps any non-finite
// value to NULL, so the original Inf/NaN distinction is not needed.
func (r ScoreReport) Scores() readability.Scores {
	return readability.Scores{
		FleschReadingEase:         restore(r.FleschReadingEase),
		FleschKincaidGrade:        restore(r.FleschKincaidGrade),
		SMOG:                      restore(r.SMOG),
		GunningFog:                restore(r.GunningFog),
		AutomatedReadabilityIndex: restore(r.AutomatedReadabilityIndex),
		ColemanLiauIndex:          restore(r.ColemanLiauIndex),
		Lix:                       restore(r.Lix),
		Rix:                       restore(r.Rix),
	}
}

func restore(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}

// NewStatisticsSummary flattens the statistics bundle for reporting.
func NewStatisticsSummary(stats readability.DocumentStatistics) StatisticsSummary {
	return StatisticsSummary{
		NSentences:            stats.NSentences,
		NTokens:               stats.NTokens,
		SentenceLengthMean:    finiteOrZero(stats.SentenceLengthMean),
		TokenLengthMean:       finiteOrZero(stats.TokenLengthMean),
		SyllablesPerTokenMean: finiteOrZero(stats.SyllablesPerTokenMean),
		HardWords:             stats.HardWords(),
		LongWords:             stats.LongWords(),
	}
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// finiteOrZero clamps NaN means (empty documents) to zero for the
// summary block, where counts already tell the story.
func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
