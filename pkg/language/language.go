// Package language detects the language of input text. The readability
// formulas are tuned for English, so non-English detections are
// surfaced to the caller as a warning signal rather than blocking the
// computation.
package language

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Detection is the result of language identification for one document.
type Detection struct {
	Code       string  `json:"code" yaml:"code"`             // ISO-639-1, lowercase, "unknown" if undecided
	Confidence float64 `json:"confidence" yaml:"confidence"` // 0-1
	English    bool    `json:"english" yaml:"english"`
}

// Detector wraps a lingua language detector.
type Detector struct {
	detector lingua.LanguageDetector
}

// candidate languages; a small set keeps model loading cheap while
// covering the scripts this tool realistically sees.
var candidates = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Swedish,
	lingua.Danish,
	lingua.Russian,
	lingua.Chinese,
	lingua.Japanese,
}

// NewDetector builds a detector over the candidate language set.
func NewDetector() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidates...).
			Build(),
	}
}

// Detect identifies the language of text.
func (d *Detector) Detect(text string) Detection {
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return Detection{Code: "unknown"}
	}

	return Detection{
		Code:       strings.ToLower(lang.IsoCode639_1().String()),
		Confidence: d.detector.ComputeLanguageConfidence(text, lang),
		English:    lang == lingua.English,
	}
}
