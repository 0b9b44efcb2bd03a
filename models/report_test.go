package models

import (
	"math"
	"testing"

	"github.com/dtnitsch/readscore/pkg/readability"
)

func TestScoreReportRoundTrip(t *testing.T) {
	original := readability.Scores{
		FleschReadingEase:         69.785,
		FleschKincaidGrade:        6.01,
		SMOG:                      8.842,
		GunningFog:                8.0,
		AutomatedReadabilityIndex: 7.12,
		ColemanLiauIndex:          1.76,
		Lix:                       25.0,
		Rix:                       1.5,
	}

	restored := NewScoreReport(original).Scores()
	if restored != original {
		t.Errorf("round trip changed scores: %+v vs %+v", restored, original)
	}
}

func TestScoreReportRestoresUndefinedAsNaN(t *testing.T) {
	report := NewScoreReport(readability.Scores{
		FleschReadingEase: 100.0,
		GunningFog:        math.Inf(1),
		Lix:               math.NaN(),
	})
	if report.GunningFog != nil {
		t.Errorf("gunning_fog = %v, want nil for +Inf", *report.GunningFog)
	}

	restored := report.Scores()
	if !math.IsNaN(restored.GunningFog) {
		t.Errorf("restored gunning_fog = %v, want NaN", restored.GunningFog)
	}
	if !math.IsNaN(restored.Lix) {
		t.Errorf("restored lix = %v, want NaN", restored.Lix)
	}
	if restored.FleschReadingEase != 100.0 {
		t.Errorf("restored flesch_reading_ease = %v, want 100.0", restored.FleschReadingEase)
	}
}
