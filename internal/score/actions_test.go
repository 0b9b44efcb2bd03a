package score

import (
	"database/sql"
	"testing"

	"github.com/dtnitsch/readscore/models"
	"github.com/dtnitsch/readscore/pkg/db"
)

func TestDatabasePathPrecedence(t *testing.T) {
	config := models.DefaultConfig()
	config.DBPath = "from-config.db"

	if got := databasePath("from-flag.db", config); got != "from-flag.db" {
		t.Errorf("databasePath with flag = %q, want flag value to win", got)
	}
	if got := databasePath("", config); got != "from-config.db" {
		t.Errorf("databasePath without flag = %q, want config db_path", got)
	}
	if got := databasePath("", models.DefaultConfig()); got != "" {
		t.Errorf("databasePath with defaults = %q, want empty for next-to-binary default", got)
	}
}

func TestNewHistoryEntryCarriesAllMetrics(t *testing.T) {
	row := db.HistoryRow{
		DocID:      7,
		Source:     "essay.txt",
		NSentences: 12,
		NTokens:    240,
		ComputedAt: "2026-08-30 12:00:00",
		Scores: db.StoredScores{
			FleschReadingEase:         sql.NullFloat64{Float64: 69.785, Valid: true},
			FleschKincaidGrade:        sql.NullFloat64{Float64: 6.01, Valid: true},
			SMOG:                      sql.NullFloat64{Float64: 8.842, Valid: true},
			GunningFog:                sql.NullFloat64{Float64: 8.0, Valid: true},
			AutomatedReadabilityIndex: sql.NullFloat64{Float64: 7.12, Valid: true},
			ColemanLiauIndex:          sql.NullFloat64{Float64: 1.76, Valid: true},
			Lix:                       sql.NullFloat64{Float64: 25.0, Valid: true},
			// Rix left NULL: renders as nil, never dropped.
		},
	}

	entry := newHistoryEntry(row)

	metrics := map[string]*float64{
		"flesch_reading_ease":         entry.FleschReadingEase,
		"flesch_kincaid_grade":        entry.FleschKincaidGrade,
		"smog":                        entry.SMOG,
		"gunning_fog":                 entry.GunningFog,
		"automated_readability_index": entry.AutomatedReadabilityIndex,
		"coleman_liau_index":          entry.ColemanLiauIndex,
		"lix":                         entry.Lix,
	}
	for name, value := range metrics {
		if value == nil {
			t.Errorf("%s = nil, want stored value", name)
		}
	}
	if entry.Rix != nil {
		t.Errorf("rix = %v, want nil for NULL stored value", *entry.Rix)
	}
	if entry.FleschKincaidGrade != nil && *entry.FleschKincaidGrade != 6.01 {
		t.Errorf("flesch_kincaid_grade = %v, want 6.01", *entry.FleschKincaidGrade)
	}
}
