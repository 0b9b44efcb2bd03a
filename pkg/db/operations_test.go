package db

import (
	"math"
	"testing"

	"github.com/dtnitsch/readscore/pkg/readability"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func sampleDocument() DocumentRecord {
	return DocumentRecord{
		Source:             "essay.txt",
		ContentHash:        "abc123def456",
		Title:              "An Essay",
		Language:           "en",
		LanguageConfidence: 0.98,
		NSentences:         12,
		NTokens:            240,
	}
}

func TestUpsertDocument_InsertAndDedup(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	docID, err := db.UpsertDocument(sampleDocument())
	if err != nil {
		t.Fatalf("UpsertDocument() failed: %v", err)
	}
	if docID == 0 {
		t.Fatal("UpsertDocument() returned 0 ID")
	}

	// Same content hash from a different source updates in place.
	rec := sampleDocument()
	rec.Source = "copy-of-essay.txt"
	sameID, err := db.UpsertDocument(rec)
	if err != nil {
		t.Fatalf("UpsertDocument() dedup failed: %v", err)
	}
	if sameID != docID {
		t.Errorf("dedup returned doc_id %d, want %d", sameID, docID)
	}

	var source string
	if err := db.QueryRow("SELECT source FROM documents WHERE doc_id = ?", docID).Scan(&source); err != nil {
		t.Fatalf("query source: %v", err)
	}
	if source != "copy-of-essay.txt" {
		t.Errorf("source = %q, want updated source", source)
	}
}

func TestUpsertScores_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	docID, err := db.UpsertDocument(sampleDocument())
	if err != nil {
		t.Fatalf("UpsertDocument() failed: %v", err)
	}

	scores := readability.Scores{
		FleschReadingEase:         69.785,
		FleschKincaidGrade:        6.01,
		SMOG:                      8.842,
		GunningFog:                8.0,
		AutomatedReadabilityIndex: 7.12,
		ColemanLiauIndex:          1.76,
		Lix:                       25.0,
		Rix:                       1.5,
	}
	if err := db.UpsertScores(docID, scores); err != nil {
		t.Fatalf("UpsertScores() failed: %v", err)
	}

	stored, err := db.GetScores(docID)
	if err != nil {
		t.Fatalf("GetScores() failed: %v", err)
	}
	if !stored.FleschReadingEase.Valid || stored.FleschReadingEase.Float64 != 69.785 {
		t.Errorf("flesch_reading_ease = %+v, want 69.785", stored.FleschReadingEase)
	}
	if !stored.Rix.Valid || stored.Rix.Float64 != 1.5 {
		t.Errorf("rix = %+v, want 1.5", stored.Rix)
	}
}

func TestUpsertScores_NonFiniteStoredAsNull(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	docID, err := db.UpsertDocument(sampleDocument())
	if err != nil {
		t.Fatalf("UpsertDocument() failed: %v", err)
	}

	scores := readability.Scores{
		FleschReadingEase: 100.0,
		GunningFog:        math.Inf(1),
		Lix:               math.NaN(),
	}
	if err := db.UpsertScores(docID, scores); err != nil {
		t.Fatalf("UpsertScores() with non-finite values failed: %v", err)
	}

	stored, err := db.GetScores(docID)
	if err != nil {
		t.Fatalf("GetScores() failed: %v", err)
	}
	if stored.GunningFog.Valid {
		t.Errorf("gunning_fog = %+v, want NULL for +Inf", stored.GunningFog)
	}
	if stored.Lix.Valid {
		t.Errorf("lix = %+v, want NULL for NaN", stored.Lix)
	}
	if !stored.FleschReadingEase.Valid {
		t.Error("flesch_reading_ease stored as NULL, want 100.0")
	}
}

func TestUpsertScores_Replaces(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	docID, err := db.UpsertDocument(sampleDocument())
	if err != nil {
		t.Fatalf("UpsertDocument() failed: %v", err)
	}

	if err := db.UpsertScores(docID, readability.Scores{SMOG: 5.0}); err != nil {
		t.Fatalf("first UpsertScores() failed: %v", err)
	}
	if err := db.UpsertScores(docID, readability.Scores{SMOG: 9.0}); err != nil {
		t.Fatalf("second UpsertScores() failed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM scores WHERE doc_id = ?", docID).Scan(&count); err != nil {
		t.Fatalf("count scores: %v", err)
	}
	if count != 1 {
		t.Fatalf("score rows = %d, want 1 after upsert", count)
	}

	stored, err := db.GetScores(docID)
	if err != nil {
		t.Fatalf("GetScores() failed: %v", err)
	}
	if stored.SMOG.Float64 != 9.0 {
		t.Errorf("smog = %v, want replaced value 9.0", stored.SMOG.Float64)
	}
}

func TestHistory(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for i, hash := range []string{"hash-one", "hash-two"} {
		rec := sampleDocument()
		rec.ContentHash = hash
		rec.Source = hash + ".txt"
		docID, err := db.UpsertDocument(rec)
		if err != nil {
			t.Fatalf("UpsertDocument(%d) failed: %v", i, err)
		}
		if err := db.UpsertScores(docID, readability.Scores{Rix: float64(i)}); err != nil {
			t.Fatalf("UpsertScores(%d) failed: %v", i, err)
		}
	}

	history, err := db.History(10)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("History() returned %d rows, want 2", len(history))
	}
	for _, row := range history {
		if row.Source == "" {
			t.Error("history row missing source")
		}
	}
}

func TestInsertRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.InsertRun(10, 8, 2, 4)
	if err != nil {
		t.Fatalf("InsertRun() failed: %v", err)
	}
	if runID == 0 {
		t.Error("InsertRun() returned 0 ID")
	}

	var successCount int
	if err := db.QueryRow("SELECT success_count FROM runs WHERE run_id = ?", runID).Scan(&successCount); err != nil {
		t.Fatalf("query run: %v", err)
	}
	if successCount != 8 {
		t.Errorf("success_count = %d, want 8", successCount)
	}
}
