package db

import (
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/dtnitsch/readscore/pkg/readability"
)

// DocumentRecord is the stored metadata for one scored document.
type DocumentRecord struct {
	DocID              int64
	Source             string
	ContentHash        string
	Title              string
	Language           string
	LanguageConfidence float64
	NSentences         int
	NTokens            int
}

// HistoryRow is one documents+scores join row for the history listing.
type HistoryRow struct {
	DocID      int64
	Source     string
	Title      string
	Language   string
	NSentences int
	NTokens    int
	ComputedAt string
	Scores     StoredScores
}

// StoredScores mirrors readability.Scores with NULL-able columns: a Valid
// of false means the metric was non-finite (undefined) for the document.
type StoredScores struct {
	FleschReadingEase         sql.NullFloat64
	FleschKincaidGrade        sql.NullFloat64
	SMOG                      sql.NullFloat64
	GunningFog                sql.NullFloat64
	AutomatedReadabilityIndex sql.NullFloat64
	ColemanLiauIndex          sql.NullFloat64
	Lix                       sql.NullFloat64
	Rix                       sql.NullFloat64
}

// NewNullFinite wraps a float as NULL when it is NaN or infinite.
// SQLite has no representation for IEEE-754 specials, so NULL carries
// the "undefined for this document" meaning.
func NewNullFinite(f float64) sql.NullFloat64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}

// NewNullString wraps a string as NULL when empty.
func NewNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// UpsertDocument inserts a document or refreshes an existing row with
// the same content hash, returning the doc_id either way.
func (db *DB) UpsertDocument(rec DocumentRecord) (int64, error) {
	var existingID int64
	err := db.QueryRow("SELECT doc_id FROM documents WHERE content_hash = ?", rec.ContentHash).Scan(&existingID)
	if err == nil {
		_, err = db.Exec(`
			UPDATE documents
			SET source = ?, title = ?, language = ?, language_confidence = ?,
			    n_sentences = ?, n_tokens = ?, updated_at = CURRENT_TIMESTAMP
			WHERE doc_id = ?
		`, rec.Source, NewNullString(rec.Title), NewNullString(rec.Language),
			rec.LanguageConfidence, rec.NSentences, rec.NTokens, existingID)
		if err != nil {
			return 0, fmt.Errorf("failed to update document: %w", err)
		}
		return existingID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to check existing document: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO documents (source, content_hash, title, language, language_confidence, n_sentences, n_tokens)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.Source, rec.ContentHash, NewNullString(rec.Title), NewNullString(rec.Language),
		rec.LanguageConfidence, rec.NSentences, rec.NTokens)
	if err != nil {
		return 0, fmt.Errorf("failed to insert document: %w", err)
	}

	docID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get document ID: %w", err)
	}
	return docID, nil
}

// UpsertScores stores the readability scores for a document, replacing
// any previous row for the same doc_id.
func (db *DB) UpsertScores(docID int64, scores readability.Scores) error {
	_, err := db.Exec(`
		INSERT INTO scores (
			doc_id, flesch_reading_ease, flesch_kincaid_grade, smog, gunning_fog,
			automated_readability_index, coleman_liau_index, lix, rix
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(doc_id) DO UPDATE SET
			flesch_reading_ease = excluded.flesch_reading_ease,
			flesch_kincaid_grade = excluded.flesch_kincaid_grade,
			smog = excluded.smog,
			gunning_fog = excluded.gunning_fog,
			automated_readability_index = excluded.automated_readability_index,
			coleman_liau_index = excluded.coleman_liau_index,
			lix = excluded.lix,
			rix = excluded.rix,
			computed_at = CURRENT_TIMESTAMP
	`, docID,
		NewNullFinite(scores.FleschReadingEase),
		NewNullFinite(scores.FleschKincaidGrade),
		NewNullFinite(scores.SMOG),
		NewNullFinite(scores.GunningFog),
		NewNullFinite(scores.AutomatedReadabilityIndex),
		NewNullFinite(scores.ColemanLiauIndex),
		NewNullFinite(scores.Lix),
		NewNullFinite(scores.Rix))
	if err != nil {
		return fmt.Errorf("failed to upsert scores: %w", err)
	}
	return nil
}

// GetScores loads the stored scores for a document.
func (db *DB) GetScores(docID int64) (StoredScores, error) {
	var s StoredScores
	err := db.QueryRow(`
		SELECT flesch_reading_ease, flesch_kincaid_grade, smog, gunning_fog,
		       automated_readability_index, coleman_liau_index, lix, rix
		FROM scores WHERE doc_id = ?
	`, docID).Scan(
		&s.FleschReadingEase, &s.FleschKincaidGrade, &s.SMOG, &s.GunningFog,
		&s.AutomatedReadabilityIndex, &s.ColemanLiauIndex, &s.Lix, &s.Rix)
	if err != nil {
		return StoredScores{}, fmt.Errorf("failed to get scores for doc %d: %w", docID, err)
	}
	return s, nil
}

// History returns the most recent scored documents, newest first.
func (db *DB) History(limit int) ([]HistoryRow, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT d.doc_id, d.source, COALESCE(d.title, ''), COALESCE(d.language, ''),
		       d.n_sentences, d.n_tokens, s.computed_at,
		       s.flesch_reading_ease, s.flesch_kincaid_grade, s.smog, s.gunning_fog,
		       s.automated_readability_index, s.coleman_liau_index, s.lix, s.rix
		FROM documents d
		JOIN scores s ON s.doc_id = d.doc_id
		ORDER BY s.computed_at DESC, d.doc_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var history []HistoryRow
	for rows.Next() {
		var row HistoryRow
		err := rows.Scan(
			&row.DocID, &row.Source, &row.Title, &row.Language,
			&row.NSentences, &row.NTokens, &row.ComputedAt,
			&row.Scores.FleschReadingEase, &row.Scores.FleschKincaidGrade,
			&row.Scores.SMOG, &row.Scores.GunningFog,
			&row.Scores.AutomatedReadabilityIndex, &row.Scores.ColemanLiauIndex,
			&row.Scores.Lix, &row.Scores.Rix)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		history = append(history, row)
	}
	return history, rows.Err()
}

// InsertRun records a batch invocation.
func (db *DB) InsertRun(inputCount, successCount, failedCount, workers int) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (input_count, success_count, failed_count, workers)
		VALUES (?, ?, ?, ?)
	`, inputCount, successCount, failedCount, workers)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}
