package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Documents table: one row per scored input, deduplicated by content hash
CREATE TABLE IF NOT EXISTS documents (
    doc_id INTEGER PRIMARY KEY AUTOINCREMENT,
    source TEXT NOT NULL,              -- file path, URL, or "stdin"
    content_hash TEXT NOT NULL UNIQUE, -- sha256 of the plain text
    title TEXT,
    language TEXT,                     -- ISO-639-1 detection result
    language_confidence REAL,
    n_sentences INTEGER NOT NULL DEFAULT 0,
    n_tokens INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_documents_source ON documents(source);
CREATE INDEX IF NOT EXISTS idx_documents_language ON documents(language);

-- Scores table: the eight readability metrics per document.
-- Non-finite results (Inf/NaN from degenerate inputs) are stored as NULL,
-- meaning "undefined for this document".
CREATE TABLE IF NOT EXISTS scores (
    score_id INTEGER PRIMARY KEY AUTOINCREMENT,
    doc_id INTEGER NOT NULL,
    flesch_reading_ease REAL,
    flesch_kincaid_grade REAL,
    smog REAL,
    gunning_fog REAL,
    automated_readability_index REAL,
    coleman_liau_index REAL,
    lix REAL,
    rix REAL,
    computed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (doc_id) REFERENCES documents(doc_id) ON DELETE CASCADE,
    UNIQUE(doc_id)
);

CREATE INDEX IF NOT EXISTS idx_scores_doc ON scores(doc_id);

-- Runs table: batch invocations with aggregate counts
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    input_count INTEGER NOT NULL,
    success_count INTEGER DEFAULT 0,
    failed_count INTEGER DEFAULT 0,
    workers INTEGER DEFAULT 1
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
`
