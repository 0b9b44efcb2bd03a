package score

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dtnitsch/readscore/models"
	"github.com/dtnitsch/readscore/pkg/analytics"
	"github.com/dtnitsch/readscore/pkg/caching"
	"github.com/dtnitsch/readscore/pkg/db"
	"github.com/dtnitsch/readscore/pkg/language"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// ScoreAction scores the given inputs sequentially and prints one report
// per input.
func ScoreAction(c *cli.Context) error {
	logger := newLogger(c)

	config, err := loadConfig(c)
	if err != nil {
		return err
	}

	inputs := c.Args().Slice()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	scorer, cleanup, err := buildScorer(c, config, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	results := make([]Result, 0, len(inputs))
	for _, input := range inputs {
		results = append(results, scorer.Process(Job{Source: input}))
	}

	return emit(config, results, nil, time.Duration(0))
}

// BatchAction scores many inputs on a worker pool and records the run.
func BatchAction(c *cli.Context) error {
	logger := newLogger(c)
	startTime := time.Now()

	config, err := loadConfig(c)
	if err != nil {
		return err
	}

	inputs := c.Args().Slice()
	if len(inputs) == 0 {
		return fmt.Errorf("no inputs provided; pass file paths or URLs")
	}

	workers := config.Workers
	if c.IsSet("workers") {
		workers = c.Int("workers")
	}

	scorer, cleanup, err := buildScorer(c, config, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	results, keywordCounts := run(logger, scorer, inputs, workers)

	if scorer.Database != nil {
		successful, failed := tally(results)
		if _, err := scorer.Database.InsertRun(len(inputs), successful, failed, workers); err != nil {
			logger.Warn("Failed to record run", "error", err)
		}
	}

	topKeywords := analytics.TopKeywords(keywordCounts, 25)
	return emit(config, results, topKeywords, time.Since(startTime))
}

// HistoryAction lists recently scored documents from the database.
func HistoryAction(c *cli.Context) error {
	logger := newLogger(c)

	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	database, err := openDatabase(c, config)
	if err != nil {
		return err
	}
	defer database.Close()

	history, err := database.History(c.Int("limit"))
	if err != nil {
		return err
	}
	logger.Info("Loaded score history", "rows", len(history))

	entries := make([]historyEntry, 0, len(history))
	for _, row := range history {
		entries = append(entries, newHistoryEntry(row))
	}

	outputData, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	fmt.Println(string(outputData))
	return nil
}

// historyEntry is one row of the history listing. All eight metrics are
// always present, null where the stored value was undefined.
type historyEntry struct {
	DocID                     int64    `json:"doc_id"`
	Source                    string   `json:"source"`
	Title                     string   `json:"title,omitempty"`
	Language                  string   `json:"language,omitempty"`
	NSentences                int      `json:"n_sentences"`
	NTokens                   int      `json:"n_tokens"`
	ComputedAt                string   `json:"computed_at"`
	FleschReadingEase         *float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade        *float64 `json:"flesch_kincaid_grade"`
	SMOG                      *float64 `json:"smog"`
	GunningFog                *float64 `json:"gunning_fog"`
	AutomatedReadabilityIndex *float64 `json:"automated_readability_index"`
	ColemanLiauIndex          *float64 `json:"coleman_liau_index"`
	Lix                       *float64 `json:"lix"`
	Rix                       *float64 `json:"rix"`
}

func newHistoryEntry(row db.HistoryRow) historyEntry {
	return historyEntry{
		DocID:                     row.DocID,
		Source:                    row.Source,
		Title:                     row.Title,
		Language:                  row.Language,
		NSentences:                row.NSentences,
		NTokens:                   row.NTokens,
		ComputedAt:                row.ComputedAt,
		FleschReadingEase:         nullable(row.Scores.FleschReadingEase),
		FleschKincaidGrade:        nullable(row.Scores.FleschKincaidGrade),
		SMOG:                      nullable(row.Scores.SMOG),
		GunningFog:                nullable(row.Scores.GunningFog),
		AutomatedReadabilityIndex: nullable(row.Scores.AutomatedReadabilityIndex),
		ColemanLiauIndex:          nullable(row.Scores.ColemanLiauIndex),
		Lix:                       nullable(row.Scores.Lix),
		Rix:                       nullable(row.Scores.Rix),
	}
}

func nullable(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

func loadConfig(c *cli.Context) (*models.Config, error) {
	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("format") {
		config.Format = c.String("format")
	}
	if config.Format != "json" && config.Format != "yaml" {
		return nil, fmt.Errorf("unknown output format %q (supported: json, yaml)", config.Format)
	}
	return config, nil
}

func openDatabase(c *cli.Context, config *models.Config) (*db.DB, error) {
	if path := databasePath(c.String("db"), config); path != "" {
		return db.OpenPath(path)
	}
	return db.Open()
}

// databasePath resolves the database location: the --db flag wins, then
// the config file's db_path, then empty for the default next to the
// binary.
func databasePath(flagValue string, config *models.Config) string {
	if flagValue != "" {
		return flagValue
	}
	return config.DBPath
}

// buildScorer wires the scorer from flags and config. The returned
// cleanup closes the database handle.
func buildScorer(c *cli.Context, config *models.Config, logger *slog.Logger) (*Scorer, func(), error) {
	scorer := NewScorer(logger)
	cleanup := func() {}

	langCheck := config.LangCheck
	if c.IsSet("lang-check") {
		langCheck = c.Bool("lang-check")
	}
	if langCheck {
		scorer.Detector = language.NewDetector()
	}

	if !c.Bool("no-cache") {
		maxAge, err := config.MaxAge()
		if err != nil {
			return nil, nil, err
		}
		cache, err := caching.NewCache(config.CacheDir, maxAge)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize cache: %w", err)
		}
		scorer.Cache = cache
	}

	if !c.Bool("no-db") {
		database, err := openDatabase(c, config)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		scorer.Database = database
		cleanup = func() { _ = database.Close() }
	}

	return scorer, cleanup, nil
}

func tally(results []Result) (successful, failed int) {
	for _, r := range results {
		if r.Error != nil {
			failed++
		} else {
			successful++
		}
	}
	return successful, failed
}

// emit renders the final output to stdout in the configured format.
func emit(config *models.Config, results []Result, topKeywords []string, elapsed time.Duration) error {
	successful, failed := tally(results)

	finalOutput := &FinalOutput{
		Status:  "success",
		Results: make([]ResultSummary, 0, len(results)),
		Stats: Stats{
			TotalInputs:      len(results),
			Successful:       successful,
			Failed:           failed,
			TotalTimeSeconds: elapsed.Seconds(),
			TopKeywords:      topKeywords,
		},
	}
	if failed > 0 {
		finalOutput.Status = "partial_failure"
		if successful == 0 {
			finalOutput.Status = "failure"
		}
	}
	for _, r := range results {
		finalOutput.Results = append(finalOutput.Results, BuildSummary(r))
	}

	var outputData []byte
	var err error
	if config.Format == "yaml" {
		outputData, err = yaml.Marshal(finalOutput)
	} else {
		outputData, err = json.MarshalIndent(finalOutput, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(outputData))

	if failed > 0 && successful == 0 {
		return cli.Exit("", 1)
	}
	return nil
}
