package score

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dtnitsch/readscore/internal/common"
	"github.com/dtnitsch/readscore/models"
	"github.com/dtnitsch/readscore/pkg/analytics"
	"github.com/dtnitsch/readscore/pkg/caching"
	"github.com/dtnitsch/readscore/pkg/db"
	"github.com/dtnitsch/readscore/pkg/extract"
	"github.com/dtnitsch/readscore/pkg/fetcher"
	"github.com/dtnitsch/readscore/pkg/language"
	"github.com/dtnitsch/readscore/pkg/pipeline"
	"gopkg.in/yaml.v3"
)

// cacheEntry is the cached payload for one content hash: the report
// plus the word counts batch aggregation needs, so a cache hit behaves
// like a fresh computation downstream.
type cacheEntry struct {
	Report     *models.Report `yaml:"report"`
	WordCounts map[string]int `yaml:"word_counts"`
}

func decodeCacheEntry(data []byte) (cacheEntry, error) {
	var entry cacheEntry
	if err := yaml.Unmarshal(data, &entry); err != nil {
		return cacheEntry{}, err
	}
	if entry.Report == nil {
		return cacheEntry{}, fmt.Errorf("cache entry has no report")
	}
	return entry, nil
}

// Scorer processes one input end to end: acquire text, compute
// statistics and readability scores, persist, and report.
type Scorer struct {
	Logger   *slog.Logger
	Pipeline *pipeline.Pipeline
	Fetcher  *fetcher.Fetcher
	Detector *language.Detector // nil disables the language gate
	Cache    *caching.Cache     // nil disables report caching
	Database *db.DB             // nil disables persistence
	Stdin    io.Reader          // defaults to os.Stdin
}

// NewScorer builds a scorer with the standard pipeline.
func NewScorer(logger *slog.Logger) *Scorer {
	return &Scorer{
		Logger:   logger,
		Pipeline: pipeline.New(),
		Fetcher:  fetcher.NewFetcher(),
		Stdin:    os.Stdin,
	}
}

// Process scores a single job. Failures are attached to the result with
// an error type, never panicked or logged-and-dropped.
func (s *Scorer) Process(job Job) Result {
	result := Result{Source: job.Source}

	body, contentType, err := s.load(job.Source)
	if err != nil {
		result.Error = err
		result.ErrorType = errorType(job.Source)
		return result
	}

	title, text, err := s.plainText(job.Source, contentType, body)
	if err != nil {
		result.Error = fmt.Errorf("failed to extract text: %w", err)
		result.ErrorType = "extract_error"
		return result
	}

	contentHash := common.ContentHash([]byte(text))

	if s.Cache != nil {
		if data, ok := s.Cache.Get(contentHash); ok {
			entry, err := decodeCacheEntry(data)
			if err == nil {
				entry.Report.Source = job.Source
				entry.Report.CacheHit = true
				s.persist(job.Source, entry.Report)
				result.Report = entry.Report
				result.WordCounts = entry.WordCounts
				s.Logger.Info("Report served from cache", "source", job.Source, "content_hash", contentHash)
				return result
			}
			s.Logger.Warn("Failed to decode cached report, recomputing", "source", job.Source, "error", err)
		}
	}

	doc := s.Pipeline.NewDocument(text)
	stats, err := doc.Statistics()
	if err != nil {
		result.Error = err
		result.ErrorType = "stats_error"
		return result
	}
	scores, err := doc.Readability()
	if err != nil {
		result.Error = err
		result.ErrorType = "score_error"
		return result
	}

	report := &models.Report{
		Source:      job.Source,
		Title:       title,
		ContentHash: contentHash,
		Statistics:  models.NewStatisticsSummary(stats),
		Scores:      models.NewScoreReport(scores),
	}

	if s.Detector != nil {
		report.Language = s.Detector.Detect(text)
		if !report.Language.English {
			s.Logger.Warn("Document does not look English; scores are tuned for English",
				"source", job.Source, "language", report.Language.Code,
				"confidence", report.Language.Confidence)
		}
	}

	s.persist(job.Source, report)

	result.Report = report
	result.WordCounts = analytics.WordFrequency(stats.FilteredTokens)

	if s.Cache != nil {
		entry := cacheEntry{Report: report, WordCounts: result.WordCounts}
		if data, err := yaml.Marshal(entry); err != nil {
			s.Logger.Warn("Failed to encode report for cache", "source", job.Source, "error", err)
		} else if err := s.Cache.Set(contentHash, data); err != nil {
			s.Logger.Warn("Failed to cache report", "source", job.Source, "error", err)
		}
	}

	return result
}

// persist stores the document and its scores. Failures are logged, not
// fatal; scoring output does not depend on the database. Cache-served
// reports go through here too, so a rebuilt database still picks up
// documents whose cache entries outlived it.
func (s *Scorer) persist(source string, report *models.Report) {
	if s.Database == nil {
		return
	}
	docID, err := s.Database.UpsertDocument(db.DocumentRecord{
		Source:             source,
		ContentHash:        report.ContentHash,
		Title:              report.Title,
		Language:           report.Language.Code,
		LanguageConfidence: report.Language.Confidence,
		NSentences:         report.Statistics.NSentences,
		NTokens:            report.Statistics.NTokens,
	})
	if err != nil {
		s.Logger.Warn("Failed to persist document", "source", source, "error", err)
		return
	}
	if err := s.Database.UpsertScores(docID, report.Scores.Scores()); err != nil {
		s.Logger.Warn("Failed to persist scores", "source", source, "error", err)
	}
}

// load acquires raw bytes for an input: stdin, URL, or file path.
func (s *Scorer) load(source string) ([]byte, string, error) {
	switch {
	case source == "-":
		body, err := io.ReadAll(s.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return body, "", nil
	case common.IsURL(source):
		return s.Fetcher.Get(source)
	default:
		body, err := os.ReadFile(source)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read file: %w", err)
		}
		return body, "", nil
	}
}

// plainText routes HTML through article extraction, everything else is
// scored as-is.
func (s *Scorer) plainText(source, contentType string, body []byte) (title, text string, err error) {
	if !common.LooksLikeHTML(contentType, body) {
		return "", string(body), nil
	}

	baseURL := ""
	if common.IsURL(source) {
		baseURL = source
	}
	extracted, err := extract.FromHTML(baseURL, string(body))
	if err != nil {
		return "", "", err
	}
	return extracted.Title, extracted.Text, nil
}

func errorType(source string) string {
	if common.IsURL(source) {
		return "fetch_error"
	}
	return "read_error"
}
