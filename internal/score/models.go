package score

import "github.com/dtnitsch/readscore/models"

// Job is one input (file path, URL, or "-" for stdin) to score.
type Job struct {
	Source string
}

// Result holds the outcome of a processed job.
type Result struct {
	Source     string
	Report     *models.Report
	Error      error
	ErrorType  string
	WordCounts map[string]int
}

// ResultSummary is the per-input block of the final output.
type ResultSummary struct {
	Source    string         `json:"source" yaml:"source"`
	Status    string         `json:"status" yaml:"status"`
	Error     string         `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorType string         `json:"error_type,omitempty" yaml:"error_type,omitempty"`
	Report    *models.Report `json:"report,omitempty" yaml:"report,omitempty"`
}

// FinalOutput is the structured output for the entire run.
type FinalOutput struct {
	Status  string          `json:"status" yaml:"status"`
	Results []ResultSummary `json:"results" yaml:"results"`
	Stats   Stats           `json:"stats" yaml:"stats"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalInputs      int      `json:"total_inputs" yaml:"total_inputs"`
	Successful       int      `json:"successful" yaml:"successful"`
	Failed           int      `json:"failed" yaml:"failed"`
	TotalTimeSeconds float64  `json:"total_time_seconds" yaml:"total_time_seconds"`
	TopKeywords      []string `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`
}

// BuildSummary converts a worker result to its output block.
func BuildSummary(r Result) ResultSummary {
	summary := ResultSummary{
		Source: r.Source,
		Status: "success",
		Report: r.Report,
	}
	if r.Error != nil {
		summary.Status = "error"
		summary.Error = r.Error.Error()
		summary.ErrorType = r.ErrorType
		summary.Report = nil
	}
	return summary
}
