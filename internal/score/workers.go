package score

import (
	"log/slog"
	"sync"

	"github.com/dtnitsch/readscore/pkg/analytics"
)

// run fans the inputs across a worker pool and collects results plus the
// aggregate keyword counts. Each document is independent, so ordering of
// results is not guaranteed.
func run(logger *slog.Logger, scorer *Scorer, inputs []string, workerCount int) ([]Result, map[string]int) {
	if workerCount < 1 {
		workerCount = 1
	}

	logger.Info("Starting concurrent scoring phase", "input_count", len(inputs), "workers", workerCount)
	var wg sync.WaitGroup
	jobs := make(chan Job, len(inputs))
	results := make(chan Result, len(inputs))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(w, logger, scorer, &wg, jobs, results)
	}

	for _, input := range inputs {
		jobs <- Job{Source: input}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All scoring workers finished")

	allResults := make([]Result, 0, len(inputs))
	perDocumentCounts := []map[string]int{}
	for result := range results {
		allResults = append(allResults, result)
		if result.WordCounts != nil {
			perDocumentCounts = append(perDocumentCounts, result.WordCounts)
		}
	}

	return allResults, analytics.Merge(perDocumentCounts)
}

func worker(id int, logger *slog.Logger, scorer *Scorer, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		logger.Info("Worker started job", "worker_id", id, "source", job.Source)
		result := scorer.Process(job)
		if result.Error != nil {
			logger.Error("Worker job failed", "worker_id", id, "source", job.Source,
				"error_type", result.ErrorType, "error", result.Error)
		} else {
			logger.Info("Worker finished job", "worker_id", id, "source", job.Source)
		}
		results <- result
	}
}
