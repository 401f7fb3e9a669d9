package batch

import (
	"context"
	"sync"

	"github.com/povarna/generative-ai-agents/lab-agent/internal/gateway"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/models"
	"github.com/rs/zerolog"
)

type Processor struct {
	analyzer gateway.Analyzer
	workers  int
	logger   *zerolog.Logger
}

func NewProcessor(analyzer gateway.Analyzer, workers int, logger *zerolog.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		analyzer: analyzer,
		workers:  workers,
		logger:   logger,
	}
}

// Process fans records out to the worker pool. Results arrive in completion
// order; the channel closes once every record has been handled or ctx ends.
func (p *Processor) Process(ctx context.Context, records []InputRecord) <-chan models.JobResult {
	jobs := make(chan InputRecord)
	results := make(chan models.JobResult, p.workers)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for record := range jobs {
				result := p.handle(ctx, record)
				p.logger.Debug().
					Int("worker", worker).
					Str("id", result.ID).
					Bool("failed", result.Failed()).
					Dur("duration", result.Duration).
					Msg("Record processed")

				select {
				case results <- result:
				case <-ctx.Done():
					return
				}
			}
		}(i)
	}

	go func() {
		defer close(jobs)
		for _, record := range records {
			select {
			case jobs <- record:
			case <-ctx.Done():
				p.logger.Warn().Msg("Processing cancelled, skipping remaining records")
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

func (p *Processor) handle(ctx context.Context, record InputRecord) models.JobResult {
	if record.Error != nil {
		return models.JobResult{
			ID:      record.Job.ID,
			Variant: record.Job.Variant(),
			Error:   record.Error.Error(),
		}
	}
	return gateway.Run(ctx, p.analyzer, record.Job)
}
