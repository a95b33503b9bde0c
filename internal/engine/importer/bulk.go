package importer

import (
	"context"
	"fmt"

	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/core/ports"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// BulkOptions tunes one bulk run.
type BulkOptions struct {
	// Workers is the pool size. Values below one mean domain.DefaultWorkers.
	Workers int
	// Rate caps job starts per second. Zero disables pacing.
	Rate float64
}

// BulkOptionsFrom reads the pool settings from the library config.
func BulkOptionsFrom(cfg *domain.LibraryConfig) BulkOptions {
	if cfg == nil {
		return BulkOptions{Workers: domain.DefaultWorkers}
	}
	return BulkOptions{Workers: cfg.Import.Workers, Rate: cfg.Import.Rate}
}

// BulkImporter drains a queue of locators with a fixed pool of workers, each
// running the shared Pipeline.
type BulkImporter struct {
	pipeline *Pipeline
	tracer   ports.Tracer
	logger   ports.Logger
}

// NewBulkImporter creates a BulkImporter over pipeline.
func NewBulkImporter(pipeline *Pipeline, tracer ports.Tracer, logger ports.Logger) *BulkImporter {
	return &BulkImporter{
		pipeline: pipeline,
		tracer:   tracer,
		logger:   logger,
	}
}

// Run imports every locator exactly once and blocks until all jobs finished.
// The repository must already be bootstrapped. Jobs are reported in input
// order; the order in which they run is unspecified. Failed jobs do not stop
// the others.
func (b *BulkImporter) Run(ctx context.Context, lib *domain.Library, locators []string, opts BulkOptions) domain.BulkResult {
	result := domain.BulkResult{Jobs: make([]domain.ImportJob, len(locators))}
	if len(locators) == 0 {
		return result
	}

	workers := opts.Workers
	if workers < 1 {
		workers = domain.DefaultWorkers
	}
	workers = min(workers, len(locators))

	var limiter *rate.Limiter
	if opts.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.Rate), 1)
	}

	queue := make(chan int, len(locators))
	for i := range locators {
		queue <- i
	}
	close(queue)

	b.tracer.EmitPlan(ctx, locators)
	b.logger.Debug(fmt.Sprintf("bulk import: %d locator(s), %d worker(s)", len(locators), workers))

	var g errgroup.Group
	for range workers {
		g.Go(func() error {
			for i := range queue {
				if limiter != nil {
					if err := limiter.Wait(ctx); err != nil {
						job := domain.NewImportJob(locators[i])
						job.Err = domain.Fail(domain.ErrSourceUnreachable, err, "not started", "locator", locators[i])
						result.Jobs[i] = job
						continue
					}
				}
				result.Jobs[i], _ = b.pipeline.Import(ctx, lib, locators[i])
			}
			return nil
		})
	}
	_ = g.Wait()

	for i := range result.Jobs {
		if result.Jobs[i].Succeeded() {
			result.Succeeded++
		} else {
			result.Failed++
		}
	}
	return result
}
