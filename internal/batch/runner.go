package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"captioner/internal/logging"
)

// Job is one transcript to process.
type Job struct {
	Name   string // short label used in logs
	Source string // transcript path
}

// Outcome is what a job function reports on success.
type Outcome struct {
	Output   string
	Captions int
}

// Result pairs a job with its outcome or error.
type Result struct {
	Job           Job
	CorrelationID string
	Outcome       Outcome
	Err           error
	Elapsed       time.Duration
}

// Func processes a single job.
type Func func(ctx context.Context, job Job) (Outcome, error)

// Runner executes jobs with bounded concurrency.
type Runner struct {
	Workers int
	Logger  *slog.Logger
}

// Run executes fn for every job and returns results in input order.
func (r Runner) Run(ctx context.Context, jobs []Job, fn Func) []Result {
	results := make([]Result, len(jobs))
	if len(jobs) == 0 {
		return results
	}
	if _, ok := logging.RunIDFromContext(ctx); !ok {
		ctx = logging.WithRunID(ctx, uuid.NewString())
	}
	logger := logging.NewComponentLogger(r.Logger, "batch")

	workers := max(r.Workers, 1)
	workers = min(workers, len(jobs))

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = r.runOne(ctx, logger, jobs[i], fn)
			}
		}()
	}

	for i := range jobs {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	logging.WithContext(ctx, logger).Info("batch finished",
		logging.Int("jobs", len(jobs)),
		logging.Int("failed", Failed(results)),
		logging.Int("workers", workers),
	)
	return results
}

func (r Runner) runOne(ctx context.Context, logger *slog.Logger, job Job, fn Func) Result {
	result := Result{Job: job, CorrelationID: uuid.NewString()}
	jobCtx := logging.WithJob(ctx, job.Name, result.CorrelationID)
	jobLogger := logging.WithContext(jobCtx, logger)

	if err := ctx.Err(); err != nil {
		result.Err = err
		jobLogger.Debug("job skipped", logging.Error(err))
		return result
	}

	started := time.Now()
	result.Outcome, result.Err = fn(jobCtx, job)
	result.Elapsed = time.Since(started)

	if result.Err != nil {
		logging.WarnWithContext(jobLogger, "job failed", "batch_job_failed",
			logging.Error(result.Err),
			logging.String(logging.FieldErrorHint, "check the transcript file for invalid segments"),
			logging.String(logging.FieldImpact, "no output written for this transcript"),
		)
		return result
	}
	jobLogger.Info("job complete",
		logging.String("output", result.Outcome.Output),
		logging.Int("captions", result.Outcome.Captions),
		logging.Duration("elapsed", result.Elapsed),
	)
	return result
}

// Failed counts results carrying an error.
func Failed(results []Result) int {
	n := 0
	for _, res := range results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Err joins every job error, prefixed with the job name, or returns nil.
func Err(results []Result) error {
	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.Job.Name, res.Err))
		}
	}
	return errors.Join(errs...)
}
