package convert

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job is one conversion in a batch. Options apply after the batch-wide ones.
type Job struct {
	Request Request
	Options []Option
}

// Outcome pairs a job's request with its result or error.
type Outcome struct {
	Request Request
	Result  *Result
	Err     error
}

// RunBatch converts jobs with at most limit running at once (limit <= 0 means
// no limit). A failed job does not stop the others; outcomes keep job order.
// Jobs share one OutputClaims unless shared supplies another, so two jobs
// resolving to the same output path cannot both write it: whichever reaches
// the write stage second fails with failure.ErrOutputWrite.
// Identifier sources are called from one goroutine per job, so a job that
// needs a deterministic source must bring its own through Job.Options.
func RunBatch(ctx context.Context, jobs []Job, limit int, shared ...Option) []Outcome {
	shared = append([]Option{WithOutputClaims(NewOutputClaims())}, shared...)
	outcomes := make([]Outcome, len(jobs))
	var eg errgroup.Group
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, job := range jobs {
		eg.Go(func() error {
			opts := make([]Option, 0, len(shared)+len(job.Options))
			opts = append(opts, shared...)
			opts = append(opts, job.Options...)
			res, err := Run(ctx, job.Request, opts...)
			outcomes[i] = Outcome{Request: job.Request, Result: res, Err: err}
			return nil
		})
	}
	_ = eg.Wait()
	return outcomes
}

// Failed counts outcomes with an error.
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
