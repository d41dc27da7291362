package ranking

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-ranker/internal/types"
)

// defaultBatchConcurrency is used when ScoreBatch is given a non-positive limit
const defaultBatchConcurrency = 4

// BatchRequest is one independent ScoreJobs call
type BatchRequest struct {
	ID        string
	Candidate *types.ScoreCandidate
	Jobs      []types.Job
	MinScore  int
}

// BatchResult holds the outcome of one BatchRequest.
// Error is set instead of Jobs when the request itself was invalid.
type BatchResult struct {
	ID    string            `json:"id"`
	Jobs  []types.ScoredJob `json:"jobs"`
	Error string            `json:"error,omitempty"`
}

// ScoreBatch runs independent ScoreJobs calls concurrently, at most concurrency
// at a time. Each request gets its own model. Results are returned in request
// order; an invalid request is reported in its result without failing the batch.
// Cancelling ctx stops scheduling further requests and returns ctx.Err().
func (e *Engine) ScoreBatch(ctx context.Context, reqs []BatchRequest, concurrency int) ([]BatchResult, error) {
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}

	results := make([]BatchResult, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := range reqs {
		req := reqs[i]
		id := req.ID
		if id == "" {
			id = uuid.NewString()
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			scored, err := e.ScoreJobs(req.Candidate, req.Jobs, req.MinScore)
			if err != nil {
				e.logger.Debug("batch request rejected", zap.String("request_id", id), zap.Error(err))
				results[i] = BatchResult{ID: id, Jobs: []types.ScoredJob{}, Error: err.Error()}
				return nil
			}

			results[i] = BatchResult{ID: id, Jobs: scored}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
