package core

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

type SubmitterConfig struct {
	// WriteTimeout bounds each store write. Zero leaves writes unbounded.
	WriteTimeout time.Duration
}

type Submitter struct {
	writer JobWriter
	ids    *JobIDGenerator
	config SubmitterConfig
}

type BatchResult struct {
	Written int
	Invalid int
	Failed  int
}

func (r BatchResult) OK() bool {
	return r.Invalid == 0 && r.Failed == 0
}

func NewSubmitter(writer JobWriter, ids *JobIDGenerator, cfg SubmitterConfig) *Submitter {
	if ids == nil {
		ids = NewJobIDGenerator()
	}
	return &Submitter{
		writer: writer,
		ids:    ids,
		config: cfg,
	}
}

// Submit validates one label, assigns it an ID and writes it. The write is
// detached from ctx cancellation so a dropped caller does not abort a write
// already in flight.
func (s *Submitter) Submit(ctx context.Context, req LabelRequest) (*PrintJob, error) {
	if req.Body == "" {
		return nil, fmt.Errorf("%w: label body is required", ErrInvalidRequest)
	}

	params := ExtractParams(req)
	job := &PrintJob{
		ID:       s.ids.MakeJobID(params.Text),
		Text:     params.Text,
		Quantity: params.Quantity,
	}

	if err := s.write(ctx, job); err != nil {
		return job, err
	}
	return job, nil
}

// SubmitBatch issues every valid item concurrently and waits for all of
// them. Nil entries are items that could not be decoded. Invalid items
// never stop their siblings from being written.
func (s *Submitter) SubmitBatch(ctx context.Context, items []*LabelRequest) (BatchResult, error) {
	var (
		result  BatchResult
		g       errgroup.Group
		outcome = make([]error, len(items))
	)

	for i, item := range items {
		if item == nil || item.Body == "" {
			result.Invalid++
			continue
		}

		i, req := i, *item
		g.Go(func() error {
			_, err := s.Submit(ctx, req)
			outcome[i] = err
			return err
		})
	}

	firstErr := g.Wait()

	for _, err := range outcome {
		if err != nil {
			result.Failed++
		}
	}
	result.Written = len(items) - result.Invalid - result.Failed

	if firstErr != nil {
		return result, firstErr
	}
	if result.Invalid > 0 {
		return result, fmt.Errorf("%w: %d of %d batch items have no body", ErrInvalidRequest, result.Invalid, len(items))
	}
	return result, nil
}

func (s *Submitter) write(ctx context.Context, job *PrintJob) error {
	ctx = context.WithoutCancel(ctx)
	if s.config.WriteTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.WriteTimeout)
		defer cancel()
	}

	if err := s.writer.WriteJob(ctx, job); err != nil {
		return fmt.Errorf("%w: job %s: %w", ErrStore, job.ID, err)
	}
	return nil
}
