package core

import (
	"context"
	"errors"
)

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidRequest = errors.New("invalid request")
	ErrStore          = errors.New("store unavailable")
)

// PrintJob is the record a printer agent picks up from print_jobs/{ID}.
type PrintJob struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Quantity int    `json:"qty"`
}

func (j *PrintJob) Validate() error {
	if j.ID == "" {
		return errors.New("job id is required")
	}
	if j.Text == "" {
		return errors.New("job text is required")
	}
	if j.Quantity < 1 {
		return errors.New("job quantity must be at least 1")
	}
	return nil
}

// JobWriter stores a job under its ID, replacing any record already there.
type JobWriter interface {
	WriteJob(ctx context.Context, job *PrintJob) error
}
