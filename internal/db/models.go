package db

import (
	"time"

	"github.com/orrn/labelhook/internal/core"
)

// PrintJob is a stored print_jobs row.
type PrintJob struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Qty       int       `json:"qty"`
	CreatedAt time.Time `json:"created_at"`
}

func (j *PrintJob) Job() *core.PrintJob {
	return &core.PrintJob{ID: j.ID, Text: j.Text, Quantity: j.Qty}
}
