package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	JobCompleted = "completed"
	JobFailed    = "failed"
)

// ExportJob records one PDF export and where its artifacts were written.
type ExportJob struct {
	ID        uuid.UUID              `json:"id"`
	UserID    string                 `json:"user_id"`
	Variant   string                 `json:"variant"`
	Status    string                 `json:"status"`
	Metadata  map[string]interface{} `json:"metadata"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}
