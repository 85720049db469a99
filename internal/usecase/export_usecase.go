package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ExportInput selects the history window included in the export.
type ExportInput struct {
	Today string
	Days  int
}

// ExportOutput locates the written archive.
type ExportOutput struct {
	Key         string
	Size        int64
	GeneratedAt time.Time
}

// ExportUsecase snapshots a user's data to the archive store.
type ExportUsecase interface {
	Export(ctx context.Context, userID uuid.UUID, input ExportInput) (*ExportOutput, error)
}
