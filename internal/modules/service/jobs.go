package service

import (
	"context"

	"github.com/google/uuid"
)

// JobHandlers routes worker tasks to the services that own them.
type JobHandlers struct {
	CSV    CSVService
	Export ExportService
}

func (h *JobHandlers) ProcessCSVUpload(ctx context.Context, uploadID uuid.UUID) error {
	return h.CSV.ProcessCSVUpload(ctx, uploadID)
}

func (h *JobHandlers) ProcessDeployment(ctx context.Context, logID uuid.UUID) error {
	return h.Export.ProcessDeployment(ctx, logID)
}

func (h *JobHandlers) AbandonCSVUpload(ctx context.Context, uploadID uuid.UUID, reason string) error {
	return h.CSV.AbandonCSVUpload(ctx, uploadID, reason)
}

func (h *JobHandlers) AbandonDeployment(ctx context.Context, logID uuid.UUID, reason string) error {
	return h.Export.AbandonDeployment(ctx, logID, reason)
}
