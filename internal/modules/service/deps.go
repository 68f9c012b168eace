package service

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/sitegenie/sitegenie/internal/infra/blob"
	"github.com/sitegenie/sitegenie/internal/infra/queue"
)

// ObjectStore is the part of the S3 client the services use.
type ObjectStore interface {
	UploadFormFile(ctx context.Context, keyPrefix string, fh *multipart.FileHeader) (*blob.UploadedMeta, error)
	UploadReader(ctx context.Context, key, contentType string, body io.Reader, size int64) (*blob.UploadedMeta, error)
	Download(ctx context.Context, key string) (io.ReadCloser, int64, error)
}

// JobDispatcher schedules background jobs.
type JobDispatcher interface {
	EnqueueCSVIngest(ctx context.Context, uploadID uuid.UUID) error
	EnqueueDeployment(ctx context.Context, logID uuid.UUID) error
}

// EventSink receives job lifecycle events.
type EventSink interface {
	Publish(ctx context.Context, ev queue.JobEvent)
}
