package worker

import (
	"context"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/sitegenie/sitegenie/internal/config"
	"go.uber.org/zap"
)

// Handlers run the unit of work for each job type. Implementations own the
// status transition. A returned error asks for a retry; once retries are
// exhausted the matching Abandon method ends the job as failed.
type Handlers interface {
	ProcessCSVUpload(ctx context.Context, uploadID uuid.UUID) error
	ProcessDeployment(ctx context.Context, logID uuid.UUID) error
	AbandonCSVUpload(ctx context.Context, uploadID uuid.UUID, reason string) error
	AbandonDeployment(ctx context.Context, logID uuid.UUID, reason string) error
}

const abandonReason = "job could not be processed"

type jobFunc func(ctx context.Context, id uuid.UUID) error

// NewMux routes task types to h.
func NewMux(h Handlers, log *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCSVIngest, runner(TypeCSVIngest, h.ProcessCSVUpload, h.AbandonCSVUpload, lastAttempt, log))
	mux.HandleFunc(TypeSiteDeploy, runner(TypeSiteDeploy, h.ProcessDeployment, h.AbandonDeployment, lastAttempt, log))
	return mux
}

func runner(typename string, run jobFunc, abandon func(context.Context, uuid.UUID, string) error, isLast func(context.Context) bool, log *zap.Logger) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		id, err := parsePayload(t)
		if err != nil {
			log.Sugar().Errorw("invalid task payload", "type", typename, "err", err)
			return err
		}
		err = run(ctx, id)
		if err == nil || !isLast(ctx) {
			return err
		}
		log.Sugar().Errorw("job out of retries", "type", typename, "id", id, "err", err)
		if aerr := abandon(context.WithoutCancel(ctx), id, abandonReason); aerr != nil {
			log.Sugar().Errorw("abandon job", "type", typename, "id", id, "err", aerr)
		}
		return err
	}
}

// lastAttempt reports whether asynq will not run the task again after a failure.
// Outside a worker there is no retry budget.
func lastAttempt(ctx context.Context) bool {
	retried, ok := asynq.GetRetryCount(ctx)
	if !ok {
		return true
	}
	maxRetry, ok := asynq.GetMaxRetry(ctx)
	if !ok {
		return true
	}
	return retried >= maxRetry
}

func NewServer(cfg *config.Config, log *zap.Logger) *asynq.Server {
	concurrency := cfg.Queue.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return asynq.NewServer(RedisOpt(cfg), asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			"default": 1,
		},
		Logger: log.Sugar(),
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			log.Sugar().Errorw("task failed", "type", task.Type(), "err", err)
		}),
	})
}
