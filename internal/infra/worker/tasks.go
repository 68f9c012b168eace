package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/sitegenie/sitegenie/internal/config"
)

const (
	TypeCSVIngest  = "csv:ingest"
	TypeSiteDeploy = "site:deploy"
)

type JobPayload struct {
	ID uuid.UUID `json:"id"`
}

func newJobTask(typename string, id uuid.UUID) (*asynq.Task, error) {
	payload, err := sonic.Marshal(JobPayload{ID: id})
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return asynq.NewTask(typename, payload), nil
}

func parsePayload(t *asynq.Task) (uuid.UUID, error) {
	var p JobPayload
	if err := sonic.Unmarshal(t.Payload(), &p); err != nil {
		return uuid.Nil, fmt.Errorf("unmarshal %s payload: %v: %w", t.Type(), err, asynq.SkipRetry)
	}
	if p.ID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%s payload has no id: %w", t.Type(), asynq.SkipRetry)
	}
	return p.ID, nil
}

// Client enqueues background jobs. Status transitions are guarded, so a retried
// job never writes a second terminal status.
type Client struct {
	c        *asynq.Client
	delay    time.Duration
	timeout  time.Duration
	maxRetry int
}

func RedisOpt(cfg *config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		c:        asynq.NewClient(RedisOpt(cfg)),
		delay:    cfg.Jobs.ProcessDelay,
		timeout:  10 * time.Minute,
		maxRetry: cfg.Jobs.MaxRetry,
	}
}

func (c *Client) options() []asynq.Option {
	opts := []asynq.Option{
		asynq.MaxRetry(max(c.maxRetry, 0)),
		asynq.Timeout(c.timeout),
		asynq.Retention(24 * time.Hour),
	}
	if c.delay > 0 {
		opts = append(opts, asynq.ProcessIn(c.delay))
	}
	return opts
}

func (c *Client) enqueue(ctx context.Context, typename string, id uuid.UUID) error {
	task, err := newJobTask(typename, id)
	if err != nil {
		return err
	}
	if _, err := c.c.EnqueueContext(ctx, task, c.options()...); err != nil {
		return fmt.Errorf("enqueue %s: %w", typename, err)
	}
	return nil
}

func (c *Client) EnqueueCSVIngest(ctx context.Context, uploadID uuid.UUID) error {
	return c.enqueue(ctx, TypeCSVIngest, uploadID)
}

func (c *Client) EnqueueDeployment(ctx context.Context, logID uuid.UUID) error {
	return c.enqueue(ctx, TypeSiteDeploy, logID)
}

func (c *Client) Close() error {
	return c.c.Close()
}
