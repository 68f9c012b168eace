package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sitegenie/sitegenie/internal/modules/model"
	"gorm.io/gorm"
)

// DeploymentResult is what a successful build writes back to its log row.
type DeploymentResult struct {
	PagesTotal   int
	PagesBundled int
	ArtifactKey  string
	ArtifactSize int64
	CompletedAt  time.Time
	// PublishedURL is set for publish runs and is copied onto the project.
	PublishedURL string
}

type DeploymentRepo interface {
	Create(ctx context.Context, d *model.DeploymentLog) error
	Get(ctx context.Context, projectID uuid.UUID, logID uuid.UUID) (*model.DeploymentLog, error)
	GetByID(ctx context.Context, logID uuid.UUID) (*model.DeploymentLog, error)
	ListByProject(ctx context.Context, projectID uuid.UUID, limit int) ([]*model.DeploymentLog, error)
	Complete(ctx context.Context, d *model.DeploymentLog, res DeploymentResult) (bool, error)
	Fail(ctx context.Context, logID uuid.UUID, msg string, at time.Time) (bool, error)
}

type deploymentRepo struct{ db *gorm.DB }

func NewDeploymentRepo(db *gorm.DB) DeploymentRepo {
	return &deploymentRepo{db: db}
}

func (r *deploymentRepo) Create(ctx context.Context, d *model.DeploymentLog) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *deploymentRepo) Get(ctx context.Context, projectID uuid.UUID, logID uuid.UUID) (*model.DeploymentLog, error) {
	var d model.DeploymentLog
	return &d, r.db.WithContext(ctx).Where("id = ? AND project_id = ?", logID, projectID).First(&d).Error
}

func (r *deploymentRepo) GetByID(ctx context.Context, logID uuid.UUID) (*model.DeploymentLog, error) {
	var d model.DeploymentLog
	return &d, r.db.WithContext(ctx).Where("id = ?", logID).First(&d).Error
}

func (r *deploymentRepo) ListByProject(ctx context.Context, projectID uuid.UUID, limit int) ([]*model.DeploymentLog, error) {
	var logs []*model.DeploymentLog
	return logs, r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("started_at DESC, id DESC").
		Limit(limit).
		Find(&logs).Error
}

func (r *deploymentRepo) Complete(ctx context.Context, d *model.DeploymentLog, res DeploymentResult) (bool, error) {
	var ok bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		ok, err = transition(tx, &model.DeploymentLog{}, d.ID, "deployment_status", model.JobStatusCompleted, map[string]interface{}{
			"pages_total":   res.PagesTotal,
			"pages_bundled": res.PagesBundled,
			"artifact_key":  res.ArtifactKey,
			"artifact_size": res.ArtifactSize,
			"completed_at":  res.CompletedAt,
		})
		if err != nil || !ok || d.Kind != model.DeploymentKindPublish {
			return err
		}
		return tx.Model(&model.Project{}).
			Where("id = ?", d.ProjectID).
			Updates(map[string]interface{}{
				"status":        model.ProjectStatusPublished,
				"published_url": res.PublishedURL,
				"updated_at":    res.CompletedAt,
			}).Error
	})
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (r *deploymentRepo) Fail(ctx context.Context, logID uuid.UUID, msg string, at time.Time) (bool, error) {
	return transition(r.db.WithContext(ctx), &model.DeploymentLog{}, logID, "deployment_status", model.JobStatusFailed, map[string]interface{}{
		"error_message": msg,
		"completed_at":  at,
	})
}
