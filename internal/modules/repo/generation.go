package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sitegenie/sitegenie/internal/modules/model"
	"gorm.io/gorm"
)

type GenerationRepo interface {
	Create(ctx context.Context, g *model.AIContentGeneration) error
	Get(ctx context.Context, projectID uuid.UUID, generationID uuid.UUID) (*model.AIContentGeneration, error)
	// Complete stores content on the page and completes the generation in
	// one transaction.
	Complete(ctx context.Context, g *model.AIContentGeneration, content string) (bool, error)
	Fail(ctx context.Context, generationID uuid.UUID, msg string) (bool, error)
}

type generationRepo struct{ db *gorm.DB }

func NewGenerationRepo(db *gorm.DB) GenerationRepo {
	return &generationRepo{db: db}
}

func (r *generationRepo) Create(ctx context.Context, g *model.AIContentGeneration) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *generationRepo) Get(ctx context.Context, projectID uuid.UUID, generationID uuid.UUID) (*model.AIContentGeneration, error) {
	var g model.AIContentGeneration
	return &g, r.db.WithContext(ctx).Where("id = ? AND project_id = ?", generationID, projectID).First(&g).Error
}

func (r *generationRepo) Complete(ctx context.Context, g *model.AIContentGeneration, content string) (bool, error) {
	var ok bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		var err error
		ok, err = transition(tx, &model.AIContentGeneration{}, g.ID, "status", model.JobStatusCompleted, map[string]interface{}{
			"generated_content": content,
			"updated_at":        now,
		})
		if err != nil || !ok {
			return err
		}
		return tx.Model(&model.Page{}).
			Where("id = ? AND project_id = ?", g.PageID, g.ProjectID).
			Updates(map[string]interface{}{"content": content, "updated_at": now}).Error
	})
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (r *generationRepo) Fail(ctx context.Context, generationID uuid.UUID, msg string) (bool, error) {
	return transition(r.db.WithContext(ctx), &model.AIContentGeneration{}, generationID, "status", model.JobStatusFailed, map[string]interface{}{
		"error_message": msg,
		"updated_at":    time.Now().UTC(),
	})
}
