package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sitegenie/sitegenie/internal/modules/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *model.Project) error
	Get(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) (*model.Project, error)
	GetByID(ctx context.Context, projectID uuid.UUID) (*model.Project, error)
	Update(ctx context.Context, p *model.Project) error
	UpdateDesign(ctx context.Context, projectID uuid.UUID, design datatypes.JSONMap) error
	Touch(ctx context.Context, projectID uuid.UUID, at time.Time) error
	Delete(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) error
	ListWithCursor(ctx context.Context, userID uuid.UUID, afterCreatedAt time.Time, afterID uuid.UUID, limit int, timeDesc bool) ([]*model.Project, error)
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *projectRepo) Get(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) (*model.Project, error) {
	var p model.Project
	return &p, r.db.WithContext(ctx).Where("id = ? AND user_id = ?", projectID, userID).First(&p).Error
}

func (r *projectRepo) GetByID(ctx context.Context, projectID uuid.UUID) (*model.Project, error) {
	var p model.Project
	return &p, r.db.WithContext(ctx).Where("id = ?", projectID).First(&p).Error
}

// Update writes the editable columns of p.
func (r *projectRepo) Update(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Model(p).
		Select("name", "description", "status", "default_language", "updated_at").
		Updates(p).Error
}

func (r *projectRepo) UpdateDesign(ctx context.Context, projectID uuid.UUID, design datatypes.JSONMap) error {
	return r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", projectID).
		Updates(map[string]interface{}{"design": design, "updated_at": time.Now().UTC()}).Error
}

func (r *projectRepo) Touch(ctx context.Context, projectID uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", projectID).
		UpdateColumn("updated_at", at).Error
}

func (r *projectRepo) Delete(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", projectID, userID).Delete(&model.Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *projectRepo) ListWithCursor(ctx context.Context, userID uuid.UUID, afterCreatedAt time.Time, afterID uuid.UUID, limit int, timeDesc bool) ([]*model.Project, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if !afterCreatedAt.IsZero() && afterID != uuid.Nil {
		comparisonOp := ">"
		if timeDesc {
			comparisonOp = "<"
		}
		q = q.Where(
			"(created_at "+comparisonOp+" ?) OR (created_at = ? AND id "+comparisonOp+" ?)",
			afterCreatedAt, afterCreatedAt, afterID,
		)
	}

	orderBy := "created_at ASC, id ASC"
	if timeDesc {
		orderBy = "created_at DESC, id DESC"
	}

	var projects []*model.Project
	if err := q.Order(orderBy).Limit(limit).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}
