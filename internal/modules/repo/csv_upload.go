package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sitegenie/sitegenie/internal/modules/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ImportResult is what a finished ingestion run writes back to its upload row.
type ImportResult struct {
	Status       model.JobStatus
	RowsTotal    int
	RowsImported int
	RowsFailed   int
	RowErrors    []model.RowError
	ErrorMessage string
	CompletedAt  time.Time
}

func (r ImportResult) fields() map[string]interface{} {
	rowErrs := r.RowErrors
	if rowErrs == nil {
		rowErrs = []model.RowError{}
	}
	return map[string]interface{}{
		"rows_total":    r.RowsTotal,
		"rows_imported": r.RowsImported,
		"rows_failed":   r.RowsFailed,
		"row_errors":    datatypes.JSONSlice[model.RowError](rowErrs),
		"error_message": r.ErrorMessage,
		"completed_at":  r.CompletedAt,
	}
}

type CSVUploadRepo interface {
	Create(ctx context.Context, u *model.CSVUpload) error
	Get(ctx context.Context, projectID uuid.UUID, uploadID uuid.UUID) (*model.CSVUpload, error)
	GetByID(ctx context.Context, uploadID uuid.UUID) (*model.CSVUpload, error)
	ListByProject(ctx context.Context, projectID uuid.UUID, limit int) ([]*model.CSVUpload, error)
	// Finish records the result without importing anything.
	Finish(ctx context.Context, uploadID uuid.UUID, res ImportResult) (bool, error)
	// Import inserts pages and SEO rows and finishes the upload in one
	// transaction. Nothing is written when the upload is no longer active.
	Import(ctx context.Context, uploadID uuid.UUID, pages []*model.Page, seo []*model.SEOMetadata, res ImportResult) (bool, error)
}

type csvUploadRepo struct{ db *gorm.DB }

func NewCSVUploadRepo(db *gorm.DB) CSVUploadRepo {
	return &csvUploadRepo{db: db}
}

func (r *csvUploadRepo) Create(ctx context.Context, u *model.CSVUpload) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *csvUploadRepo) Get(ctx context.Context, projectID uuid.UUID, uploadID uuid.UUID) (*model.CSVUpload, error) {
	var u model.CSVUpload
	return &u, r.db.WithContext(ctx).Where("id = ? AND project_id = ?", uploadID, projectID).First(&u).Error
}

func (r *csvUploadRepo) GetByID(ctx context.Context, uploadID uuid.UUID) (*model.CSVUpload, error) {
	var u model.CSVUpload
	return &u, r.db.WithContext(ctx).Where("id = ?", uploadID).First(&u).Error
}

func (r *csvUploadRepo) ListByProject(ctx context.Context, projectID uuid.UUID, limit int) ([]*model.CSVUpload, error) {
	var uploads []*model.CSVUpload
	return uploads, r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("upload_date DESC, id DESC").
		Limit(limit).
		Find(&uploads).Error
}

func (r *csvUploadRepo) Finish(ctx context.Context, uploadID uuid.UUID, res ImportResult) (bool, error) {
	return transition(r.db.WithContext(ctx), &model.CSVUpload{}, uploadID, "status", res.Status, res.fields())
}

func (r *csvUploadRepo) Import(ctx context.Context, uploadID uuid.UUID, pages []*model.Page, seo []*model.SEOMetadata, res ImportResult) (bool, error) {
	var ok bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		ok, err = transition(tx, &model.CSVUpload{}, uploadID, "status", res.Status, res.fields())
		if err != nil || !ok {
			return err
		}
		return insertPages(tx, pages, seo)
	})
	if err != nil {
		return false, err
	}
	return ok, nil
}
