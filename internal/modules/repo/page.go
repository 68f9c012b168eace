package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sitegenie/sitegenie/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const importBatchSize = 100

type PageRepo interface {
	Create(ctx context.Context, p *model.Page) error
	Get(ctx context.Context, projectID uuid.UUID, pageID uuid.UUID) (*model.Page, error)
	Update(ctx context.Context, p *model.Page) error
	Delete(ctx context.Context, projectID uuid.UUID, pageID uuid.UUID) error
	ListByProject(ctx context.Context, projectID uuid.UUID, withSEO bool) ([]*model.Page, error)
	SlugExists(ctx context.Context, projectID uuid.UUID, slug string, exceptID uuid.UUID) (bool, error)
	SlugIndex(ctx context.Context, projectID uuid.UUID) (map[string]uuid.UUID, error)
}

type pageRepo struct{ db *gorm.DB }

func NewPageRepo(db *gorm.DB) PageRepo {
	return &pageRepo{db: db}
}

func (r *pageRepo) Create(ctx context.Context, p *model.Page) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *pageRepo) Get(ctx context.Context, projectID uuid.UUID, pageID uuid.UUID) (*model.Page, error) {
	var p model.Page
	return &p, r.db.WithContext(ctx).
		Preload("SEO").
		Where("id = ? AND project_id = ?", pageID, projectID).
		First(&p).Error
}

func (r *pageRepo) Update(ctx context.Context, p *model.Page) error {
	return r.db.WithContext(ctx).Model(p).
		Select("title", "url_slug", "content", "is_pillar_page", "parent_page_id", "updated_at").
		Updates(p).Error
}

func (r *pageRepo) Delete(ctx context.Context, projectID uuid.UUID, pageID uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ? AND project_id = ?", pageID, projectID).Delete(&model.Page{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *pageRepo) ListByProject(ctx context.Context, projectID uuid.UUID, withSEO bool) ([]*model.Page, error) {
	q := r.db.WithContext(ctx).Where("project_id = ?", projectID)
	if withSEO {
		q = q.Preload("SEO")
	}
	var pages []*model.Page
	if err := q.Order("created_at ASC, id ASC").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *pageRepo) SlugExists(ctx context.Context, projectID uuid.UUID, slug string, exceptID uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).Model(&model.Page{}).Where("project_id = ? AND url_slug = ?", projectID, slug)
	if exceptID != uuid.Nil {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// SlugIndex maps every slug of the project to its page id.
func (r *pageRepo) SlugIndex(ctx context.Context, projectID uuid.UUID) (map[string]uuid.UUID, error) {
	var rows []struct {
		ID      uuid.UUID
		URLSlug string
	}
	err := r.db.WithContext(ctx).Model(&model.Page{}).
		Select("id", "url_slug").
		Where("project_id = ?", projectID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]uuid.UUID, len(rows))
	for _, row := range rows {
		out[row.URLSlug] = row.ID
	}
	return out, nil
}

// insertPages writes pages and their SEO rows inside tx. Parents must precede
// children in pages.
func insertPages(tx *gorm.DB, pages []*model.Page, seo []*model.SEOMetadata) error {
	if len(pages) > 0 {
		if err := tx.Omit(clause.Associations).CreateInBatches(pages, importBatchSize).Error; err != nil {
			return err
		}
	}
	if len(seo) > 0 {
		now := time.Now().UTC()
		for _, m := range seo {
			m.UpdatedAt = now
		}
		if err := tx.Clauses(seoUpsert()).CreateInBatches(seo, importBatchSize).Error; err != nil {
			return err
		}
	}
	return nil
}
