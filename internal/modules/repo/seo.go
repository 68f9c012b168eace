package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/sitegenie/sitegenie/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SEORepo interface {
	Upsert(ctx context.Context, m *model.SEOMetadata) error
	Get(ctx context.Context, pageID uuid.UUID) (*model.SEOMetadata, error)
}

type seoRepo struct{ db *gorm.DB }

func NewSEORepo(db *gorm.DB) SEORepo {
	return &seoRepo{db: db}
}

// seoUpsert keeps at most one row per page; the last write wins.
func seoUpsert() clause.OnConflict {
	return clause.OnConflict{
		Columns: []clause.Column{{Name: "page_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"meta_title", "meta_description", "focus_keyword", "secondary_keywords", "updated_at",
		}),
	}
}

func (r *seoRepo) Upsert(ctx context.Context, m *model.SEOMetadata) error {
	return r.db.WithContext(ctx).Clauses(seoUpsert()).Create(m).Error
}

func (r *seoRepo) Get(ctx context.Context, pageID uuid.UUID) (*model.SEOMetadata, error) {
	var m model.SEOMetadata
	return &m, r.db.WithContext(ctx).Where("page_id = ?", pageID).First(&m).Error
}
