package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sitegenie/sitegenie/internal/modules/model"
	"github.com/sitegenie/sitegenie/internal/modules/repo"
	"github.com/sitegenie/sitegenie/internal/pkg/apperr"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SEOService interface {
	Upsert(ctx context.Context, in UpsertSEOInput) (*model.SEOMetadata, error)
	Get(ctx context.Context, projectID uuid.UUID, pageID uuid.UUID) (*model.SEOMetadata, error)
}

type seoService struct {
	pages repo.PageRepo
	r     repo.SEORepo
}

func NewSEOService(pages repo.PageRepo, r repo.SEORepo) SEOService {
	return &seoService{pages: pages, r: r}
}

type UpsertSEOInput struct {
	ProjectID         uuid.UUID
	PageID            uuid.UUID
	MetaTitle         string
	MetaDescription   string
	FocusKeyword      string
	SecondaryKeywords []string
}

func (s *seoService) ensurePage(ctx context.Context, projectID, pageID uuid.UUID) error {
	if _, err := s.pages.Get(ctx, projectID, pageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("page not found")
		}
		return apperr.Internal("load page", err)
	}
	return nil
}

func (s *seoService) Upsert(ctx context.Context, in UpsertSEOInput) (*model.SEOMetadata, error) {
	if err := s.ensurePage(ctx, in.ProjectID, in.PageID); err != nil {
		return nil, err
	}

	keywords := make([]string, 0, len(in.SecondaryKeywords))
	for _, k := range in.SecondaryKeywords {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}

	m := &model.SEOMetadata{
		PageID:            in.PageID,
		MetaTitle:         strings.TrimSpace(in.MetaTitle),
		MetaDescription:   strings.TrimSpace(in.MetaDescription),
		FocusKeyword:      strings.TrimSpace(in.FocusKeyword),
		SecondaryKeywords: datatypes.JSONSlice[string](keywords),
		UpdatedAt:         time.Now().UTC(),
	}
	if err := s.r.Upsert(ctx, m); err != nil {
		return nil, apperr.Internal("save seo metadata", err)
	}
	return m, nil
}

func (s *seoService) Get(ctx context.Context, projectID uuid.UUID, pageID uuid.UUID) (*model.SEOMetadata, error) {
	if err := s.ensurePage(ctx, projectID, pageID); err != nil {
		return nil, err
	}
	m, err := s.r.Get(ctx, pageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("seo metadata not found")
		}
		return nil, apperr.Internal("load seo metadata", err)
	}
	return m, nil
}
