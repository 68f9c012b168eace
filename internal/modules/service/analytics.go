package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sitegenie/sitegenie/internal/modules/repo"
	"github.com/sitegenie/sitegenie/internal/pkg/apperr"
)

type AnalyticsService interface {
	Summary(ctx context.Context, projectID uuid.UUID) (*AnalyticsSummary, error)
}

type analyticsService struct{ r repo.AnalyticsRepo }

func NewAnalyticsService(r repo.AnalyticsRepo) AnalyticsService {
	return &analyticsService{r: r}
}

type AnalyticsSummary struct {
	PageCount           int64            `json:"page_count"`
	PillarPageCount     int64            `json:"pillar_page_count"`
	PagesWithSEO        int64            `json:"pages_with_seo"`
	SEOCoverage         float64          `json:"seo_coverage"`
	AIGeneratedPages    int64            `json:"ai_generated_pages"`
	CSVUploadsByStatus  map[string]int64 `json:"csv_uploads_by_status"`
	DeploymentsByStatus map[string]int64 `json:"deployments_by_status"`
	LastDeploymentAt    *time.Time       `json:"last_deployment_at"`
}

func (s *analyticsService) Summary(ctx context.Context, projectID uuid.UUID) (*AnalyticsSummary, error) {
	stats, err := s.r.PageStats(ctx, projectID)
	if err != nil {
		return nil, apperr.Internal("page stats", err)
	}
	uploads, err := s.r.CSVUploadsByStatus(ctx, projectID)
	if err != nil {
		return nil, apperr.Internal("csv upload stats", err)
	}
	deploys, err := s.r.DeploymentsByStatus(ctx, projectID)
	if err != nil {
		return nil, apperr.Internal("deployment stats", err)
	}
	last, err := s.r.LastCompletedDeployment(ctx, projectID)
	if err != nil {
		return nil, apperr.Internal("last deployment", err)
	}

	return &AnalyticsSummary{
		PageCount:           stats.Total,
		PillarPageCount:     stats.Pillar,
		PagesWithSEO:        stats.WithSEO,
		SEOCoverage:         coverage(stats.WithSEO, stats.Total),
		AIGeneratedPages:    stats.AIGenerated,
		CSVUploadsByStatus:  uploads,
		DeploymentsByStatus: deploys,
		LastDeploymentAt:    last,
	}, nil
}

// coverage is a percentage rounded to one decimal.
func coverage(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)*1000/float64(total)) / 10
}
