package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sitegenie/sitegenie/internal/modules/model"
	"gorm.io/gorm"
)

type PageStats struct {
	Total       int64
	Pillar      int64
	WithSEO     int64
	AIGenerated int64
}

type AnalyticsRepo interface {
	PageStats(ctx context.Context, projectID uuid.UUID) (*PageStats, error)
	CSVUploadsByStatus(ctx context.Context, projectID uuid.UUID) (map[string]int64, error)
	DeploymentsByStatus(ctx context.Context, projectID uuid.UUID) (map[string]int64, error)
	LastCompletedDeployment(ctx context.Context, projectID uuid.UUID) (*time.Time, error)
}

type analyticsRepo struct{ db *gorm.DB }

func NewAnalyticsRepo(db *gorm.DB) AnalyticsRepo {
	return &analyticsRepo{db: db}
}

func (r *analyticsRepo) PageStats(ctx context.Context, projectID uuid.UUID) (*PageStats, error) {
	var out PageStats
	err := r.db.WithContext(ctx).Raw(`
SELECT
	COUNT(*) AS total,
	COUNT(*) FILTER (WHERE p.is_pillar_page) AS pillar,
	COUNT(s.page_id) AS with_seo,
	COUNT(*) FILTER (WHERE EXISTS (
		SELECT 1 FROM ai_content_generations g
		WHERE g.page_id = p.id AND g.status = ?
	)) AS ai_generated
FROM pages p
LEFT JOIN seo_metadata s ON s.page_id = p.id
WHERE p.project_id = ?`, model.JobStatusCompleted, projectID).Scan(&out).Error
	return &out, err
}

type statusCount struct {
	Status string
	N      int64
}

func (r *analyticsRepo) countByStatus(ctx context.Context, row interface{}, column string, projectID uuid.UUID) (map[string]int64, error) {
	var rows []statusCount
	err := r.db.WithContext(ctx).Model(row).
		Select(column+" AS status, COUNT(*) AS n").
		Where("project_id = ?", projectID).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, sc := range rows {
		out[sc.Status] = sc.N
	}
	return out, nil
}

func (r *analyticsRepo) CSVUploadsByStatus(ctx context.Context, projectID uuid.UUID) (map[string]int64, error) {
	return r.countByStatus(ctx, &model.CSVUpload{}, "status", projectID)
}

func (r *analyticsRepo) DeploymentsByStatus(ctx context.Context, projectID uuid.UUID) (map[string]int64, error) {
	return r.countByStatus(ctx, &model.DeploymentLog{}, "deployment_status", projectID)
}

func (r *analyticsRepo) LastCompletedDeployment(ctx context.Context, projectID uuid.UUID) (*time.Time, error) {
	var logs []model.DeploymentLog
	err := r.db.WithContext(ctx).
		Select("completed_at").
		Where("project_id = ? AND deployment_status = ?", projectID, model.JobStatusCompleted).
		Order("completed_at DESC").
		Limit(1).
		Find(&logs).Error
	if err != nil || len(logs) == 0 {
		return nil, err
	}
	return logs[0].CompletedAt, nil
}
