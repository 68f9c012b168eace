package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	DeploymentKindExport  = "export"
	DeploymentKindPublish = "publish"
)

// DeploymentLog tracks one export or publish run of a project.
type DeploymentLog struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"export_id"`
	ProjectID        uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	Kind             string    `gorm:"type:text;not null;default:'export';check:kind IN ('export','publish')" json:"kind"`
	DeploymentStatus JobStatus `gorm:"type:text;not null;default:'in_progress';check:deployment_status IN ('in_progress','completed','failed')" json:"deployment_status"`
	PagesTotal       int       `gorm:"not null;default:0" json:"pages_total"`
	PagesBundled     int       `gorm:"not null;default:0" json:"pages_bundled"`
	ArtifactKey      string    `gorm:"type:text" json:"-"`
	ArtifactSize     int64     `gorm:"not null;default:0" json:"artifact_size"`
	ErrorMessage     string    `gorm:"type:text" json:"error_message,omitempty"`

	StartedAt   time.Time  `gorm:"not null" json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`

	// DeploymentLog <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (DeploymentLog) TableName() string { return "deployment_logs" }
