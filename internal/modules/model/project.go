package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ProjectStatusDraft     = "draft"
	ProjectStatusPublished = "published"
	ProjectStatusArchived  = "archived"
)

type Project struct {
	ID              uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	Name            string            `gorm:"type:varchar(200);not null" json:"name"`
	Description     string            `gorm:"type:text" json:"description"`
	Status          string            `gorm:"type:text;not null;default:'draft';check:status IN ('draft','published','archived')" json:"status"`
	DefaultLanguage string            `gorm:"type:varchar(16);not null;default:'en'" json:"default_language"`
	Design          datatypes.JSONMap `gorm:"type:jsonb" swaggertype:"object" json:"design"`
	PublishedURL    *string           `gorm:"type:text" json:"published_url"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Project <-> User
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Project <-> Page
	Pages []Page `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Project <-> CSVUpload
	CSVUploads []CSVUpload `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Project <-> AIContentGeneration
	Generations []AIContentGeneration `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Project <-> DeploymentLog
	Deployments []DeploymentLog `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Project) TableName() string { return "projects" }

func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusDraft, ProjectStatusPublished, ProjectStatusArchived:
		return true
	}
	return false
}
