package model

import (
	"time"

	"github.com/google/uuid"
)

type AIContentGeneration struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"generation_id"`
	ProjectID        uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	PageID           uuid.UUID `gorm:"type:uuid;not null;index" json:"page_id"`
	Prompt           string    `gorm:"type:text;not null" json:"prompt"`
	Status           JobStatus `gorm:"type:text;not null;default:'pending';check:status IN ('pending','completed','failed')" json:"status"`
	GeneratedContent string    `gorm:"type:text" json:"generated_content"`
	ErrorMessage     string    `gorm:"type:text" json:"error_message,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// AIContentGeneration <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// AIContentGeneration <-> Page
	Page *Page `gorm:"foreignKey:PageID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (AIContentGeneration) TableName() string { return "ai_content_generations" }
