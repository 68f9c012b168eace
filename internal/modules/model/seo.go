package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SEOMetadata is keyed by page: one row per page at most.
type SEOMetadata struct {
	PageID            uuid.UUID                    `gorm:"type:uuid;primaryKey" json:"page_id"`
	MetaTitle         string                       `gorm:"type:text" json:"meta_title"`
	MetaDescription   string                       `gorm:"type:text" json:"meta_description"`
	FocusKeyword      string                       `gorm:"type:text" json:"focus_keyword"`
	SecondaryKeywords datatypes.JSONSlice[string] `gorm:"type:jsonb" swaggertype:"array,string" json:"secondary_keywords"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SEOMetadata) TableName() string { return "seo_metadata" }
