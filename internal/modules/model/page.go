package model

import (
	"time"

	"github.com/google/uuid"
)

type Page struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID    uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:uq_pages_project_slug,priority:1" json:"project_id"`
	Title        string     `gorm:"type:text;not null" json:"title"`
	URLSlug      string     `gorm:"column:url_slug;type:text;not null;uniqueIndex:uq_pages_project_slug,priority:2" json:"url_slug"`
	Content      string     `gorm:"type:text" json:"content"`
	IsPillarPage bool       `gorm:"not null;default:false" json:"is_pillar_page"`
	ParentPageID *uuid.UUID `gorm:"type:uuid;index" json:"parent_page_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Page <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Page <-> Page (parent)
	Parent *Page `gorm:"foreignKey:ParentPageID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`

	// Page <-> SEOMetadata
	SEO *SEOMetadata `gorm:"foreignKey:PageID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"seo,omitempty"`
}

func (Page) TableName() string { return "pages" }

// PageNode is a page with its children, used to render the hierarchy.
type PageNode struct {
	Page     *Page       `json:"page"`
	Children []*PageNode `json:"children"`
}
