package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RowError describes a CSV row that could not be imported. Row is 1-based
// and counts the header line.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type CSVUpload struct {
	ID           uuid.UUID                     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"upload_id"`
	UserID       uuid.UUID                     `gorm:"type:uuid;not null;index" json:"user_id"`
	ProjectID    uuid.UUID                     `gorm:"type:uuid;not null;index:ix_csv_uploads_project_status,priority:1" json:"project_id"`
	FileName     string                        `gorm:"type:text;not null" json:"file_name"`
	FilePath     string                        `gorm:"type:text;not null" json:"file_path"`
	Status       JobStatus                     `gorm:"type:text;not null;default:'pending';check:status IN ('pending','completed','completed_with_errors','failed');index:ix_csv_uploads_project_status,priority:2" json:"status"`
	RowsTotal    int                           `gorm:"not null;default:0" json:"rows_total"`
	RowsImported int                           `gorm:"not null;default:0" json:"rows_imported"`
	RowsFailed   int                           `gorm:"not null;default:0" json:"rows_failed"`
	RowErrors    datatypes.JSONSlice[RowError] `gorm:"type:jsonb" swaggertype:"array,object" json:"row_errors"`
	ErrorMessage string                        `gorm:"type:text" json:"error_message,omitempty"`

	UploadDate  time.Time  `gorm:"autoCreateTime" json:"upload_date"`
	CompletedAt *time.Time `json:"completed_at"`

	// CSVUpload <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (CSVUpload) TableName() string { return "csv_uploads" }
