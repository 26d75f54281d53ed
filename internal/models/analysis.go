package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AnalysisStatus string

const (
	StatusQueued     AnalysisStatus = "queued"
	StatusProcessing AnalysisStatus = "processing"
	StatusCompleted  AnalysisStatus = "completed"
	StatusFailed     AnalysisStatus = "failed"
)

// Analysis is one queued resume-to-job analysis request and its outcome.
type Analysis struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobTitle         string         `gorm:"type:text" json:"job_title"`
	ResumeDocumentID uuid.UUID      `gorm:"type:uuid;not null" json:"resume_document_id"`
	Status           AnalysisStatus `gorm:"not null;default:'queued'" json:"status"`
	OverallMatch     *float64       `gorm:"type:decimal(5,2)" json:"overall_match,omitempty"`
	SemanticMatch    *float64       `gorm:"type:decimal(5,2)" json:"semantic_match,omitempty"`
	SkillMatch       *float64       `gorm:"type:decimal(5,2)" json:"skill_match,omitempty"`
	Result           datatypes.JSON `gorm:"type:jsonb" json:"result,omitempty"`
	ErrorMessage     string         `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt        time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	ResumeDocument Document `gorm:"foreignKey:ResumeDocumentID" json:"-"`
}

func (Analysis) TableName() string {
	return "analyses"
}
