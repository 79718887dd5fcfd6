package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type TeamRecommendation struct {
	ID        string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ProjectID string `gorm:"column:project_id;type:uuid;index" json:"projectId"`

	RecommendedEmployeeIDs pq.StringArray `gorm:"column:recommended_employee_ids;type:uuid[]" json:"recommendedEmployeeIds"`
	AlternativeEmployeeIDs pq.StringArray `gorm:"column:alternative_employee_ids;type:uuid[]" json:"alternativeEmployeeIds,omitempty"`

	// employee id -> reasoning text (JSONB)
	Reasonings datatypes.JSON `gorm:"column:reasonings;type:jsonb" json:"reasonings,omitempty"`

	ConfidenceScore int       `gorm:"column:confidence_score" json:"confidenceScore"`
	CreatedAt       time.Time `gorm:"column:created_at;type:timestamptz" json:"createdAt"`
}

func (TeamRecommendation) TableName() string { return "team_recommendations" }
