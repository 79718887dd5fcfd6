package models

import (
	"time"

	"github.com/lib/pq"
)

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "onHold"
)

type Project struct {
	ID          string        `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        string        `gorm:"column:name;type:text" json:"name"`
	Description string        `gorm:"column:description;type:text" json:"description"`
	StartDate   *time.Time    `gorm:"column:start_date;type:date" json:"startDate,omitempty"`
	EndDate     *time.Time    `gorm:"column:end_date;type:date" json:"endDate,omitempty"`
	Status      ProjectStatus `gorm:"column:status;type:text" json:"status"`

	RequiredSkills pq.StringArray `gorm:"column:required_skills;type:text[]" json:"requiredSkills,omitempty"`

	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updatedAt"`

	// resolved from assignments, not a column
	TeamMembers []Employee `gorm:"-" json:"teamMembers,omitempty"`
}

func (Project) TableName() string { return "projects" }
