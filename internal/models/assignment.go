package models

import "time"

type ProjectAssignment struct {
	ID         string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ProjectID  string `gorm:"column:project_id;type:uuid;index" json:"projectId"`
	EmployeeID string `gorm:"column:employee_id;type:uuid;index" json:"employeeId"`

	Role                  string     `gorm:"column:role;type:text" json:"role"`
	StartDate             *time.Time `gorm:"column:start_date;type:date" json:"startDate,omitempty"`
	EndDate               *time.Time `gorm:"column:end_date;type:date" json:"endDate,omitempty"`
	UtilizationPercentage int        `gorm:"column:utilization_percentage" json:"utilizationPercentage"`
}

func (ProjectAssignment) TableName() string { return "project_assignments" }
