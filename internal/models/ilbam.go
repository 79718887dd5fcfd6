package models

import "time"

// IlbamMatrix holds the six-axis retention assessment for one employee.
// Ratings are 1..5.
type IlbamMatrix struct {
	ID         string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	EmployeeID string `gorm:"column:employee_id;type:uuid;uniqueIndex" json:"employeeId"`

	BusinessUnderstanding int `gorm:"column:business_understanding" json:"businessUnderstanding"`
	Leadership            int `gorm:"column:leadership" json:"leadership"`
	InnovationCapability  int `gorm:"column:innovation_capability" json:"innovationCapability"`
	Teamwork              int `gorm:"column:teamwork" json:"teamwork"`
	Adaptability          int `gorm:"column:adaptability" json:"adaptability"`
	Motivation            int `gorm:"column:motivation" json:"motivation"`

	LastUpdated time.Time `gorm:"column:last_updated;type:timestamptz" json:"lastUpdated"`
	UpdatedBy   string    `gorm:"column:updated_by;type:text" json:"updatedBy"`
}

func (IlbamMatrix) TableName() string { return "ilbam_matrices" }

// Ratings lists the six axis values in declaration order.
func (m IlbamMatrix) Ratings() []int {
	return []int{
		m.BusinessUnderstanding,
		m.Leadership,
		m.InnovationCapability,
		m.Teamwork,
		m.Adaptability,
		m.Motivation,
	}
}
