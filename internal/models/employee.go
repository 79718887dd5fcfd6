package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
	EmployeeOnLeave  EmployeeStatus = "onLeave"
)

type Employee struct {
	ID         string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	EmployeeID string `gorm:"column:employee_id;type:text;uniqueIndex" json:"employeeId"`
	FirstName  string `gorm:"column:first_name;type:text" json:"firstName"`
	LastName   string `gorm:"column:last_name;type:text" json:"lastName"`
	Email      string `gorm:"column:email;type:text" json:"email"`
	Department string `gorm:"column:department;type:text" json:"department"`
	Position   string `gorm:"column:position;type:text" json:"position"`
	Location   string `gorm:"column:location;type:text" json:"location,omitempty"`
	ManagerID  string `gorm:"column:manager_id;type:uuid" json:"managerId,omitempty"`
	MentorID   string `gorm:"column:mentor_id;type:uuid" json:"mentorId,omitempty"`

	HireDate               *time.Time     `gorm:"column:hire_date;type:date" json:"hireDate,omitempty"`
	Status                 EmployeeStatus `gorm:"column:status;type:text" json:"status"`
	ExpectedDepartureDate  *time.Time     `gorm:"column:expected_departure_date;type:date" json:"expectedDepartureDate,omitempty"`

	Skills pq.StringArray `gorm:"column:skills;type:text[]" json:"skills,omitempty"`

	// skill name -> rating, factor name -> rating (JSONB)
	CompetencyMatrix datatypes.JSON `gorm:"column:competency_matrix;type:jsonb" json:"competencyMatrix,omitempty"`
	RetentionMatrix  datatypes.JSON `gorm:"column:retention_matrix;type:jsonb" json:"retentionMatrix,omitempty"`

	Notes string `gorm:"column:notes;type:text" json:"notes,omitempty"`

	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updatedAt"`
}

func (Employee) TableName() string { return "employees" }
