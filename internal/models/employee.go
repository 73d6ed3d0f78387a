package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	FirstName    string  `gorm:"size:50;not null" json:"first_name"`
	LastName     string  `gorm:"size:50;not null" json:"last_name"`
	Email        string  `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone        string  `gorm:"size:20;not null" json:"phone"`
	HourlyWage   float64 `gorm:"not null" json:"hourly_wage"`
	EmployeeType string  `gorm:"size:50;not null" json:"employee_type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}
