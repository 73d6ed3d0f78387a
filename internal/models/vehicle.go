package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Vehicle struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Make  string `gorm:"size:50;not null" json:"make"`
	Model string `gorm:"size:50;not null" json:"model"`
	Year  string `gorm:"size:50;not null" json:"year"`
	Color string `gorm:"size:50;not null" json:"color"`

	CustomerID string   `gorm:"size:36;not null;index" json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"customer"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
