package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repair struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Description string `gorm:"size:255;not null" json:"description"`
	Date        Date   `gorm:"not null" json:"date"`
	Status      string `gorm:"size:50;not null;default:'scheduled'" json:"status"`

	VehicleID string  `gorm:"size:36;not null;index" json:"vehicle_id"`
	Vehicle   Vehicle `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"vehicle"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Repair) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
