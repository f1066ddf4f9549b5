package sos

import (
	"time"

	staffModel "bm-admin/models/staff"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
)

// SOS is a panic alert raised by a guard in the field.
type SOS struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	GuardID *uint             `gorm:"index" json:"guard_id,omitempty"`
	Guard   *staffModel.Staff `gorm:"foreignKey:GuardID" json:"guard,omitempty"`

	Message   *string  `gorm:"type:text" json:"message,omitempty"`
	Latitude  *float64 `gorm:"type:decimal(10,7)" json:"latitude,omitempty"`
	Longitude *float64 `gorm:"type:decimal(10,7)" json:"longitude,omitempty"`

	Status  string  `gorm:"type:varchar(20);default:pending" json:"status"`
	Comment *string `gorm:"type:text" json:"comment,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SOS) TableName() string {
	return "sos"
}
