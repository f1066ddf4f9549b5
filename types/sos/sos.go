package sos

import (
	"fmt"
	"time"
)

type SOSCreateRequest struct {
	GuardID   *uint    `json:"guard_id"`
	Message   *string  `json:"message"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r SOSCreateRequest) Validate() error {
	if r.GuardID == nil || *r.GuardID == 0 {
		return fmt.Errorf("guard_id is required")
	}
	return nil
}

type StatusRequest struct {
	Status  string  `json:"status"`
	Comment *string `json:"comment"`
}

func (r StatusRequest) Validate() error {
	switch r.Status {
	case "pending", "in_progress", "resolved":
		return nil
	}
	return fmt.Errorf("invalid status")
}

// Row is an alert joined with the raising guard's name.
type Row struct {
	ID        uint     `json:"id" gorm:"column:id"`
	GuardID   *uint    `json:"guard_id" gorm:"column:guard_id"`
	GuardName *string  `json:"guard_name" gorm:"column:guard_name"`
	Message   *string  `json:"message" gorm:"column:message"`
	Latitude  *float64 `json:"latitude" gorm:"column:latitude"`
	Longitude *float64 `json:"longitude" gorm:"column:longitude"`
	Status    string   `json:"status" gorm:"column:status"`
	Comment   *string  `json:"comment" gorm:"column:comment"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}
