package client

import (
	"time"
)

// Client represents a contracted customer account. Branches hang off a client.
type Client struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string  `gorm:"type:varchar(255);not null" json:"name"`
	Email         *string `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone         *string `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Address       *string `gorm:"type:text" json:"address,omitempty"`
	AccountNumber string  `gorm:"type:varchar(255);not null" json:"account_number"`
	Balance       float64 `gorm:"type:decimal(10,2);default:0" json:"balance"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
