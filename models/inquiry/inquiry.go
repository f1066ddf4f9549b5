package inquiry

import (
	"time"
)

// Inquiry types and states mirror the enum columns the schema carries.
const (
	TypeGeneral = "general"
	TypeService = "service"
	TypeBilling = "billing"
	TypeSupport = "support"
	TypeOther   = "other"

	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

// Inquiry is a message raised by a branch account, optionally assigned to a
// staff member for follow-up.
type Inquiry struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Branch that raised the inquiry.
	UserID uint `gorm:"not null;index" json:"user_id"`

	Subject     string `gorm:"type:varchar(255);not null" json:"subject"`
	Message     string `gorm:"type:text;not null" json:"message"`
	InquiryType string `gorm:"type:varchar(20);default:general" json:"inquiry_type"`
	Status      string `gorm:"type:varchar(20);default:pending" json:"status"`
	Priority    string `gorm:"type:varchar(20);default:medium" json:"priority"`

	AssignedTo *uint   `gorm:"index" json:"assigned_to,omitempty"`
	Response   *string `gorm:"type:text" json:"response,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
