package notice

import "time"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Notice struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title    string  `gorm:"type:varchar(255);not null" json:"title"`
	Content  string  `gorm:"type:text;not null" json:"content"`
	Priority *string `gorm:"type:varchar(20)" json:"priority,omitempty"`
	Status   string  `gorm:"type:varchar(20);default:active" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
