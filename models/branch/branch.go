package branch

import (
	"time"

	clientModel "bm-admin/models/client"
)

// Branch is a tenant account. Branch credentials are what operators log in
// with, and every request row is owned by exactly one branch.
type Branch struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for clients relationship
	ClientID *uint               `gorm:"index" json:"client_id,omitempty"`
	Client   *clientModel.Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	Name     string  `gorm:"type:varchar(255);not null;unique" json:"name"`
	Email    *string `gorm:"type:varchar(255)" json:"email,omitempty"`
	Password string  `gorm:"type:varchar(255);not null" json:"-"`
	Role     string  `gorm:"type:varchar(50);default:branch" json:"role"`
	RoleID   *uint   `gorm:"index" json:"role_id,omitempty"`
	Phone    *string `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Address  *string `gorm:"type:text" json:"address,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
