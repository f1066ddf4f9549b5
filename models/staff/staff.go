package staff

import (
	"time"

	roleModel "bm-admin/models/role"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Staff represents a guard or office employee.
type Staff struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Name  string  `gorm:"type:varchar(255);not null" json:"name"`
	Email *string `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone string  `gorm:"type:varchar(20);not null" json:"phone"`
	Photo *string `gorm:"type:varchar(2048)" json:"photo,omitempty"`

	RoleID   *uint           `gorm:"index" json:"role_id,omitempty"`
	Role     *roleModel.Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	BranchID *uint           `gorm:"index" json:"branch_id,omitempty"`

	Status string `gorm:"type:varchar(20);default:active" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
