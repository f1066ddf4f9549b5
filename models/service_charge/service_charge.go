package service_charge

import (
	"time"

	serviceTypeModel "bm-admin/models/service_type"
)

// ServiceCharge is a per-client rate for a service.
type ServiceCharge struct {
	ID       uint `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID uint `gorm:"not null;index" json:"client_id"`

	ServiceTypeID *uint                         `gorm:"index" json:"service_type_id,omitempty"`
	ServiceType   *serviceTypeModel.ServiceType `gorm:"foreignKey:ServiceTypeID" json:"service_type,omitempty"`

	Description *string `gorm:"type:text" json:"description,omitempty"`
	Amount      float64 `gorm:"type:decimal(10,2);not null" json:"amount"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
