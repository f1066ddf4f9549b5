package request

import (
	"time"

	branchModel "bm-admin/models/branch"
	serviceTypeModel "bm-admin/models/service_type"
	staffModel "bm-admin/models/staff"
	teamModel "bm-admin/models/team"
)

// Lifecycle states driven by dispatch.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// MyStatusFinalized marks a run as billable. The summary report only counts
// rows at this stage; it is an internal workflow axis independent of Status.
const MyStatusFinalized = 3

// Request is a service run owned by exactly one branch. The branch is set at
// creation and every later read/update/delete is scoped by it.
type Request struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for branches relationship
	BranchID uint                `gorm:"not null;index" json:"branch_id"`
	Branch   *branchModel.Branch `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	// Denormalized at creation, patchable afterwards.
	BranchName *string `gorm:"type:varchar(255)" json:"branch_name,omitempty"`

	ServiceTypeID uint                          `gorm:"not null;index" json:"service_type_id"`
	ServiceType   *serviceTypeModel.ServiceType `gorm:"foreignKey:ServiceTypeID" json:"service_type,omitempty"`

	PickupLocation   string    `gorm:"type:text;not null" json:"pickup_location"`
	DeliveryLocation string    `gorm:"type:text;not null" json:"delivery_location"`
	PickupDate       time.Time `gorm:"not null;index" json:"pickup_date"`
	Description      *string   `gorm:"type:text" json:"description,omitempty"`

	Priority string `gorm:"type:varchar(20);default:medium" json:"priority"`
	Status   string `gorm:"type:varchar(50);default:pending;index" json:"status"`
	// Internal workflow stage (0..3), independent of Status.
	MyStatus int `gorm:"column:my_status;default:0;index" json:"my_status"`

	TeamID *uint           `gorm:"index" json:"team_id,omitempty"`
	Team   *teamModel.Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	// Crew commander of the assigned team, written as a side effect of
	// team assignment.
	StaffID *uint             `gorm:"index" json:"staff_id,omitempty"`
	Staff   *staffModel.Staff `gorm:"foreignKey:StaffID" json:"staff,omitempty"`

	Price     float64  `gorm:"type:decimal(10,2);not null" json:"price"`
	Latitude  *float64 `gorm:"type:decimal(10,7)" json:"latitude,omitempty"`
	Longitude *float64 `gorm:"type:decimal(10,7)" json:"longitude,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
