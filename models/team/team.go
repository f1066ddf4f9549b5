package team

import (
	"time"

	staffModel "bm-admin/models/staff"
)

// Team groups staff under a crew commander. Assigning a team to a request
// denormalizes the commander onto the request's staff_id.
type Team struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`

	BranchID *uint `gorm:"index" json:"branch_id,omitempty"`

	CrewCommanderID *uint             `gorm:"index" json:"crew_commander_id,omitempty"`
	CrewCommander   *staffModel.Staff `gorm:"foreignKey:CrewCommanderID" json:"crew_commander,omitempty"`

	Members []staffModel.Staff `gorm:"many2many:team_members" json:"members,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
