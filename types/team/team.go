package team

import "fmt"

type TeamCreateRequest struct {
	Name            string `json:"name"`
	BranchID        *uint  `json:"branch_id"`
	CrewCommanderID *uint  `json:"crew_commander_id"`
	MemberIDs       []uint `json:"member_ids"`
}

func (r TeamCreateRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}
