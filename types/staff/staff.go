package staff

import "fmt"

type StaffRequest struct {
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Phone    string  `json:"phone"`
	Photo    *string `json:"photo"`
	RoleID   *uint   `json:"role_id"`
	BranchID *uint   `json:"branch_id"`
	Status   string  `json:"status"`
}

func (r StaffRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Phone == "" {
		return fmt.Errorf("phone is required")
	}
	return nil
}

type StatusRequest struct {
	Status string `json:"status"`
}

func (r StatusRequest) Validate() error {
	if r.Status != "active" && r.Status != "inactive" {
		return fmt.Errorf("status must be either 'active' or 'inactive'")
	}
	return nil
}
