package branch

import "fmt"

type BranchRequest struct {
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Password string  `json:"password"`
	Role     string  `json:"role"`
	RoleID   *uint   `json:"role_id"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

func (r BranchRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// BranchUpdateRequest leaves the password optional; blank means keep.
type BranchUpdateRequest struct {
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Password string  `json:"password"`
	Role     *string `json:"role"`
	RoleID   *uint   `json:"role_id"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

func (r BranchUpdateRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}
