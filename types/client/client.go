package client

import "fmt"

type ClientRequest struct {
	Name          string   `json:"name"`
	Email         *string  `json:"email"`
	Phone         *string  `json:"phone"`
	Address       *string  `json:"address"`
	AccountNumber string   `json:"account_number"`
	Balance       *float64 `json:"balance"`
}

func (r ClientRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.AccountNumber == "" {
		return fmt.Errorf("account_number is required")
	}
	return nil
}
