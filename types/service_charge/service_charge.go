package service_charge

import "fmt"

type ServiceChargeRequest struct {
	ServiceTypeID *uint   `json:"service_type_id"`
	Description   *string `json:"description"`
	Amount        float64 `json:"amount"`
}

func (r ServiceChargeRequest) Validate() error {
	if r.Amount == 0 {
		return fmt.Errorf("amount is required")
	}
	return nil
}
