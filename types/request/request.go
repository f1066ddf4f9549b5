package request

import (
	"fmt"
	"time"
)

// Accepted pickup date encodings, tried in order.
var pickupDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParsePickupDate parses the pickup date formats clients send.
func ParsePickupDate(value string) (time.Time, error) {
	for _, layout := range pickupDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid pickup date: %q", value)
}

// CreateRequest is the creation payload. BranchID and BranchName are body
// fallbacks only; the authenticated identity wins when present.
type CreateRequest struct {
	BranchID         *uint    `json:"branchId"`
	BranchName       *string  `json:"branchName"`
	ServiceTypeID    uint     `json:"serviceTypeId"`
	PickupLocation   string   `json:"pickupLocation"`
	DeliveryLocation string   `json:"deliveryLocation"`
	PickupDate       string   `json:"pickupDate"`
	Description      *string  `json:"description"`
	Priority         string   `json:"priority"`
	MyStatus         *int     `json:"myStatus"`
	Price            float64  `json:"price"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
}

func (r CreateRequest) Validate() error {
	if r.ServiceTypeID == 0 {
		return fmt.Errorf("serviceTypeId is required")
	}
	if r.PickupLocation == "" {
		return fmt.Errorf("pickupLocation is required")
	}
	if r.DeliveryLocation == "" {
		return fmt.Errorf("deliveryLocation is required")
	}
	if r.PickupDate == "" {
		return fmt.Errorf("pickupDate is required")
	}
	if r.Price == 0 {
		return fmt.Errorf("price is required")
	}
	return nil
}

// UpdateRequest is the partial-update payload. Nil fields are absent and are
// dropped before the UPDATE; the statement only ever touches present keys.
type UpdateRequest struct {
	BranchName       *string  `json:"branchName"`
	ServiceTypeID    *uint    `json:"serviceTypeId"`
	PickupLocation   *string  `json:"pickupLocation"`
	DeliveryLocation *string  `json:"deliveryLocation"`
	PickupDate       *string  `json:"pickupDate"`
	Description      *string  `json:"description"`
	Priority         *string  `json:"priority"`
	Status           *string  `json:"status"`
	MyStatus         *int     `json:"myStatus"`
	TeamID           *uint    `json:"teamId"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
}

// Updates maps the present fields to their columns. The caller layers on
// derived columns (staff_id from team assignment) before executing.
func (r UpdateRequest) Updates() (map[string]interface{}, error) {
	updates := make(map[string]interface{})

	if r.BranchName != nil {
		updates["branch_name"] = *r.BranchName
	}
	if r.ServiceTypeID != nil {
		updates["service_type_id"] = *r.ServiceTypeID
	}
	if r.PickupLocation != nil {
		updates["pickup_location"] = *r.PickupLocation
	}
	if r.DeliveryLocation != nil {
		updates["delivery_location"] = *r.DeliveryLocation
	}
	if r.PickupDate != nil {
		parsed, err := ParsePickupDate(*r.PickupDate)
		if err != nil {
			return nil, err
		}
		updates["pickup_date"] = parsed
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Priority != nil {
		updates["priority"] = *r.Priority
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	if r.MyStatus != nil {
		updates["my_status"] = *r.MyStatus
	}
	if r.TeamID != nil {
		updates["team_id"] = *r.TeamID
	}
	if r.Latitude != nil {
		updates["latitude"] = *r.Latitude
	}
	if r.Longitude != nil {
		updates["longitude"] = *r.Longitude
	}

	return updates, nil
}

// Row is a request denormalized with branch, client and service-type names.
// Reads re-join every time; nothing is cached.
type Row struct {
	ID               uint      `json:"id" gorm:"column:id"`
	BranchID         uint      `json:"branchId" gorm:"column:branch_id"`
	BranchName       *string   `json:"branchName" gorm:"column:branch_name"`
	ClientName       *string   `json:"clientName" gorm:"column:client_name"`
	ServiceTypeID    uint      `json:"serviceTypeId" gorm:"column:service_type_id"`
	ServiceTypeName  *string   `json:"serviceTypeName" gorm:"column:service_type_name"`
	PickupLocation   string    `json:"pickupLocation" gorm:"column:pickup_location"`
	DeliveryLocation string    `json:"deliveryLocation" gorm:"column:delivery_location"`
	PickupDate       time.Time `json:"pickupDate" gorm:"column:pickup_date"`
	Description      *string   `json:"description" gorm:"column:description"`
	Priority         string    `json:"priority" gorm:"column:priority"`
	Status           string    `json:"status" gorm:"column:status"`
	MyStatus         int       `json:"myStatus" gorm:"column:my_status"`
	TeamID           *uint     `json:"teamId" gorm:"column:team_id"`
	StaffID          *uint     `json:"staffId" gorm:"column:staff_id"`
	Price            float64   `json:"price" gorm:"column:price"`
	Latitude         *float64  `json:"latitude" gorm:"column:latitude"`
	Longitude        *float64  `json:"longitude" gorm:"column:longitude"`
	CreatedAt        time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt        time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

// RunSummary is one per-day bucket of the finalized-runs report.
type RunSummary struct {
	Date                 string  `json:"date" gorm:"column:date"`
	TotalRuns            int     `json:"totalRuns" gorm:"column:total_runs"`
	TotalRunsCompleted   int     `json:"totalRunsCompleted" gorm:"column:total_runs_completed"`
	TotalAmount          float64 `json:"totalAmount" gorm:"column:total_amount"`
	TotalAmountCompleted float64 `json:"totalAmountCompleted" gorm:"column:total_amount_completed"`
}
