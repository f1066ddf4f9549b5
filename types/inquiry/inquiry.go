package inquiry

import (
	"fmt"
	"time"
)

type InquiryCreateRequest struct {
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	InquiryType string `json:"inquiry_type"`
}

func (r InquiryCreateRequest) Validate() error {
	if r.Subject == "" {
		return fmt.Errorf("subject is required")
	}
	if r.Message == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}

// InquiryUpdateRequest carries the triage fields staff may set.
type InquiryUpdateRequest struct {
	Status     *string `json:"status"`
	Priority   *string `json:"priority"`
	AssignedTo *uint   `json:"assigned_to"`
	Response   *string `json:"response"`
}

func (r InquiryUpdateRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	if r.Priority != nil {
		updates["priority"] = *r.Priority
	}
	if r.AssignedTo != nil {
		updates["assigned_to"] = *r.AssignedTo
	}
	if r.Response != nil {
		updates["response"] = *r.Response
	}
	return updates
}

// Row is an inquiry joined with the raising branch and assigned staff.
type Row struct {
	ID                uint    `json:"id" gorm:"column:id"`
	UserID            uint    `json:"user_id" gorm:"column:user_id"`
	UserName          *string `json:"user_name" gorm:"column:user_name"`
	UserEmail         *string `json:"user_email" gorm:"column:user_email"`
	Subject           string  `json:"subject" gorm:"column:subject"`
	Message           string  `json:"message" gorm:"column:message"`
	InquiryType       string  `json:"inquiry_type" gorm:"column:inquiry_type"`
	Status            string  `json:"status" gorm:"column:status"`
	Priority          string  `json:"priority" gorm:"column:priority"`
	AssignedTo        *uint   `json:"assigned_to" gorm:"column:assigned_to"`
	AssignedStaffName *string `json:"assigned_staff_name" gorm:"column:assigned_staff_name"`
	Response          *string `json:"response" gorm:"column:response"`
	CreatedAt         time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt         time.Time `json:"updated_at" gorm:"column:updated_at"`
}
