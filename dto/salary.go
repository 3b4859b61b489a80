package dto

import (
	"time"

	"crm/models"
)

type GenerateSlipRequest struct {
	StaffID uint    `json:"staffId" binding:"required"`
	Month   string  `json:"month" binding:"required,yearmonth"`
	LPA     float64 `json:"LPA" binding:"required,gt=0"`
}

type SlipStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

type SlipResponse struct {
	ID                uint          `json:"id"`
	StaffID           uint          `json:"staffId"`
	Staff             *StaffSummary `json:"staff,omitempty"`
	Month             string        `json:"month"`
	LPA               float64       `json:"LPA"`
	TotalWorkingHours float64       `json:"totalWorkingHours"`
	CalculatedSalary  int64         `json:"calculatedSalary"`
	Status            string        `json:"status"`
	RejectionReason   string        `json:"rejectionReason,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
}

func NewSlipResponse(s models.SalarySlip, withStaff bool) SlipResponse {
	res := SlipResponse{
		ID:                s.ID,
		StaffID:           s.StaffID,
		Month:             s.Month,
		LPA:               s.LPA,
		TotalWorkingHours: s.TotalWorkingHours,
		CalculatedSalary:  s.CalculatedSalary,
		Status:            s.Status,
		RejectionReason:   s.RejectionReason,
		CreatedAt:         s.CreatedAt,
	}
	if withStaff {
		res.Staff = NewStaffSummary(s.Staff)
	}
	return res
}
