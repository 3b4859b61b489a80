package models

import "time"

type SalarySlip struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	StaffID           uint      `gorm:"not null;uniqueIndex:idx_slip_staff_month" json:"staffId"`
	Month             string    `gorm:"size:7;not null;uniqueIndex:idx_slip_staff_month" json:"month"`
	LPA               float64   `gorm:"column:lpa;not null" json:"LPA"`
	TotalWorkingHours float64   `gorm:"not null" json:"totalWorkingHours"`
	CalculatedSalary  int64     `json:"calculatedSalary"`
	Status            string    `gorm:"size:20;not null;default:pending" json:"status"`
	RejectionReason   string    `gorm:"size:500" json:"rejectionReason,omitempty"`

	Staff User `gorm:"foreignKey:StaffID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}
