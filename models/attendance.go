package models

import "time"

// Attendance is one developer day. Date is YYYY-MM-DD, the times are HH:mm:ss.
type Attendance struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	StaffID   uint      `gorm:"not null;uniqueIndex:idx_attendance_staff_date" json:"staffId"`
	Date      string    `gorm:"size:10;not null;uniqueIndex:idx_attendance_staff_date" json:"date"`
	CheckIn   string    `gorm:"size:8" json:"checkIn"`
	CheckOut  string    `gorm:"size:8" json:"checkOut"`
	Duration  string    `gorm:"size:16" json:"duration"`

	Staff User `gorm:"foreignKey:StaffID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}
