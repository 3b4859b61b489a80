package dto

import (
	"time"

	"crm/models"
)

type StaffSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AttendanceResponse struct {
	ID        uint          `json:"id"`
	StaffID   uint          `json:"staffId"`
	Staff     *StaffSummary `json:"staff,omitempty"`
	Date      string        `json:"date"`
	CheckIn   string        `json:"checkIn"`
	CheckOut  string        `json:"checkOut"`
	Duration  string        `json:"duration"`
	CreatedAt time.Time     `json:"createdAt"`
}

type WorkingHoursQuery struct {
	StaffID uint   `form:"staffId" binding:"required"`
	Month   string `form:"month" binding:"required,yearmonth"`
}

type WorkingHoursResponse struct {
	StaffID    uint    `json:"staffId"`
	Month      string  `json:"month"`
	TotalHours float64 `json:"totalHours"`
	ExactHours float64 `json:"exactHours"`
}

func NewStaffSummary(u models.User) *StaffSummary {
	return &StaffSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

func NewAttendanceResponse(a models.Attendance, withStaff bool) AttendanceResponse {
	res := AttendanceResponse{
		ID:        a.ID,
		StaffID:   a.StaffID,
		Date:      a.Date,
		CheckIn:   a.CheckIn,
		CheckOut:  a.CheckOut,
		Duration:  a.Duration,
		CreatedAt: a.CreatedAt,
	}
	if withStaff {
		res.Staff = NewStaffSummary(a.Staff)
	}
	return res
}
