package controllers

import (
	"crm/dto"
	"crm/models"
	"crm/response"
	"crm/services"

	"github.com/gin-gonic/gin"
)

type AttendanceController struct {
	Service *services.AttendanceService
}

func NewAttendanceController(service *services.AttendanceService) AttendanceController {
	return AttendanceController{Service: service}
}

// CheckIn godoc
// @Summary Developer check-in for today
// @Tags attendance
// @Security BearerAuth
// @Produce json
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /attendance/check-in [post]
func (a AttendanceController) CheckIn(c *gin.Context) {
	id, role, ok := caller(c)
	if !ok {
		return
	}

	record, err := a.Service.CheckIn(c.Request.Context(), id, role)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Checked in successfully", dto.NewAttendanceResponse(record, false))
}

// CheckOut godoc
// @Summary Developer check-out for today
// @Tags attendance
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /attendance/check-out [post]
func (a AttendanceController) CheckOut(c *gin.Context) {
	id, role, ok := caller(c)
	if !ok {
		return
	}

	record, err := a.Service.CheckOut(c.Request.Context(), id, role)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Checked out successfully", dto.NewAttendanceResponse(record, false))
}

// GetAllAttendance godoc
// @Summary Attendance of every developer
// @Tags attendance
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /attendance/all [get]
func (a AttendanceController) GetAllAttendance(c *gin.Context) {
	records, err := a.Service.All(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Attendance", attendanceResponses(records, true))
}

// GetMyAttendance godoc
// @Summary Caller's attendance
// @Tags attendance
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /attendance/my [get]
func (a AttendanceController) GetMyAttendance(c *gin.Context) {
	id, _, ok := caller(c)
	if !ok {
		return
	}

	records, err := a.Service.Mine(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Attendance", attendanceResponses(records, false))
}

// GetWorkingHours godoc
// @Summary Monthly working hours of a staff member
// @Tags attendance
// @Security BearerAuth
// @Produce json
// @Param staffId query int true "Staff id"
// @Param month query string true "YYYY-MM"
// @Success 200 {object} response.Response
// @Router /attendance/working-hours [get]
func (a AttendanceController) GetWorkingHours(c *gin.Context) {
	id, role, ok := caller(c)
	if !ok {
		return
	}
	var q dto.WorkingHoursQuery
	if !bindQuery(c, &q) {
		return
	}

	res, err := a.Service.WorkingHours(c.Request.Context(), id, role, q.StaffID, q.Month)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Working hours", res)
}

func attendanceResponses(records []models.Attendance, withStaff bool) []dto.AttendanceResponse {
	out := make([]dto.AttendanceResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.NewAttendanceResponse(r, withStaff))
	}
	return out
}
