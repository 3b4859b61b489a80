package controllers

import (
	"crm/dto"
	"crm/response"
	"crm/services"

	"github.com/gin-gonic/gin"
)

type StaffController struct {
	Service *services.StaffService
}

func NewStaffController(service *services.StaffService) StaffController {
	return StaffController{Service: service}
}

// CreateStaff godoc
// @Summary Create an hr or developer account
// @Tags staff
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateStaffRequest true "Staff"
// @Success 201 {object} response.Response
// @Router /auth/create-staff [post]
func (s StaffController) CreateStaff(c *gin.Context) {
	var req dto.CreateStaffRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := s.Service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Staff created successfully", dto.NewUserResponse(user))
}

// ListStaff godoc
// @Summary List hr and developer accounts
// @Tags staff
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/staff [get]
func (s StaffController) ListStaff(c *gin.Context) {
	staff, err := s.Service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Staff", dto.NewUserResponses(staff))
}

// UpdateStaff godoc
// @Summary Update a staff account
// @Tags staff
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Staff id"
// @Param body body dto.UpdateStaffRequest true "Fields to change"
// @Success 200 {object} response.Response
// @Router /auth/staff/{id} [put]
func (s StaffController) UpdateStaff(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateStaffRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := s.Service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Staff updated successfully", dto.NewUserResponse(user))
}

// DeleteStaff godoc
// @Summary Delete a staff account
// @Tags staff
// @Security BearerAuth
// @Produce json
// @Param id path int true "Staff id"
// @Success 200 {object} response.Response
// @Router /auth/staff/{id} [delete]
func (s StaffController) DeleteStaff(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := s.Service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Staff deleted successfully", nil)
}

// ChangeStaffStatus godoc
// @Summary Set a staff account status
// @Tags staff
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Staff id"
// @Param body body dto.StatusRequest true "active, suspended or rejected"
// @Success 200 {object} response.Response
// @Router /auth/staff/{id}/status [put]
func (s StaffController) ChangeStaffStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.StatusRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := s.Service.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Status updated to "+user.Status, dto.NewUserResponse(user))
}
