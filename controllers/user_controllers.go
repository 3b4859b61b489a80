package controllers

import (
	"crm/dto"
	"crm/response"
	"crm/services"

	"github.com/gin-gonic/gin"
)

// UserController moderates self-registered accounts.
type UserController struct {
	Service *services.UserService
}

func NewUserController(service *services.UserService) UserController {
	return UserController{Service: service}
}

// GetUsers godoc
// @Summary List user accounts
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/users [get]
func (u UserController) GetUsers(c *gin.Context) {
	users, err := u.Service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Users", dto.NewUserResponses(users))
}

// ApproveUser godoc
// @Summary Activate a user account
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} response.Response
// @Router /admin/users/{id}/approve [put]
func (u UserController) ApproveUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	user, err := u.Service.Approve(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "User approved", dto.NewUserResponse(user))
}

// SuspendUser godoc
// @Summary Suspend a user account
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} response.Response
// @Router /admin/users/{id}/suspend [put]
func (u UserController) SuspendUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	user, err := u.Service.Suspend(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "User suspended", dto.NewUserResponse(user))
}
