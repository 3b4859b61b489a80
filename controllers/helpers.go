package controllers

import (
	"strconv"

	apperrors "crm/errors"
	"crm/middleware"
	"crm/response"
	"crm/validator"

	"github.com/gin-gonic/gin"
)

// bindJSON reports a readable 400 and returns false when the body is invalid.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, validator.Message(err))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		response.BadRequest(c, validator.Message(err))
		return false
	}
	return true
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// caller returns the authenticated user set by the auth middleware.
func caller(c *gin.Context) (uint, string, bool) {
	id, okID := middleware.CurrentUserID(c)
	role, okRole := middleware.CurrentRole(c)
	if !okID || !okRole {
		response.Error(c, apperrors.Unauthorized("Not authenticated"))
		return 0, "", false
	}
	return id, role, true
}
