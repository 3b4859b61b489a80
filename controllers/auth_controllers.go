package controllers

import (
	"crm/dto"
	"crm/middleware"
	"crm/response"
	"crm/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(service *services.AuthService) AuthController {
	return AuthController{Service: service}
}

// Register godoc
// @Summary Register a user account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterInput true "Account"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/register [post]
func (a AuthController) Register(c *gin.Context) {
	var req dto.RegisterInput
	if !bindJSON(c, &req) {
		return
	}

	user, err := a.Service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "User registered successfully", dto.NewUserResponse(user))
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginInput true "Credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /auth/login [post]
func (a AuthController) Login(c *gin.Context) {
	var req dto.LoginInput
	if !bindJSON(c, &req) {
		return
	}

	res, err := a.Service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Login successful", res)
}

// LoginSuperAdmin godoc
// @Summary Log in as the superadmin
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginInput true "Credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/superadmin/login [post]
func (a AuthController) LoginSuperAdmin(c *gin.Context) {
	var req dto.LoginInput
	if !bindJSON(c, &req) {
		return
	}

	res, err := a.Service.LoginSuperAdmin(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Superadmin login successful", res)
}

// LoginGoogle godoc
// @Summary Log in with a Google ID token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.GoogleLoginInput true "Google ID token"
// @Success 200 {object} response.Response
// @Router /auth/google [post]
func (a AuthController) LoginGoogle(c *gin.Context) {
	var req dto.GoogleLoginInput
	if !bindJSON(c, &req) {
		return
	}

	res, err := a.Service.LoginWithGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Login successful", res)
}

// Logout godoc
// @Summary Revoke the current token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [delete]
func (a AuthController) Logout(c *gin.Context) {
	if err := a.Service.Logout(c.Request.Context(), middleware.CurrentClaims(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Logged out", nil)
}

// Profile godoc
// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/profile [get]
func (a AuthController) Profile(c *gin.Context) {
	id, _, ok := caller(c)
	if !ok {
		return
	}

	user, err := a.Service.Profile(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Profile", dto.NewUserResponse(user))
}
