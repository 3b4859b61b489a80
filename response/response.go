package response

import (
	"net/http"

	apperrors "crm/errors"

	"github.com/gin-gonic/gin"
)

// Response is the envelope of every JSON reply
type Response struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Error   apperrors.ErrorCode `json:"error,omitempty"`
	Data    interface{}         `json:"data,omitempty"`
}

// Success replies 200 with data
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    1,
		Message: message,
		Data:    data,
	})
}

// Created replies 201 with data
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    1,
		Message: message,
		Data:    data,
	})
}

// Error converts err into its status and envelope. Errors that are not
// AppErrors are reported as a server error without leaking details.
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		appErr = apperrors.Server("Server error", err)
	}
	if appErr.Code == apperrors.ErrCodeServer {
		_ = c.Error(err)
	}
	c.JSON(appErr.Status(), Response{
		Code:    0,
		Message: appErr.Message,
		Error:   appErr.Code,
	})
}

// Abort is Error followed by aborting the handler chain.
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// BadRequest replies 400 VALIDATION_ERROR
func BadRequest(c *gin.Context, message string) {
	Error(c, apperrors.Validation(message))
}

// Unauthorized replies 401
func Unauthorized(c *gin.Context, message string) {
	Error(c, apperrors.Unauthorized(message))
}

// Forbidden replies 403
func Forbidden(c *gin.Context, message string) {
	Error(c, apperrors.Forbidden(message))
}

// NotFound replies 404
func NotFound(c *gin.Context, message string) {
	Error(c, apperrors.NotFound(message))
}
