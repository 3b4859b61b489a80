package middleware

import (
	"crm/services/logger"

	"github.com/gin-gonic/gin"
)

// ErrorLogger logs the errors handlers attached to the context, which are
// the server errors reported by response.Error.
func ErrorLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		requestID, _ := c.Get("requestId")
		for _, e := range c.Errors {
			log.Error("%s %s [%v]: %v", c.Request.Method, c.FullPath(), requestID, e.Err)
		}
	}
}
