package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ConfirmDelete guards destructive routes. The client must resend the
// request with ?confirm=true after showing its confirmation dialog;
// anything else is rejected before the handler runs.
func ConfirmDelete() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("confirm") != "true" {
			c.AbortWithStatusJSON(http.StatusPreconditionRequired, gin.H{
				"error": "deletion requires confirmation, retry with confirm=true",
			})
			return
		}
		c.Next()
	}
}
