package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// RequestID propaga el id del request entrante o genera uno nuevo,
// para poder correlacionar los logs de gin.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Writer.Header().Set(HeaderRequestID, id)
		c.Set("requestID", id)
		c.Next()
	}
}
