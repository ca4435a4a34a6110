package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mmdatafocus/grange_backend/utils"
)

const CorrelationHeader = "X-Correlation-Id"

// SessionMiddleware records the client address and a correlation id for the request.
// The refresh token of a session is keyed by the client address.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationId := c.GetHeader(CorrelationHeader)
		if _, err := uuid.Parse(correlationId); err != nil {
			correlationId = uuid.NewString()
		}
		c.Header(CorrelationHeader, correlationId)

		ctx := utils.SetClientIPInContext(c.Request.Context(), c.ClientIP())
		ctx = utils.SetCorrelationIdInContext(ctx, correlationId)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
