package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/grange_backend/utils"
)

// RequestToken reads the access token from the Authorization header, the
// x-token header or the token query parameter, in that order.
func RequestToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		return utils.BearerToken(auth)
	}
	if token := c.GetHeader("x-token"); token != "" {
		return token
	}
	return c.Query("token")
}

// AuthMiddleware puts the principal of a valid access token in the request
// context. Requests without a token pass through anonymous; an invalid token
// is rejected.
func AuthMiddleware(tokens *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := RequestToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := tokens.ValidateAccess(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		ctx := utils.SetTokenInContext(c.Request.Context(), token)
		ctx = utils.SetUserIdInContext(ctx, claims.UserId)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
