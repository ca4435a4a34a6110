package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/grange_backend/middlewares"
	"github.com/mmdatafocus/grange_backend/utils"
)

// refreshTokenHandler reads the refresh credential from the request and
// rotates both credentials for the calling ip.
func (s *server) refreshTokenHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		refreshToken := middlewares.RequestToken(c)
		if refreshToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh token is required"})
			return
		}
		auth, err := s.store.Users.Refresh(c.Request.Context(), refreshToken, c.ClientIP())
		if err != nil {
			c.JSON(httpStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, auth)
	}
}

func (s *server) revokeTokenHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := utils.GetUserIdFromContext(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if err := s.store.Users.Revoke(c.Request.Context(), userId); err != nil {
			c.JSON(httpStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"revoked": true})
	}
}

func httpStatus(err error) int {
	switch utils.KindOf(err) {
	case utils.KindUnauthenticated:
		return http.StatusUnauthorized
	case utils.KindForbidden:
		return http.StatusForbidden
	case utils.KindInvalidInput:
		return http.StatusBadRequest
	case utils.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
