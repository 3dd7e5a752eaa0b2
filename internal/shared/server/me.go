package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/shared/server/middleware"
	"jobboard-backend/internal/shared/server/respond"
)

// registerMeRoutes attaches the /me endpoint.
func registerMeRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", meHandler)
}

func meHandler(c *gin.Context) {
	p := middleware.PrincipalFromContext(c)
	if p.ID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"id":   p.ID,
		"name": p.Name,
		"role": string(p.Role),
	})
}
