package v1

import (
	"github.com/gin-gonic/gin"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /health)
	GetHealth(c *gin.Context)
	// (POST /searches)
	CreateSearch(c *gin.Context)
}

// RegisterHandlers adds each server route to the router.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	router.GET("/health", si.GetHealth)
	router.POST("/searches", si.CreateSearch)
}
