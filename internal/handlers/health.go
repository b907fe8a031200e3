package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/kubev2v/search-task-gang/api/v1"
)

// GetHealth returns the service status and the worker pool counters
// (GET /health)
func (h *Handler) GetHealth(c *gin.Context) {
	resp := v1.Health{Status: "ok"}
	resp.Workers.FromModel(h.scheduler.Stats())
	c.JSON(http.StatusOK, resp)
}
