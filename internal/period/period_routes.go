package period

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/projects/:projectId/periods", h.GetAllForProject)
	r.POST("/projects/:projectId/periods", h.Create)
	r.PUT("/projects/:projectId/periods/:periodId/current", h.SetCurrent)
	r.PUT("/periods/:periodId", h.Update)
}
