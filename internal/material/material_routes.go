package material

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/periods/:periodId/materials", h.GetByPeriod)
	r.PUT("/projects/:projectId/materials", h.ReplaceForProject)
	r.POST("/projects/:projectId/materials/import", h.Import)
}
