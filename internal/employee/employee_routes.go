package employee

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/projects/:projectId/employees", h.GetAll)
	r.POST("/projects/:projectId/employees", h.Create)
	r.POST("/projects/:projectId/employees/import", h.Import)
	r.PUT("/employees/:id", h.Update)
	r.DELETE("/employees/:id", h.Delete)
}
