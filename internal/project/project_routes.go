package project

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	projects := r.Group("/projects")
	{
		projects.GET("", h.GetAll)
		projects.POST("", h.Create)
		projects.DELETE("/:projectId", h.Delete)
		projects.PUT("/:projectId/current", h.SetCurrent)
	}
	r.GET("/company", h.GetCompanyProfile)
	r.PUT("/company", h.UpdateCompanyProfile)
}
