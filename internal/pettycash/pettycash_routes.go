package pettycash

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	pettyCash := r.Group("/projects/:projectId/petty-cash")
	{
		pettyCash.GET("", h.GetByProject)
		pettyCash.PUT("", h.Replace)
		pettyCash.DELETE("", h.Clear)
		pettyCash.POST("/import", h.Import)
	}
}
