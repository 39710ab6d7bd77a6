package sync

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	sync := r.Group("/sync")
	{
		sync.GET("/status", h.GetStatus)
		sync.PUT("/cloud-id", h.SetCloudID)
		sync.DELETE("/cloud-id", h.ClearCloudID)
		sync.POST("/document", h.CreateDocument)
		sync.POST("/load", h.Load)
	}
}
