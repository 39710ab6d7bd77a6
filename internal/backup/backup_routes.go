package backup

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/backup", h.Export)
	r.POST("/backup/restore", h.Restore)
}
