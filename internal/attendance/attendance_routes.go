package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	attendances := r.Group("/periods/:periodId/attendance")
	{
		attendances.GET("", h.GetByPeriod)
		attendances.POST("/toggle", h.Toggle)
		attendances.POST("/overtime", h.SetOvertime)
		attendances.PUT("", h.Replace)
	}
}
