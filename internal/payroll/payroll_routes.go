package payroll

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/periods/:periodId/payroll", h.GetPeriodPayroll)
	r.GET("/projects/:projectId/payroll", h.GetProjectPayroll)
}
