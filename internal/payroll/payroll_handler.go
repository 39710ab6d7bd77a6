package payroll

import (
	"net/http"

	"go-proyek/internal/shared/apperror"
	"go-proyek/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetPeriodPayroll(c *gin.Context) {
	resp, err := h.service.GetPeriodPayroll(c.Request.Context(), c.Param("periodId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetProjectPayroll(c *gin.Context) {
	resp, err := h.service.GetProjectPayroll(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
