package sync

import (
	"net/http"

	"go-proyek/internal/shared/apperror"
	"go-proyek/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	syncer *Syncer
}

func NewHandler(syncer *Syncer) *Handler {
	return &Handler{syncer: syncer}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetStatus(c *gin.Context) {
	response.Success(c, http.StatusOK, StatusResponse{
		CloudID: h.syncer.CloudID(),
		Status:  string(h.syncer.Status()),
	}, nil)
}

func (h *Handler) SetCloudID(c *gin.Context) {
	var req SetCloudIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	if err := h.syncer.SetCloudID(c.Request.Context(), req.CloudID); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, StatusResponse{CloudID: req.CloudID, Status: string(h.syncer.Status())}, nil)
}

func (h *Handler) ClearCloudID(c *gin.Context) {
	if err := h.syncer.ClearCloudID(c.Request.Context()); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cleared": true}, nil)
}

func (h *Handler) CreateDocument(c *gin.Context) {
	id, err := h.syncer.CreateDocument(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, StatusResponse{CloudID: id, Status: string(h.syncer.Status())}, nil)
}

func (h *Handler) Load(c *gin.Context) {
	var req LoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	if err := h.syncer.Load(c.Request.Context(), req.CloudID); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, StatusResponse{CloudID: req.CloudID, Status: string(h.syncer.Status())}, nil)
}
