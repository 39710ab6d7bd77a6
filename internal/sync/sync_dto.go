package sync

type SetCloudIDRequest struct {
	CloudID string `json:"cloud_id" binding:"required"`
}

type LoadRequest struct {
	CloudID string `json:"cloud_id" binding:"required"`
}

type StatusResponse struct {
	CloudID string `json:"cloud_id"`
	Status  string `json:"status"`
}
