package project

import "go-proyek/internal/state"

type CreateProjectRequest struct {
	Name          string `json:"name" binding:"required"`
	ClientName    string `json:"client_name"`
	ClientAddress string `json:"client_address"`
	StartDate     string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate       string `json:"end_date" binding:"required,datetime=2006-01-02"`
}

type CompanyProfileRequest struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
	Director string `json:"director"`
	City     string `json:"city"`
}

type ProjectResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	ClientName      string `json:"client_name"`
	ClientAddress   string `json:"client_address"`
	CurrentPeriodID string `json:"current_period_id"`
	IsCurrent       bool   `json:"is_current"`
}

type CompanyProfileResponse struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Director string `json:"director"`
	City     string `json:"city"`
}

func mapToResponse(p state.Project, currentProjectID string) ProjectResponse {
	return ProjectResponse{
		ID:              p.ID,
		Name:            p.Name,
		ClientName:      p.ClientName,
		ClientAddress:   p.ClientAddress,
		CurrentPeriodID: p.CurrentPeriodID,
		IsCurrent:       p.ID == currentProjectID,
	}
}
