package dto

import (
	"time"

	"github.com/placementcell/portal/internal/app/models"
)

// CompanyResponse is the wire representation of a company.
type CompanyResponse struct {
	ID          int64   `json:"company_id"`
	Name        string  `json:"company_name"`
	Type        string  `json:"company_type"`
	Industry    *string `json:"industry"`
	Description *string `json:"company_description"`
	Website     *string `json:"website"`
	LogoPath    *string `json:"logo_path"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

// NewCompanyResponse maps a company model to its wire form.
func NewCompanyResponse(c *models.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Type:        c.Type,
		Industry:    c.Industry,
		Description: c.Description,
		Website:     c.Website,
		LogoPath:    c.LogoPath,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}

// CompanyListResponse is the paginated company listing.
type CompanyListResponse struct {
	Success    bool              `json:"success"`
	Companies  []CompanyResponse `json:"companies"`
	Pagination PaginationInfo    `json:"pagination"`
}

// CompanyDetailResponse wraps a single company and its open postings.
type CompanyDetailResponse struct {
	Success bool            `json:"success"`
	Company CompanyResponse `json:"company"`
	Jobs    []JobResponse   `json:"open_jobs,omitempty"`
}

// CreateCompanyRequest is the admin payload for registering a company.
type CreateCompanyRequest struct {
	Name        string  `json:"company_name" binding:"required,min=2,max=200"`
	Type        string  `json:"company_type" binding:"omitempty,max=100"`
	Industry    *string `json:"industry,omitempty"`
	Description *string `json:"company_description,omitempty"`
	Website     *string `json:"website,omitempty" binding:"omitempty,url"`
	LogoPath    *string `json:"logo_path,omitempty"`
}

// UpdateCompanyRequest is the admin payload for editing a company. Absent
// fields keep their stored values.
type UpdateCompanyRequest struct {
	Name        *string `json:"company_name,omitempty" binding:"omitempty,min=2,max=200"`
	Type        *string `json:"company_type,omitempty" binding:"omitempty,max=100"`
	Industry    *string `json:"industry,omitempty"`
	Description *string `json:"company_description,omitempty"`
	Website     *string `json:"website,omitempty" binding:"omitempty,url"`
	LogoPath    *string `json:"logo_path,omitempty"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
}

// CompanyFilterRequest captures company listing filters.
type CompanyFilterRequest struct {
	Industry string `form:"industry"`
	Search   string `form:"search"`
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=20"`
}
