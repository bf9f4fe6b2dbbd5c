package services

import (
	"context"
	"strings"

	"github.com/placementcell/portal/internal/app/models"
	"github.com/placementcell/portal/internal/app/models/dto"
	"github.com/placementcell/portal/internal/app/repositories"
	"github.com/placementcell/portal/internal/pkg/apperrors"
	"github.com/placementcell/portal/internal/pkg/logger"
)

// CompanyService handles the company directory and admin-side maintenance.
type CompanyService struct {
	companyRepo CompanyStore
	jobRepo     JobStore
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo CompanyStore, jobRepo JobStore) *CompanyService {
	return &CompanyService{companyRepo: companyRepo, jobRepo: jobRepo}
}

// List returns companies matching the filter.
func (s *CompanyService) List(ctx context.Context, filter repositories.CompanyFilter, page, pageSize int) ([]models.Company, int64, error) {
	return s.companyRepo.List(ctx, filter, page, pageSize)
}

// Get returns one active company together with its open postings. An
// inactive company is indistinguishable from a missing one.
func (s *CompanyService) Get(ctx context.Context, id int64) (*models.Company, []models.JobPosting, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if company.Status != models.StatusActive {
		return nil, nil, apperrors.ErrCompanyNotFound
	}

	jobs, _, err := s.jobRepo.List(ctx, repositories.JobFilter{
		Status:    string(models.JobOpen),
		CompanyID: id,
	}, 1, companyJobsPageSize)
	if err != nil {
		return nil, nil, err
	}

	return company, jobs, nil
}

// companyJobsPageSize bounds the postings embedded in a company detail.
const companyJobsPageSize = 50

// Create registers a new company.
func (s *CompanyService) Create(ctx context.Context, req dto.CreateCompanyRequest) (*models.Company, error) {
	company := &models.Company{
		Name:        strings.TrimSpace(req.Name),
		Type:        strings.TrimSpace(req.Type),
		Industry:    req.Industry,
		Description: req.Description,
		Website:     req.Website,
		LogoPath:    req.LogoPath,
	}

	id, err := s.companyRepo.Create(ctx, company)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("company_id", id).Str("company_name", company.Name).Msg("Company registered")
	return s.companyRepo.GetByID(ctx, id)
}

// Update applies the provided fields to an existing company. Absent fields
// keep their stored values.
func (s *CompanyService) Update(ctx context.Context, id int64, req dto.UpdateCompanyRequest) (*models.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		company.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		company.Type = strings.TrimSpace(*req.Type)
	}
	if req.Industry != nil {
		company.Industry = req.Industry
	}
	if req.Description != nil {
		company.Description = req.Description
	}
	if req.Website != nil {
		company.Website = req.Website
	}
	if req.LogoPath != nil {
		company.LogoPath = req.LogoPath
	}
	if req.Status != nil {
		company.Status = models.AccountStatus(*req.Status)
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}

	logger.Info().Int64("company_id", id).Msg("Company updated")
	return s.companyRepo.GetByID(ctx, id)
}
