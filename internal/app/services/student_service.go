package services

import (
	"context"
	"strings"

	"github.com/placementcell/portal/internal/app/models"
	"github.com/placementcell/portal/internal/app/models/dto"
	"github.com/placementcell/portal/internal/pkg/apperrors"
	"github.com/placementcell/portal/internal/pkg/logger"
	"github.com/placementcell/portal/internal/pkg/validation"
)

// StudentService handles a student's own profile and application history.
type StudentService struct {
	studentRepo     StudentStore
	applicationRepo ApplicationStore
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo StudentStore, applicationRepo ApplicationStore) *StudentService {
	return &StudentService{
		studentRepo:     studentRepo,
		applicationRepo: applicationRepo,
	}
}

// GetProfile returns the student's own record.
func (s *StudentService) GetProfile(ctx context.Context, studentID int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, studentID)
}

// UpdateProfile applies the self-editable fields. Identity and academic
// history fields (roll number, email, marks, class) stay fixed.
func (s *StudentService) UpdateProfile(ctx context.Context, studentID int64, req dto.UpdateStudentProfileRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	verr := &apperrors.ValidationError{}
	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if len(name) < validation.NameMinLength {
			verr.Add("full_name", "must be at least 2 characters")
		} else {
			student.FullName = name
		}
	}
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		if !validation.IsValidPhone(phone) {
			verr.Add("phone", "must be a valid phone number")
		} else {
			student.Phone = phone
		}
	}
	if req.CurrentCGPA != nil {
		if !validation.InRange(*req.CurrentCGPA, 0, 10) {
			verr.Add("current_cgpa", "must be between 0 and 10")
		} else {
			student.CurrentCGPA = *req.CurrentCGPA
		}
	}
	if verr.HasViolations() {
		return nil, verr
	}

	if req.Division != nil {
		student.Division = req.Division
	}
	if req.ActiveBacklog != nil {
		student.ActiveBacklog = *req.ActiveBacklog
	}

	if err := s.studentRepo.UpdateProfile(ctx, student); err != nil {
		return nil, err
	}

	logger.Info().Int64("student_id", studentID).Msg("Student profile updated")
	return student, nil
}

// ListApplications returns every application the student has submitted.
func (s *StudentService) ListApplications(ctx context.Context, studentID int64) ([]models.Application, error) {
	return s.applicationRepo.ListByStudent(ctx, studentID)
}
