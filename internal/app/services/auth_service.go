package services

import (
	"context"
	"errors"
	"strings"

	"github.com/placementcell/portal/internal/app/models"
	"github.com/placementcell/portal/internal/app/models/dto"
	"github.com/placementcell/portal/internal/pkg/apperrors"
	"github.com/placementcell/portal/internal/pkg/auth"
	"github.com/placementcell/portal/internal/pkg/logger"
	"github.com/placementcell/portal/internal/pkg/validation"
)

// dummyHash keeps password comparison time flat when the account does not
// exist, so login timing does not reveal which emails are registered.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// AuthService handles registration, login and token verification for both
// account kinds.
type AuthService struct {
	studentRepo StudentStore
	adminRepo   AdminStore
	jwtService  *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(studentRepo StudentStore, adminRepo AdminStore, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		studentRepo: studentRepo,
		adminRepo:   adminRepo,
		jwtService:  jwtService,
	}
}

// RegisterStudent validates and creates a self-service student account.
func (s *AuthService) RegisterStudent(ctx context.Context, req dto.RegisterStudentRequest) (int64, error) {
	if verr := validateRegistration(req); verr.HasViolations() {
		return 0, verr
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		return 0, err
	}

	student := &models.Student{
		RollNo:        strings.ToUpper(strings.TrimSpace(req.RollNo)),
		FullName:      strings.TrimSpace(req.FullName),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:  hash,
		Phone:         strings.TrimSpace(req.Phone),
		Branch:        strings.TrimSpace(req.Branch),
		Class:         models.StudentClass(req.Class),
		Division:      req.Division,
		Marks10th:     req.Marks10th,
		Marks12th:     req.Marks12th,
		CurrentCGPA:   req.CurrentCGPA,
		ActiveBacklog: req.ActiveBacklog,
	}

	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return 0, err
	}

	logger.Info().Int64("student_id", id).Str("roll_no", student.RollNo).Msg("Student registered")
	return id, nil
}

func validateRegistration(req dto.RegisterStudentRequest) *apperrors.ValidationError {
	verr := &apperrors.ValidationError{}

	if !validation.IsValidEmail(strings.TrimSpace(req.Email)) {
		verr.Add("email", "must be a valid email address")
	}
	if !validation.IsValidPhone(strings.TrimSpace(req.Phone)) {
		verr.Add("phone", "must be a valid phone number")
	}
	if !validation.IsValidRollNo(strings.TrimSpace(req.RollNo)) {
		verr.Add("roll_no", "must be 2-20 alphanumeric characters")
	}
	if len(req.Password) < validation.PasswordMinLength {
		verr.Add("password", "must be at least 6 characters")
	}
	if !models.IsValidStudentClass(req.Class) {
		verr.Add("class", "must be one of: FE, SE, TE, BE")
	}
	if !validation.InRange(req.Marks10th, 0, 100) {
		verr.Add("marks_10th", "must be between 0 and 100")
	}
	if !validation.InRange(req.Marks12th, 0, 100) {
		verr.Add("marks_12th", "must be between 0 and 100")
	}
	if !validation.InRange(req.CurrentCGPA, 0, 10) {
		verr.Add("current_cgpa", "must be between 0 and 10")
	}

	return verr
}

// Login authenticates the declared account kind and issues a token. Missing
// accounts and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (string, *models.Identity, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var identity *models.Identity
	switch models.SubjectKind(req.UserType) {
	case models.SubjectStudent:
		student, err := s.studentRepo.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, apperrors.ErrStudentNotFound) {
				_ = auth.CheckPassword(dummyHash, req.Password)
				return "", nil, apperrors.ErrInvalidCredentials
			}
			return "", nil, err
		}
		if student.Status != models.StatusActive {
			return "", nil, apperrors.ErrAccountInactive
		}
		if !auth.CheckPassword(student.PasswordHash, req.Password) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		identity = models.StudentIdentity(student)

	case models.SubjectAdmin:
		admin, err := s.adminRepo.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, apperrors.ErrAdminNotFound) {
				_ = auth.CheckPassword(dummyHash, req.Password)
				return "", nil, apperrors.ErrInvalidCredentials
			}
			return "", nil, err
		}
		if !admin.IsActive {
			return "", nil, apperrors.ErrAccountInactive
		}
		if !auth.CheckPassword(admin.PasswordHash, req.Password) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		if err := s.adminRepo.UpdateLastLogin(ctx, admin.ID); err != nil {
			logger.Warn().Err(err).Int64("admin_id", admin.ID).Msg("Could not stamp last login")
		}
		identity = models.AdminIdentity(admin)

	default:
		return "", nil, apperrors.NewBadRequestError("user_type must be 'student' or 'admin'")
	}

	token, err := s.jwtService.Issue(identity.SubjectID(), string(identity.Kind))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to issue token")
		return "", nil, err
	}

	logger.Info().Int64("subject_id", identity.SubjectID()).
		Str("subject_kind", string(identity.Kind)).Msg("Login successful")
	return token, identity, nil
}

// VerifyToken validates a token and resolves the live account behind it.
// A token whose account has since been deactivated is rejected.
func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (*models.Identity, error) {
	claims, err := s.jwtService.Verify(tokenString)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	switch models.SubjectKind(claims.SubjectKind) {
	case models.SubjectStudent:
		student, err := s.studentRepo.GetByID(ctx, claims.SubjectID)
		if err != nil {
			return nil, apperrors.ErrTokenInvalid
		}
		if student.Status != models.StatusActive {
			return nil, apperrors.ErrAccountInactive
		}
		return models.StudentIdentity(student), nil

	case models.SubjectAdmin:
		admin, err := s.adminRepo.GetByID(ctx, claims.SubjectID)
		if err != nil {
			return nil, apperrors.ErrTokenInvalid
		}
		if !admin.IsActive {
			return nil, apperrors.ErrAccountInactive
		}
		return models.AdminIdentity(admin), nil
	}

	return nil, apperrors.ErrTokenInvalid
}

// TokenExpirySeconds exposes the configured token validity.
func (s *AuthService) TokenExpirySeconds() int64 {
	return s.jwtService.TokenExpirySeconds()
}
