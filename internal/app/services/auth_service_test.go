package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/placementcell/portal/internal/app/models"
	"github.com/placementcell/portal/internal/app/models/dto"
	"github.com/placementcell/portal/internal/pkg/apperrors"
	"github.com/placementcell/portal/internal/pkg/auth"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "unit-test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "placement-portal-test",
	})
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}

func validRegistration() dto.RegisterStudentRequest {
	return dto.RegisterStudentRequest{
		RollNo:      "CS2021042",
		FullName:    "Asha Patil",
		Email:       "asha@example.edu",
		Password:    "secret123",
		Phone:       "9876543210",
		Branch:      "Computer",
		Class:       "BE",
		Marks10th:   88.4,
		Marks12th:   82.0,
		CurrentCGPA: 8.1,
	}
}

func TestRegisterStudent(t *testing.T) {
	t.Parallel()

	students := newFakeStudentStore()
	svc := NewAuthService(students, newFakeAdminStore(), testJWTService())

	id, err := svc.RegisterStudent(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if id == 0 {
		t.Fatal("expected nonzero student id")
	}

	stored, err := students.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if stored.Email != "asha@example.edu" {
		t.Errorf("email = %q", stored.Email)
	}
	if stored.PasswordHash == "secret123" {
		t.Error("password stored in plaintext")
	}
}

func TestRegisterStudentValidation(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(newFakeStudentStore(), newFakeAdminStore(), testJWTService())

	req := validRegistration()
	req.Email = "not-an-email"
	req.Phone = "123"
	req.Class = "ME"
	req.CurrentCGPA = 11

	_, err := svc.RegisterStudent(context.Background(), req)

	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Violations) != 4 {
		t.Fatalf("expected 4 violations, got %d: %+v", len(verr.Violations), verr.Violations)
	}
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Error("ValidationError must unwrap to ErrValidationFailed")
	}
}

func TestRegisterStudentDuplicate(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(newFakeStudentStore(), newFakeAdminStore(), testJWTService())

	if _, err := svc.RegisterStudent(context.Background(), validRegistration()); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.RegisterStudent(context.Background(), validRegistration())
	if !errors.Is(err, apperrors.ErrDuplicateIdentity) {
		t.Fatalf("expected ErrDuplicateIdentity, got %v", err)
	}
}

func TestLoginStudent(t *testing.T) {
	t.Parallel()

	students := newFakeStudentStore(&models.Student{
		FullName:     "Asha Patil",
		Email:        "asha@example.edu",
		PasswordHash: mustHash(t, "secret123"),
		Status:       models.StatusActive,
	})
	jwtSvc := testJWTService()
	svc := NewAuthService(students, newFakeAdminStore(), jwtSvc)

	token, identity, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "asha@example.edu",
		Password: "secret123",
		UserType: "student",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if identity.Kind != models.SubjectStudent {
		t.Errorf("kind = %v", identity.Kind)
	}

	claims, err := jwtSvc.Verify(token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if claims.SubjectKind != "student" {
		t.Errorf("subject kind = %q", claims.SubjectKind)
	}
}

func TestLoginEnumerationResistance(t *testing.T) {
	t.Parallel()

	students := newFakeStudentStore(&models.Student{
		Email:        "known@example.edu",
		PasswordHash: mustHash(t, "rightpass"),
		Status:       models.StatusActive,
	})
	svc := NewAuthService(students, newFakeAdminStore(), testJWTService())

	_, _, errUnknown := svc.Login(context.Background(), dto.LoginRequest{
		Email: "unknown@example.edu", Password: "whatever", UserType: "student",
	})
	_, _, errWrongPass := svc.Login(context.Background(), dto.LoginRequest{
		Email: "known@example.edu", Password: "wrongpass", UserType: "student",
	})

	if !errors.Is(errUnknown, apperrors.ErrInvalidCredentials) {
		t.Fatalf("unknown account: %v", errUnknown)
	}
	if !errors.Is(errWrongPass, apperrors.ErrInvalidCredentials) {
		t.Fatalf("wrong password: %v", errWrongPass)
	}
	if errUnknown.Error() != errWrongPass.Error() {
		t.Error("unknown-account and wrong-password errors must be indistinguishable")
	}
}

func TestLoginInactiveStudent(t *testing.T) {
	t.Parallel()

	students := newFakeStudentStore(&models.Student{
		Email:        "gone@example.edu",
		PasswordHash: mustHash(t, "secret123"),
		Status:       models.StatusInactive,
	})
	svc := NewAuthService(students, newFakeAdminStore(), testJWTService())

	_, _, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "gone@example.edu", Password: "secret123", UserType: "student",
	})
	if !errors.Is(err, apperrors.ErrAccountInactive) {
		t.Fatalf("expected ErrAccountInactive, got %v", err)
	}
}

// An inactive account is reported inactive even when the password is wrong,
// so deactivation is never masked behind a credential error.
func TestLoginInactiveBeforePasswordCheck(t *testing.T) {
	t.Parallel()

	students := newFakeStudentStore(&models.Student{
		Email:        "gone@example.edu",
		PasswordHash: mustHash(t, "secret123"),
		Status:       models.StatusInactive,
	})
	svc := NewAuthService(students, newFakeAdminStore(), testJWTService())

	_, _, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "gone@example.edu", Password: "wrongpass", UserType: "student",
	})
	if !errors.Is(err, apperrors.ErrAccountInactive) {
		t.Fatalf("expected ErrAccountInactive, got %v", err)
	}
}

func TestLoginAdminStampsLastLogin(t *testing.T) {
	t.Parallel()

	admins := newFakeAdminStore(&models.AdminUser{
		Email:        "tpo@placement.local",
		PasswordHash: mustHash(t, "adminpass"),
		Role:         models.RoleTPO,
		IsActive:     true,
	})
	svc := NewAuthService(newFakeStudentStore(), admins, testJWTService())

	_, identity, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "tpo@placement.local", Password: "adminpass", UserType: "admin",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if identity.RoleTag() != "tpo" {
		t.Errorf("role tag = %q", identity.RoleTag())
	}
	if len(admins.lastLogins) != 1 {
		t.Error("expected last login to be stamped")
	}
}

// A student credential presented with the admin kind must not authenticate.
func TestLoginKindMismatch(t *testing.T) {
	t.Parallel()

	students := newFakeStudentStore(&models.Student{
		Email:        "asha@example.edu",
		PasswordHash: mustHash(t, "secret123"),
		Status:       models.StatusActive,
	})
	svc := NewAuthService(students, newFakeAdminStore(), testJWTService())

	_, _, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "asha@example.edu", Password: "secret123", UserType: "admin",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestVerifyToken(t *testing.T) {
	t.Parallel()

	students := newFakeStudentStore(&models.Student{
		Email:        "asha@example.edu",
		PasswordHash: mustHash(t, "secret123"),
		Status:       models.StatusActive,
	})
	jwtSvc := testJWTService()
	svc := NewAuthService(students, newFakeAdminStore(), jwtSvc)

	token, _, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "asha@example.edu", Password: "secret123", UserType: "student",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	identity, err := svc.VerifyToken(context.Background(), token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if identity.Kind != models.SubjectStudent {
		t.Errorf("kind = %v", identity.Kind)
	}

	if _, err := svc.VerifyToken(context.Background(), "garbage"); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	t.Parallel()

	expiredJWT := auth.NewJWTService(auth.JWTConfig{
		SecretKey: "unit-test-secret",
		TokenExp:  -time.Minute,
	})
	token, err := expiredJWT.Issue(1, "student")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	svc := NewAuthService(newFakeStudentStore(), newFakeAdminStore(), expiredJWT)
	if _, err := svc.VerifyToken(context.Background(), token); !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

// A valid token whose account was deactivated afterwards must be rejected.
func TestVerifyTokenDeactivatedAccount(t *testing.T) {
	t.Parallel()

	student := &models.Student{
		Email:        "asha@example.edu",
		PasswordHash: mustHash(t, "secret123"),
		Status:       models.StatusActive,
	}
	students := newFakeStudentStore(student)
	svc := NewAuthService(students, newFakeAdminStore(), testJWTService())

	token, _, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "asha@example.edu", Password: "secret123", UserType: "student",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	student.Status = models.StatusInactive
	if _, err := svc.VerifyToken(context.Background(), token); !errors.Is(err, apperrors.ErrAccountInactive) {
		t.Fatalf("expected ErrAccountInactive, got %v", err)
	}
}
