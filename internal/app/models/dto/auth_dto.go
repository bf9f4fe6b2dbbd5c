package dto

import (
	"github.com/placementcell/portal/internal/app/models"
)

// RegisterStudentRequest is the self-service student registration payload.
type RegisterStudentRequest struct {
	RollNo        string  `json:"roll_no" binding:"required,min=2,max=20"`
	FullName      string  `json:"full_name" binding:"required,min=2,max=100"`
	Email         string  `json:"email" binding:"required,email"`
	Password      string  `json:"password" binding:"required,min=6"`
	Phone         string  `json:"phone" binding:"required"`
	Branch        string  `json:"branch" binding:"required,min=2,max=100"`
	Class         string  `json:"class" binding:"required,oneof=FE SE TE BE"`
	Division      *string `json:"division,omitempty"`
	Marks10th     float64 `json:"marks_10th" binding:"gte=0,lte=100"`
	Marks12th     float64 `json:"marks_12th" binding:"gte=0,lte=100"`
	CurrentCGPA   float64 `json:"current_cgpa" binding:"gte=0,lte=10"`
	ActiveBacklog bool    `json:"active_backlog"`
}

// LoginRequest carries credentials plus the declared account kind.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"user_type" binding:"required,oneof=student admin"`
}

// AuthUser is the identity snapshot returned with a token.
type AuthUser struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
	Role     string `json:"role,omitempty"`
	RollNo   string `json:"roll_no,omitempty"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	Token     string   `json:"token"`
	ExpiresIn int      `json:"expires_in"`
	User      AuthUser `json:"user"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	StudentID int64  `json:"student_id"`
}

// VerifyResponse reports the identity bound to a presented token.
type VerifyResponse struct {
	Success bool     `json:"success"`
	User    AuthUser `json:"user"`
}

// AuthUserFromStudent builds the wire identity for a student account.
func AuthUserFromStudent(s *models.Student) AuthUser {
	return AuthUser{
		ID:       s.ID,
		Name:     s.FullName,
		Email:    s.Email,
		UserType: string(models.SubjectStudent),
		RollNo:   s.RollNo,
	}
}

// AuthUserFromAdmin builds the wire identity for an admin account.
func AuthUserFromAdmin(a *models.AdminUser) AuthUser {
	return AuthUser{
		ID:       a.ID,
		Name:     a.FullName,
		Email:    a.Email,
		UserType: string(models.SubjectAdmin),
		Role:     string(a.Role),
	}
}

// AuthUserFromIdentity builds the wire identity for either account kind.
func AuthUserFromIdentity(id models.Identity) AuthUser {
	if id.Kind == models.SubjectAdmin {
		return AuthUserFromAdmin(id.Admin)
	}
	return AuthUserFromStudent(id.Student)
}
