package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/placementcell/portal/internal/app/models/dto"
	"github.com/placementcell/portal/internal/app/services"
	"github.com/placementcell/portal/internal/middleware"
	"github.com/placementcell/portal/internal/pkg/apperrors"
)

// AuthController handles registration, login and token verification.
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register handles POST /api/auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Validation failed").WithErrors(dto.FieldErrorsFromBinding(err)))
		return
	}

	id, err := ctrl.authService.RegisterStudent(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Success:   true,
		Message:   "Registration successful",
		StudentID: id,
	})
}

// Login handles POST /api/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Validation failed").WithErrors(dto.FieldErrorsFromBinding(err)))
		return
	}

	token, identity, err := ctrl.authService.Login(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Success:   true,
		Message:   "Login successful",
		Token:     token,
		ExpiresIn: int(ctrl.authService.TokenExpirySeconds()),
		User:      dto.AuthUserFromIdentity(*identity),
	})
}

// Verify handles GET /api/auth/verify
func (ctrl *AuthController) Verify(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrUnauthenticated)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyResponse{
		Success: true,
		User:    dto.AuthUserFromIdentity(*identity),
	})
}
