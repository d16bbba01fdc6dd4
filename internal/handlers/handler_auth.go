package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/apperrors"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
	portssvc "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/services"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/dto"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/middleware"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/platform/config"
)

// AuthHandler handles staff authentication.
type AuthHandler struct {
	staffService portssvc.StaffSvcFacade
	cfg          *config.Config
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(staffService portssvc.StaffSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{staffService: staffService, cfg: cfg}
}

// Login godoc
// @Summary Staff login
// @Description Authenticates a staff member and returns a signed JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Staff credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	staff, err := h.staffService.Authenticate(c.Request.Context(), req.StaffCode, req.Password)
	if err != nil {
		// Unknown code and wrong password both answer 401 so the response
		// does not reveal which one it was.
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid staff code or password"})
			return
		}
		handleServiceError(c, err)
		return
	}

	token, err := h.generateToken(staff)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to sign token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, Staff: dto.ToStaffResponse(staff)})
}

func (h *AuthHandler) generateToken(staff *domain.Staff) (string, error) {
	now := time.Now()
	claims := middleware.AuthClaims{
		Role:      string(staff.Role),
		StaffCode: staff.StaffCode,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   staff.StaffID,
			Issuer:    h.cfg.JWTIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.cfg.JWTExpiryDuration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}
