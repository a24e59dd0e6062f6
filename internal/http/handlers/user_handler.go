package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pboachie/pi-lotto/internal/domain"
	"github.com/pboachie/pi-lotto/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userUseCase domain.UserUseCase
	logger      *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUseCase domain.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// SignInRequest carries the identity provider's auth result
type SignInRequest struct {
	AuthResult domain.AuthResult `json:"authResult" binding:"required"`
}

// SignInResponse represents the sign-in response body
type SignInResponse struct {
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// BalanceResponse represents the balance response body
type BalanceResponse struct {
	Balance float64 `json:"balance" example:"12.5"`
}

// SignIn authenticates a user with the provider's auth result
// @Summary Sign in
// @Description Upsert the user from the provider auth result and issue local tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Provider auth result"
// @Success 200 {object} SignInResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /auth/signin [post]
func (h *UserHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewErrorResponse(domain.NewValidationError("authResult", "invalid request body")))
		return
	}

	user, tokens, err := h.userUseCase.SignIn(req.AuthResult)
	if err != nil {
		h.logger.Error("Sign-in failed",
			zap.String("uid", req.AuthResult.UID),
			zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SignInResponse{
		User:         user,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// GetUserInfo returns the authenticated user
// @Summary Get current user
// @Description Return the authenticated user's profile and balance
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetUserInfo(c *gin.Context) {
	uid, ok := getAuthenticatedUID(c)
	if !ok {
		return
	}

	user, err := h.userUseCase.GetUserInfo(uid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetBalance returns the authenticated user's ledger balance
// @Summary Get balance
// @Description Return the authenticated user's current balance
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} BalanceResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /users/me/balance [get]
func (h *UserHandler) GetBalance(c *gin.Context) {
	uid, ok := getAuthenticatedUID(c)
	if !ok {
		return
	}

	balance, err := h.userUseCase.GetBalance(uid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{Balance: balance})
}
