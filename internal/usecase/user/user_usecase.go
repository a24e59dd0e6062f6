package user

import (
	"errors"

	"github.com/pboachie/pi-lotto/internal/domain"
	"github.com/pboachie/pi-lotto/internal/infrastructure/auth"
	"github.com/pboachie/pi-lotto/internal/infrastructure/logger"
	"go.uber.org/zap"
)

type userUseCase struct {
	userRepo       domain.UserRepository
	paymentService domain.PaymentService
	jwtService     auth.JWTService
	logger         *logger.Logger
}

// NewUserUseCase creates a new user use case
func NewUserUseCase(
	userRepo domain.UserRepository,
	paymentService domain.PaymentService,
	jwtService auth.JWTService,
	logger *logger.Logger,
) domain.UserUseCase {
	logger.Info("UserUseCase initialized successfully")
	return &userUseCase{
		userRepo:       userRepo,
		paymentService: paymentService,
		jwtService:     jwtService,
		logger:         logger,
	}
}

// SignIn verifies the access token with the identity provider, upserts the
// user from the identity the provider returns, syncs the granted scopes
// and issues a local token pair. Nothing the client claims about its own
// uid, username or scopes is trusted; the provider's answer is canonical.
// First sign-in creates the user with a zero balance.
func (u *userUseCase) SignIn(input domain.AuthResult) (*domain.User, *domain.TokenPair, error) {
	if input.AccessToken == "" {
		return nil, nil, domain.NewValidationError("auth_result", "access token is required")
	}

	result, err := u.paymentService.VerifyAuth(input.AccessToken)
	if err != nil {
		var svcErr *domain.PaymentServiceError
		if errors.As(err, &svcErr) && svcErr.Is4xxError() {
			u.logger.Warn("Sign-in with rejected access token", zap.Error(err))
			return nil, nil, domain.NewUnauthorizedError("Invalid access token")
		}
		return nil, nil, domain.NewProviderUnavailableError("verify auth", err)
	}

	u.logger.Info("User signing in",
		zap.String("uid", result.UID),
		zap.String("username", result.Username))

	if result.UID == "" || result.Username == "" {
		return nil, nil, domain.NewUnauthorizedError("Identity provider returned an incomplete identity")
	}

	user, err := u.userRepo.GetByUID(result.UID)
	if err != nil {
		return nil, nil, domain.NewPersistenceError("load user", err)
	}
	if user == nil {
		user = &domain.User{
			UID:      result.UID,
			Username: result.Username,
			Active:   true,
		}
		if err := u.userRepo.Create(user); err != nil {
			return nil, nil, domain.NewPersistenceError("create user", err)
		}
		u.logger.Info("User created",
			zap.String("uid", result.UID),
			zap.Uint("userID", user.ID))
	} else if user.Username != result.Username {
		user.Username = result.Username
		if err := u.userRepo.Update(user); err != nil {
			return nil, nil, domain.NewPersistenceError("update user", err)
		}
	}

	if !user.Active {
		return nil, nil, domain.NewUnauthorizedError("Account is deactivated")
	}

	if err := u.syncScopes(user.ID, result.Scopes); err != nil {
		return nil, nil, err
	}

	access, refresh, err := u.jwtService.GenerateTokenPair(user.UID, user.Username, result.Scopes)
	if err != nil {
		return nil, nil, domain.NewInternalError("Failed to issue tokens", err)
	}

	u.logger.Info("User signed in successfully",
		zap.String("uid", result.UID),
		zap.Uint("userID", user.ID))
	return user, &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// syncScopes reconciles stored scope rows against the grants in the auth
// result: newly granted scopes are created or reactivated, revoked ones
// deactivated. Rows are never deleted.
func (u *userUseCase) syncScopes(userID uint, granted []string) error {
	stored, err := u.userRepo.GetScopes(userID)
	if err != nil {
		return domain.NewPersistenceError("load user scopes", err)
	}

	grantedSet := make(map[string]bool, len(granted))
	for _, s := range granted {
		grantedSet[s] = true
	}

	storedSet := make(map[string]*domain.UserScope, len(stored))
	for _, s := range stored {
		storedSet[s.Scope] = s
	}

	for scope := range grantedSet {
		existing, ok := storedSet[scope]
		if !ok {
			if err := u.userRepo.SaveScope(&domain.UserScope{
				UserID: userID,
				Scope:  scope,
				Active: true,
			}); err != nil {
				return domain.NewPersistenceError("save user scope", err)
			}
			continue
		}
		if !existing.Active {
			existing.Active = true
			if err := u.userRepo.SaveScope(existing); err != nil {
				return domain.NewPersistenceError("save user scope", err)
			}
		}
	}

	for scope, existing := range storedSet {
		if !grantedSet[scope] && existing.Active {
			existing.Active = false
			if err := u.userRepo.SaveScope(existing); err != nil {
				return domain.NewPersistenceError("save user scope", err)
			}
		}
	}
	return nil
}

// GetUserInfo returns the stored user for the given uid
func (u *userUseCase) GetUserInfo(uid string) (*domain.User, error) {
	user, err := u.userRepo.GetByUID(uid)
	if err != nil {
		return nil, domain.NewPersistenceError("load user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User")
	}
	return user, nil
}

// GetBalance returns the user's current ledger balance
func (u *userUseCase) GetBalance(uid string) (float64, error) {
	user, err := u.GetUserInfo(uid)
	if err != nil {
		return 0, err
	}
	return user.Balance, nil
}

// HasActiveScope reports whether the user currently holds the scope
func (u *userUseCase) HasActiveScope(userID uint, scope string) (bool, error) {
	scopes, err := u.userRepo.GetScopes(userID)
	if err != nil {
		return false, domain.NewPersistenceError("load user scopes", err)
	}
	for _, s := range scopes {
		if s.Scope == scope && s.Active {
			return true, nil
		}
	}
	return false, nil
}
