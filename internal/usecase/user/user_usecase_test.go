package user

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pboachie/pi-lotto/internal/config"
	"github.com/pboachie/pi-lotto/internal/domain"
	"github.com/pboachie/pi-lotto/internal/domain/mocks"
	"github.com/pboachie/pi-lotto/internal/infrastructure/auth"
	"github.com/pboachie/pi-lotto/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
)

func newTestUseCase(userRepo domain.UserRepository, paymentService domain.PaymentService) *userUseCase {
	return &userUseCase{
		userRepo:       userRepo,
		paymentService: paymentService,
		jwtService: auth.NewJWTService(&config.JWTConfig{
			Secret:        "test-secret",
			Expiry:        time.Hour,
			RefreshExpiry: 24 * time.Hour,
		}),
		logger: logger.NewLogger("test", "debug"),
	}
}

func signInRequest() domain.AuthResult {
	return domain.AuthResult{AccessToken: "provider-access-token"}
}

func verifiedIdentity(scopes ...string) *domain.AuthResult {
	return &domain.AuthResult{
		UID:         "pi_user_abc",
		Username:    "test_user",
		Scopes:      scopes,
		AccessToken: "provider-access-token",
	}
}

func TestSignIn(t *testing.T) {
	t.Run("First_SignIn_Creates_User", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := mocks.NewMockUserRepository(ctrl)
		mockPaymentSvc := mocks.NewMockPaymentService(ctrl)
		useCase := newTestUseCase(mockUserRepo, mockPaymentSvc)

		mockPaymentSvc.EXPECT().VerifyAuth("provider-access-token").Return(verifiedIdentity(domain.ScopePayments), nil)
		mockUserRepo.EXPECT().GetByUID("pi_user_abc").Return(nil, nil)
		mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *domain.User) error {
			assert.Equal(t, "pi_user_abc", user.UID)
			assert.Equal(t, "test_user", user.Username)
			assert.True(t, user.Active)
			assert.Zero(t, user.Balance)
			user.ID = 123
			return nil
		})
		mockUserRepo.EXPECT().GetScopes(uint(123)).Return(nil, nil)
		mockUserRepo.EXPECT().SaveScope(gomock.Any()).DoAndReturn(func(scope *domain.UserScope) error {
			assert.Equal(t, domain.ScopePayments, scope.Scope)
			assert.True(t, scope.Active)
			return nil
		})

		user, tokens, err := useCase.SignIn(signInRequest())
		assert.NoError(t, err)
		assert.Equal(t, uint(123), user.ID)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
	})

	t.Run("Rejected_Access_Token_Issues_Nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := mocks.NewMockUserRepository(ctrl)
		mockPaymentSvc := mocks.NewMockPaymentService(ctrl)
		useCase := newTestUseCase(mockUserRepo, mockPaymentSvc)

		mockPaymentSvc.EXPECT().VerifyAuth("garbage-token").Return(nil, &domain.PaymentServiceError{
			StatusCode: 401,
			Code:       "UNAUTHORIZED",
			Message:    "invalid access token",
		})
		// No user repo expectations: a bad token must never touch the store.

		user, tokens, err := useCase.SignIn(domain.AuthResult{
			UID:         "victim_uid",
			Username:    "victim",
			Scopes:      []string{domain.ScopePayments},
			AccessToken: "garbage-token",
		})
		assert.Nil(t, user)
		assert.Nil(t, tokens)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeUnauthorized, appErr.Code)
	})

	t.Run("Provider_Identity_Overrides_Client_Claims", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := mocks.NewMockUserRepository(ctrl)
		mockPaymentSvc := mocks.NewMockPaymentService(ctrl)
		useCase := newTestUseCase(mockUserRepo, mockPaymentSvc)

		// The client claims someone else's uid and the payments scope; the
		// provider says the token belongs to pi_user_abc with no scopes.
		mockPaymentSvc.EXPECT().VerifyAuth("provider-access-token").Return(verifiedIdentity(), nil)
		existing := &domain.User{ID: 123, UID: "pi_user_abc", Username: "test_user", Active: true}
		mockUserRepo.EXPECT().GetByUID("pi_user_abc").Return(existing, nil)
		mockUserRepo.EXPECT().GetScopes(uint(123)).Return(nil, nil)

		forged := domain.AuthResult{
			UID:         "victim_uid",
			Username:    "victim",
			Scopes:      []string{domain.ScopePayments},
			AccessToken: "provider-access-token",
		}
		user, _, err := useCase.SignIn(forged)
		assert.NoError(t, err)
		assert.Equal(t, "pi_user_abc", user.UID)
	})

	t.Run("Provider_Outage_Is_Unavailable_Not_Unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := mocks.NewMockUserRepository(ctrl)
		mockPaymentSvc := mocks.NewMockPaymentService(ctrl)
		useCase := newTestUseCase(mockUserRepo, mockPaymentSvc)

		mockPaymentSvc.EXPECT().VerifyAuth("provider-access-token").Return(nil, errors.New("connection refused"))

		user, tokens, err := useCase.SignIn(signInRequest())
		assert.Nil(t, user)
		assert.Nil(t, tokens)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeProviderUnavailable, appErr.Code)
	})

	t.Run("Revoked_Scope_Is_Deactivated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := mocks.NewMockUserRepository(ctrl)
		mockPaymentSvc := mocks.NewMockPaymentService(ctrl)
		useCase := newTestUseCase(mockUserRepo, mockPaymentSvc)

		mockPaymentSvc.EXPECT().VerifyAuth("provider-access-token").Return(verifiedIdentity("username"), nil)
		existing := &domain.User{ID: 123, UID: "pi_user_abc", Username: "test_user", Active: true}
		mockUserRepo.EXPECT().GetByUID("pi_user_abc").Return(existing, nil)
		mockUserRepo.EXPECT().GetScopes(uint(123)).Return([]*domain.UserScope{
			{ID: 1, UserID: 123, Scope: "username", Active: true},
			{ID: 2, UserID: 123, Scope: domain.ScopePayments, Active: true},
		}, nil)
		// payments revoked by the provider, username still granted.
		mockUserRepo.EXPECT().SaveScope(gomock.Any()).DoAndReturn(func(scope *domain.UserScope) error {
			assert.Equal(t, domain.ScopePayments, scope.Scope)
			assert.False(t, scope.Active)
			return nil
		})

		_, _, err := useCase.SignIn(signInRequest())
		assert.NoError(t, err)
	})

	t.Run("Regranted_Scope_Is_Reactivated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := mocks.NewMockUserRepository(ctrl)
		mockPaymentSvc := mocks.NewMockPaymentService(ctrl)
		useCase := newTestUseCase(mockUserRepo, mockPaymentSvc)

		mockPaymentSvc.EXPECT().VerifyAuth("provider-access-token").Return(verifiedIdentity(domain.ScopePayments), nil)
		existing := &domain.User{ID: 123, UID: "pi_user_abc", Username: "test_user", Active: true}
		mockUserRepo.EXPECT().GetByUID("pi_user_abc").Return(existing, nil)
		mockUserRepo.EXPECT().GetScopes(uint(123)).Return([]*domain.UserScope{
			{ID: 2, UserID: 123, Scope: domain.ScopePayments, Active: false},
		}, nil)
		mockUserRepo.EXPECT().SaveScope(gomock.Any()).DoAndReturn(func(scope *domain.UserScope) error {
			assert.Equal(t, uint(2), scope.ID)
			assert.True(t, scope.Active)
			return nil
		})

		_, _, err := useCase.SignIn(signInRequest())
		assert.NoError(t, err)
	})

	t.Run("Username_Drift_Is_Synced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := mocks.NewMockUserRepository(ctrl)
		mockPaymentSvc := mocks.NewMockPaymentService(ctrl)
		useCase := newTestUseCase(mockUserRepo, mockPaymentSvc)

		mockPaymentSvc.EXPECT().VerifyAuth("provider-access-token").Return(verifiedIdentity(), nil)
		existing := &domain.User{ID: 123, UID: "pi_user_abc", Username: "old_name", Active: true}
		mockUserRepo.EXPECT().GetByUID("pi_user_abc").Return(existing, nil)
		mockUserRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(user *domain.User) error {
			assert.Equal(t, "test_user", user.Username)
			return nil
		})
		mockUserRepo.EXPECT().GetScopes(uint(123)).Return(nil, nil)

		user, _, err := useCase.SignIn(signInRequest())
		assert.NoError(t, err)
		assert.Equal(t, "test_user", user.Username)
	})

	t.Run("Deactivated_Account_Rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := mocks.NewMockUserRepository(ctrl)
		mockPaymentSvc := mocks.NewMockPaymentService(ctrl)
		useCase := newTestUseCase(mockUserRepo, mockPaymentSvc)

		mockPaymentSvc.EXPECT().VerifyAuth("provider-access-token").Return(verifiedIdentity(), nil)
		existing := &domain.User{ID: 123, UID: "pi_user_abc", Username: "test_user", Active: false}
		mockUserRepo.EXPECT().GetByUID("pi_user_abc").Return(existing, nil)

		user, tokens, err := useCase.SignIn(signInRequest())
		assert.Nil(t, user)
		assert.Nil(t, tokens)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeUnauthorized, appErr.Code)
	})

	t.Run("Missing_Access_Token_Rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		useCase := newTestUseCase(mocks.NewMockUserRepository(ctrl), mocks.NewMockPaymentService(ctrl))

		user, tokens, err := useCase.SignIn(domain.AuthResult{UID: "pi_user_abc", Username: "test_user"})
		assert.Nil(t, user)
		assert.Nil(t, tokens)
		assert.Error(t, err)
	})
}

func TestHasActiveScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	useCase := newTestUseCase(mockUserRepo, mocks.NewMockPaymentService(ctrl))

	mockUserRepo.EXPECT().GetScopes(uint(123)).Return([]*domain.UserScope{
		{UserID: 123, Scope: domain.ScopePayments, Active: true},
	}, nil).Times(2)

	has, err := useCase.HasActiveScope(123, domain.ScopePayments)
	assert.NoError(t, err)
	assert.True(t, has)

	has, err = useCase.HasActiveScope(123, "wallet_address")
	assert.NoError(t, err)
	assert.False(t, has)
}

func TestGetBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	useCase := newTestUseCase(mockUserRepo, mocks.NewMockPaymentService(ctrl))

	t.Run("Returns_Ledger_Balance", func(t *testing.T) {
		mockUserRepo.EXPECT().GetByUID("pi_user_abc").Return(&domain.User{ID: 123, Balance: 7.9875}, nil)

		balance, err := useCase.GetBalance("pi_user_abc")
		assert.NoError(t, err)
		assert.Equal(t, 7.9875, balance)
	})

	t.Run("Unknown_User", func(t *testing.T) {
		mockUserRepo.EXPECT().GetByUID("pi_user_zzz").Return(nil, nil)

		_, err := useCase.GetBalance("pi_user_zzz")
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeNotFound, appErr.Code)
	})
}
