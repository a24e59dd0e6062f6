package settlement

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pboachie/pi-lotto/internal/config"
	"github.com/pboachie/pi-lotto/internal/domain"
	"github.com/pboachie/pi-lotto/internal/domain/mocks"
	"github.com/pboachie/pi-lotto/internal/infrastructure/lock"
	"github.com/pboachie/pi-lotto/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

type settlementMocks struct {
	engine  *mocks.MockTransactionEngine
	txRepo  *mocks.MockTransactionRepository
	user    *mocks.MockUserRepository
	game    *mocks.MockGameRepository
	ticket  *mocks.MockTicketRepository
	payment *mocks.MockPaymentService
}

func newTestUseCase(ctrl *gomock.Controller) (*settlementUseCase, *settlementMocks) {
	m := &settlementMocks{
		engine:  mocks.NewMockTransactionEngine(ctrl),
		txRepo:  mocks.NewMockTransactionRepository(ctrl),
		user:    mocks.NewMockUserRepository(ctrl),
		game:    mocks.NewMockGameRepository(ctrl),
		ticket:  mocks.NewMockTicketRepository(ctrl),
		payment: mocks.NewMockPaymentService(ctrl),
	}
	useCase := &settlementUseCase{
		engine:          m.engine,
		transactionRepo: m.txRepo,
		userRepo:        m.user,
		gameRepo:        m.game,
		ticketRepo:      m.ticket,
		paymentService:  m.payment,
		lockManager:     lock.NewUserLockManager(),
		db:              nil,
		cfg: &config.Config{
			Lotto: config.LottoConfig{
				NetworkFee:    0.01,
				MinWithdrawal: 0.019,
			},
		},
		logger: logger.NewLogger("test", "debug"),
	}
	return useCase, m
}

func createTestUser(balance float64) *domain.User {
	return &domain.User{
		ID:       123,
		UID:      "pi_user_abc",
		Username: "test_user",
		Balance:  balance,
		Active:   true,
	}
}

func createTestGame() *domain.Game {
	return &domain.Game{
		ID:         7,
		GameTypeID: 1,
		Name:       "Pi-Lotto 2026-08",
		EntryFee:   2.0,
		Status:     domain.GameStatusActive,
		EndTime:    time.Now().Add(72 * time.Hour),
	}
}

func activeGameConfigs() map[string]string {
	return map[string]string{
		domain.ConfigKeyServiceFee:  "0.0125",
		domain.ConfigKeyMaxPlayers:  "0",
		domain.ConfigKeyNumberRange: `{"main":[1,50],"power":[1,20]}`,
	}
}

func TestValidateNumbers(t *testing.T) {
	rng := domain.NumberRange{Main: [2]int{1, 50}, Power: [2]int{1, 20}}

	tests := []struct {
		name        string
		numbers     []int
		powerNumber int
		expectError bool
	}{
		{
			name:        "Valid_Ticket",
			numbers:     []int{1, 2, 3, 4, 5},
			powerNumber: 6,
		},
		{
			name:        "Boundary_Values",
			numbers:     []int{1, 13, 25, 37, 50},
			powerNumber: 20,
		},
		{
			name:        "Too_Few_Numbers",
			numbers:     []int{1, 2, 3, 4},
			powerNumber: 6,
			expectError: true,
		},
		{
			name:        "Too_Many_Numbers",
			numbers:     []int{1, 2, 3, 4, 5, 6},
			powerNumber: 6,
			expectError: true,
		},
		{
			name:        "Duplicate_Number",
			numbers:     []int{1, 2, 3, 3, 5},
			powerNumber: 6,
			expectError: true,
		},
		{
			name:        "Number_Above_Range",
			numbers:     []int{1, 2, 3, 4, 51},
			powerNumber: 6,
			expectError: true,
		},
		{
			name:        "Number_Below_Range",
			numbers:     []int{0, 2, 3, 4, 5},
			powerNumber: 6,
			expectError: true,
		},
		{
			name:        "Power_Number_Out_Of_Range",
			numbers:     []int{1, 2, 3, 4, 5},
			powerNumber: 21,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateNumbers(tt.numbers, tt.powerNumber, rng)
			if tt.expectError {
				appErr, ok := domain.IsAppError(err)
				assert.True(t, ok)
				assert.Equal(t, domain.ErrCodeInvalidNumbers, appErr.Code)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestQuoteTicket(t *testing.T) {
	numbers := []int{4, 8, 15, 16, 23}
	powerNumber := 12

	t.Run("Prices_And_Reserves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		useCase, m := newTestUseCase(ctrl)

		m.user.EXPECT().GetByUID("pi_user_abc").Return(createTestUser(10.0), nil)
		m.game.EXPECT().GetByID(uint(7)).Return(createTestGame(), nil)
		m.game.EXPECT().GetConfigs(uint(7)).Return(activeGameConfigs(), nil)
		m.engine.EXPECT().Create(gomock.Any()).DoAndReturn(func(input domain.CreateTransactionInput) (*domain.Transaction, error) {
			assert.Equal(t, uint(123), input.UserID)
			assert.Equal(t, domain.TransactionTypeLottoEntry, input.TransactionType)
			assert.InDelta(t, 2.0225, input.Amount, 1e-9)
			return &domain.Transaction{ID: "quote-tx-1", Status: domain.TransactionStatusPending}, nil
		})

		quote, err := useCase.QuoteTicket("pi_user_abc", 7, numbers, powerNumber)
		assert.NoError(t, err)
		assert.Equal(t, "quote-tx-1", quote.TxID)
		assert.Equal(t, 2.0, quote.TicketPrice)
		assert.Equal(t, 0.01, quote.BaseFee)
		assert.Equal(t, 0.0125, quote.ServiceFee)
		assert.InDelta(t, 2.0225, quote.TotalCost(), 1e-9)
	})

	t.Run("Insufficient_Balance_Reserves_Nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		useCase, m := newTestUseCase(ctrl)

		m.user.EXPECT().GetByUID("pi_user_abc").Return(createTestUser(1.0), nil)
		m.game.EXPECT().GetByID(uint(7)).Return(createTestGame(), nil)
		m.game.EXPECT().GetConfigs(uint(7)).Return(activeGameConfigs(), nil)

		quote, err := useCase.QuoteTicket("pi_user_abc", 7, numbers, powerNumber)
		assert.Nil(t, quote)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeInsufficientFunds, appErr.Code)
	})

	t.Run("Ended_Game_Rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		useCase, m := newTestUseCase(ctrl)

		ended := createTestGame()
		ended.EndTime = time.Now().Add(-time.Hour)
		m.user.EXPECT().GetByUID("pi_user_abc").Return(createTestUser(10.0), nil)
		m.game.EXPECT().GetByID(uint(7)).Return(ended, nil)

		quote, err := useCase.QuoteTicket("pi_user_abc", 7, numbers, powerNumber)
		assert.Nil(t, quote)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeGameNotActive, appErr.Code)
	})
}

func reservationData(txID string) *domain.TransactionData {
	return &domain.TransactionData{
		TransactionID: txID,
		Data: datatypes.JSON(`{
			"game_id": 7,
			"ticket_price": 2.0,
			"base_fee": 0.01,
			"service_fee": 0.0125,
			"lotto_numbers": [4, 8, 15, 16, 23],
			"power_number": 12
		}`),
	}
}

func pendingReservation(txID string) *domain.Transaction {
	return &domain.Transaction{
		ID:              txID,
		UserID:          123,
		Amount:          2.0225,
		TransactionType: domain.TransactionTypeLottoEntry,
		Status:          domain.TransactionStatusPending,
	}
}

func TestSubmitTicket(t *testing.T) {
	txID := "quote-tx-1"

	t.Run("Settles_Reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		useCase, m := newTestUseCase(ctrl)

		m.user.EXPECT().GetByUID("pi_user_abc").Return(createTestUser(10.0), nil)
		m.txRepo.EXPECT().GetByID(txID).Return(pendingReservation(txID), nil)
		m.txRepo.EXPECT().GetData(txID).Return(reservationData(txID), nil)
		m.game.EXPECT().GetByID(uint(7)).Return(createTestGame(), nil)
		m.game.EXPECT().GetConfigs(uint(7)).Return(activeGameConfigs(), nil)
		m.ticket.EXPECT().Create(gomock.Any()).DoAndReturn(func(ticket *domain.Ticket) error {
			assert.Equal(t, "4,8,15,16,23", ticket.NumbersPlayed)
			assert.Equal(t, 12, ticket.PowerNumber)
			ticket.ID = 42
			return nil
		})
		m.ticket.EXPECT().CreateStats(gomock.Any()).Return(nil)
		m.engine.EXPECT().Complete(txID, "internal:"+txID).Return(pendingReservation(txID), nil)

		ticket, err := useCase.SubmitTicket("pi_user_abc", txID)
		assert.NoError(t, err)
		assert.Equal(t, uint(42), ticket.ID)
		assert.Equal(t, txID, ticket.TransactionID)
	})

	t.Run("Failed_Debit_Compensates_Ticket_Rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		useCase, m := newTestUseCase(ctrl)

		m.user.EXPECT().GetByUID("pi_user_abc").Return(createTestUser(10.0), nil)
		m.txRepo.EXPECT().GetByID(txID).Return(pendingReservation(txID), nil)
		m.txRepo.EXPECT().GetData(txID).Return(reservationData(txID), nil)
		m.game.EXPECT().GetByID(uint(7)).Return(createTestGame(), nil)
		m.game.EXPECT().GetConfigs(uint(7)).Return(activeGameConfigs(), nil)
		m.ticket.EXPECT().Create(gomock.Any()).DoAndReturn(func(ticket *domain.Ticket) error {
			ticket.ID = 42
			return nil
		})
		m.ticket.EXPECT().CreateStats(gomock.Any()).DoAndReturn(func(stats *domain.LottoStats) error {
			stats.ID = 77
			return nil
		})
		m.engine.EXPECT().Complete(txID, "internal:"+txID).Return(nil, domain.NewPersistenceError("complete transaction", errors.New("deadlock")))
		// Only the stats row created by this purchase is deleted, by its own
		// primary key; earlier purchases' rows for the same user and game stay.
		m.ticket.EXPECT().DeleteStats(uint(77)).Return(nil)
		m.ticket.EXPECT().Delete(uint(42)).Return(nil)

		ticket, err := useCase.SubmitTicket("pi_user_abc", txID)
		assert.Nil(t, ticket)
		assert.Error(t, err)
	})

	t.Run("Replayed_Submit_Keeps_Ticket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		useCase, m := newTestUseCase(ctrl)

		m.user.EXPECT().GetByUID("pi_user_abc").Return(createTestUser(10.0), nil)
		m.txRepo.EXPECT().GetByID(txID).Return(pendingReservation(txID), nil)
		m.txRepo.EXPECT().GetData(txID).Return(reservationData(txID), nil)
		m.game.EXPECT().GetByID(uint(7)).Return(createTestGame(), nil)
		m.game.EXPECT().GetConfigs(uint(7)).Return(activeGameConfigs(), nil)
		m.ticket.EXPECT().Create(gomock.Any()).Return(nil)
		m.ticket.EXPECT().CreateStats(gomock.Any()).Return(nil)
		m.engine.EXPECT().Complete(txID, "internal:"+txID).Return(nil, domain.NewAlreadySettledError(txID))

		ticket, err := useCase.SubmitTicket("pi_user_abc", txID)
		assert.NoError(t, err)
		assert.NotNil(t, ticket)
	})

	t.Run("Settled_Reservation_Returns_Issued_Ticket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		useCase, m := newTestUseCase(ctrl)

		settled := pendingReservation(txID)
		settled.Status = domain.TransactionStatusCompleted
		issued := &domain.Ticket{ID: 42, UserID: 123, GameID: 7, TransactionID: txID}
		m.user.EXPECT().GetByUID("pi_user_abc").Return(createTestUser(10.0), nil)
		m.txRepo.EXPECT().GetByID(txID).Return(settled, nil)
		m.ticket.EXPECT().GetByTransactionID(txID).Return(issued, nil)

		ticket, err := useCase.SubmitTicket("pi_user_abc", txID)
		assert.NoError(t, err)
		assert.Same(t, issued, ticket)
	})

	t.Run("Cancelled_Reservation_Rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		useCase, m := newTestUseCase(ctrl)

		cancelled := pendingReservation(txID)
		cancelled.Status = domain.TransactionStatusCancelled
		m.user.EXPECT().GetByUID("pi_user_abc").Return(createTestUser(10.0), nil)
		m.txRepo.EXPECT().GetByID(txID).Return(cancelled, nil)

		ticket, err := useCase.SubmitTicket("pi_user_abc", txID)
		assert.Nil(t, ticket)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeInvalidState, appErr.Code)
	})

	t.Run("Foreign_Reservation_Rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		useCase, m := newTestUseCase(ctrl)

		foreign := pendingReservation(txID)
		foreign.UserID = 999
		m.user.EXPECT().GetByUID("pi_user_abc").Return(createTestUser(10.0), nil)
		m.txRepo.EXPECT().GetByID(txID).Return(foreign, nil)

		ticket, err := useCase.SubmitTicket("pi_user_abc", txID)
		assert.Nil(t, ticket)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeUnauthorized, appErr.Code)
	})

	t.Run("Full_Game_Rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		useCase, m := newTestUseCase(ctrl)

		configs := activeGameConfigs()
		configs[domain.ConfigKeyMaxPlayers] = "500"
		m.user.EXPECT().GetByUID("pi_user_abc").Return(createTestUser(10.0), nil)
		m.txRepo.EXPECT().GetByID(txID).Return(pendingReservation(txID), nil)
		m.txRepo.EXPECT().GetData(txID).Return(reservationData(txID), nil)
		m.game.EXPECT().GetByID(uint(7)).Return(createTestGame(), nil)
		m.game.EXPECT().GetConfigs(uint(7)).Return(configs, nil)
		m.ticket.EXPECT().CountByGameID(uint(7)).Return(int64(500), nil)

		ticket, err := useCase.SubmitTicket("pi_user_abc", txID)
		assert.Nil(t, ticket)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeGameFull, appErr.Code)
	})
}
