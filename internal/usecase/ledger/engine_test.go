package ledger

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pboachie/pi-lotto/internal/domain"
	"github.com/pboachie/pi-lotto/internal/domain/mocks"
	"github.com/pboachie/pi-lotto/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// fakeTxManager satisfies the engine's transaction seam without a live
// database; mocked repositories ignore the nil handle they are bound to.
type fakeTxManager struct {
	commits   int
	rollbacks int
}

func (f *fakeTxManager) Begin() (*gorm.DB, error) { return nil, nil }
func (f *fakeTxManager) Commit(tx *gorm.DB) error { f.commits++; return nil }
func (f *fakeTxManager) Rollback(tx *gorm.DB)     { f.rollbacks++ }

func newTestEngine(txRepo domain.TransactionRepository, userRepo domain.UserRepository, paymentRepo domain.PaymentRepository) (*Engine, *fakeTxManager) {
	txm := &fakeTxManager{}
	return &Engine{
		transactionRepo: txRepo,
		userRepo:        userRepo,
		paymentRepo:     paymentRepo,
		txm:             txm,
		logger:          logger.NewLogger("test", "debug"),
	}, txm
}

func TestSignedAmount(t *testing.T) {
	tests := []struct {
		name            string
		transactionType domain.TransactionType
		amount          float64
		expected        float64
		expectError     bool
	}{
		{
			name:            "Deposit_Credits",
			transactionType: domain.TransactionTypeDeposit,
			amount:          12.5,
			expected:        12.5,
		},
		{
			name:            "GameWinnings_Credit",
			transactionType: domain.TransactionTypeGameWinnings,
			amount:          3.0,
			expected:        3.0,
		},
		{
			name:            "LottoWinnings_Credit",
			transactionType: domain.TransactionTypeLottoWinnings,
			amount:          100.0,
			expected:        100.0,
		},
		{
			name:            "Withdrawal_Debits",
			transactionType: domain.TransactionTypeWithdrawal,
			amount:          5.0,
			expected:        -5.0,
		},
		{
			name:            "GameEntry_Debit",
			transactionType: domain.TransactionTypeGameEntry,
			amount:          2.0,
			expected:        -2.0,
		},
		{
			name:            "LottoEntry_Debit",
			transactionType: domain.TransactionTypeLottoEntry,
			amount:          2.0125,
			expected:        -2.0125,
		},
		{
			name:            "Unknown_Type_Rejected",
			transactionType: domain.TransactionType("refund"),
			amount:          1.0,
			expectError:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta, err := SignedAmount(tt.amount, tt.transactionType)
			if tt.expectError {
				assert.Error(t, err)
				appErr, ok := domain.IsAppError(err)
				assert.True(t, ok)
				assert.Equal(t, domain.ErrCodeInvalidTransactionType, appErr.Code)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, delta)
		})
	}
}

func TestCreate_InputValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, _ := newTestEngine(
		mocks.NewMockTransactionRepository(ctrl),
		mocks.NewMockUserRepository(ctrl),
		mocks.NewMockPaymentRepository(ctrl),
	)

	tests := []struct {
		name         string
		input        domain.CreateTransactionInput
		expectedCode string
	}{
		{
			name: "Zero_Amount",
			input: domain.CreateTransactionInput{
				UserID:          1,
				Amount:          0,
				TransactionType: domain.TransactionTypeDeposit,
			},
			expectedCode: domain.ErrCodeInvalidAmount,
		},
		{
			name: "Negative_Amount",
			input: domain.CreateTransactionInput{
				UserID:          1,
				Amount:          -3,
				TransactionType: domain.TransactionTypeDeposit,
			},
			expectedCode: domain.ErrCodeInvalidAmount,
		},
		{
			name: "Unknown_Transaction_Type",
			input: domain.CreateTransactionInput{
				UserID:          1,
				Amount:          5,
				TransactionType: domain.TransactionType("chargeback"),
			},
			expectedCode: domain.ErrCodeInvalidTransactionType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := engine.Create(tt.input)
			assert.Nil(t, tx)
			assert.Error(t, err)
			appErr, ok := domain.IsAppError(err)
			assert.True(t, ok)
			assert.Equal(t, tt.expectedCode, appErr.Code)
		})
	}
}

func TestAttachPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txID := "6e6f2c1a-4f5c-4a33-8f55-9d6c7e1b2a30"

	t.Run("Attaches_When_Absent", func(t *testing.T) {
		mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
		engine, _ := newTestEngine(mockTxRepo, nil, nil)

		mockTxRepo.EXPECT().GetData(txID).Return(nil, nil)
		mockTxRepo.EXPECT().CreateData(gomock.Any()).DoAndReturn(func(data *domain.TransactionData) error {
			assert.Equal(t, txID, data.TransactionID)
			assert.JSONEq(t, `{"amount":2.0125}`, string(data.Data))
			return nil
		})

		err := engine.attachPayload(mockTxRepo, txID, map[string]interface{}{"amount": 2.0125})
		assert.NoError(t, err)
	})

	t.Run("Discards_Second_Attach", func(t *testing.T) {
		mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
		engine, _ := newTestEngine(mockTxRepo, nil, nil)

		stored := &domain.TransactionData{
			TransactionID: txID,
			Data:          datatypes.JSON(`{"amount":2.0125}`),
		}
		mockTxRepo.EXPECT().GetData(txID).Return(stored, nil)

		err := engine.attachPayload(mockTxRepo, txID, map[string]interface{}{"amount": 99.0})
		assert.NoError(t, err)
	})

	t.Run("Lookup_Failure_Propagates", func(t *testing.T) {
		mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
		engine, _ := newTestEngine(mockTxRepo, nil, nil)

		mockTxRepo.EXPECT().GetData(txID).Return(nil, errors.New("connection reset"))

		err := engine.attachPayload(mockTxRepo, txID, map[string]interface{}{"amount": 2.0125})
		assert.Error(t, err)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodePersistence, appErr.Code)
	})
}

func TestIneligibleTransitionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txID := "a5d1c0fe-23b8-4a3f-8c6e-0d9b1e2f3a41"

	t.Run("Missing_Transaction_Is_NotFound", func(t *testing.T) {
		mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
		engine, _ := newTestEngine(mockTxRepo, nil, nil)

		mockTxRepo.EXPECT().GetByID(txID).Return(nil, nil)

		err := engine.ineligibleTransitionError(txID, "approved")
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Wrong_Status_Is_InvalidState", func(t *testing.T) {
		mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
		engine, _ := newTestEngine(mockTxRepo, nil, nil)

		mockTxRepo.EXPECT().GetByID(txID).Return(&domain.Transaction{
			ID:     txID,
			Status: domain.TransactionStatusCancelled,
		}, nil)

		err := engine.ineligibleTransitionError(txID, "approved")
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeInvalidState, appErr.Code)
		assert.Contains(t, appErr.Message, "cancelled")
	})
}

func TestApplyBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Credit_Adds", func(t *testing.T) {
		mockUserRepo := mocks.NewMockUserRepository(ctrl)
		engine, _ := newTestEngine(nil, mockUserRepo, nil)

		mockUserRepo.EXPECT().AddBalance(uint(123), 12.5).Return(int64(1), nil)

		err := engine.applyBalance(mockUserRepo, 123, 12.5, domain.TransactionTypeDeposit)
		assert.NoError(t, err)
	})

	t.Run("Debit_Subtracts", func(t *testing.T) {
		mockUserRepo := mocks.NewMockUserRepository(ctrl)
		engine, _ := newTestEngine(nil, mockUserRepo, nil)

		mockUserRepo.EXPECT().AddBalance(uint(123), -2.0125).Return(int64(1), nil)

		err := engine.applyBalance(mockUserRepo, 123, 2.0125, domain.TransactionTypeLottoEntry)
		assert.NoError(t, err)
	})

	t.Run("Missing_User", func(t *testing.T) {
		mockUserRepo := mocks.NewMockUserRepository(ctrl)
		engine, _ := newTestEngine(nil, mockUserRepo, nil)

		mockUserRepo.EXPECT().AddBalance(uint(999), 5.0).Return(int64(0), nil)

		err := engine.applyBalance(mockUserRepo, 999, 5.0, domain.TransactionTypeDeposit)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Unknown_Type_Never_Touches_Balance", func(t *testing.T) {
		mockUserRepo := mocks.NewMockUserRepository(ctrl)
		engine, _ := newTestEngine(nil, mockUserRepo, nil)

		err := engine.applyBalance(mockUserRepo, 123, 5.0, domain.TransactionType("bonus"))
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeInvalidTransactionType, appErr.Code)
	})
}

func eligibleForSettlement() []domain.TransactionStatus {
	return []domain.TransactionStatus{
		domain.TransactionStatusPending,
		domain.TransactionStatusApproved,
	}
}

func TestCreate(t *testing.T) {
	t.Run("Creates_Pending_With_Log", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
		engine, txm := newTestEngine(mockTxRepo, nil, nil)

		mockTxRepo.EXPECT().WithTransaction(gomock.Any()).Return(mockTxRepo)
		mockTxRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(tx *domain.Transaction) error {
			assert.NotEmpty(t, tx.ID)
			assert.Equal(t, domain.TransactionStatusPending, tx.Status)
			assert.Equal(t, domain.TransactionTypeDeposit, tx.TransactionType)
			return nil
		})
		mockTxRepo.EXPECT().AppendLog(gomock.Any(), gomock.Any()).Return(nil)

		tx, err := engine.Create(domain.CreateTransactionInput{
			UserID:          123,
			Amount:          12.5,
			TransactionType: domain.TransactionTypeDeposit,
			Memo:            "Deposit",
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.TransactionStatusPending, tx.Status)
		assert.Equal(t, 1, txm.commits)
		assert.Equal(t, 0, txm.rollbacks)
	})

	t.Run("Caller_Supplied_ID_Is_Idempotency_Key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
		engine, txm := newTestEngine(mockTxRepo, nil, nil)

		id := "pi_payment_abc123"
		stored := &domain.Transaction{
			ID:              id,
			UserID:          123,
			Amount:          12.5,
			TransactionType: domain.TransactionTypeDeposit,
			Status:          domain.TransactionStatusPending,
		}
		mockTxRepo.EXPECT().WithTransaction(gomock.Any()).Return(mockTxRepo)
		mockTxRepo.EXPECT().Create(gomock.Any()).Return(
			domain.NewAppError(domain.ErrCodeDuplicateKey, "Transaction already exists", 409, gorm.ErrDuplicatedKey))
		mockTxRepo.EXPECT().GetByID(id).Return(stored, nil)

		tx, err := engine.Create(domain.CreateTransactionInput{
			ID:              id,
			UserID:          123,
			Amount:          12.5,
			TransactionType: domain.TransactionTypeDeposit,
		})
		assert.NoError(t, err)
		assert.Same(t, stored, tx)
		assert.Equal(t, 0, txm.commits)
		assert.Equal(t, 1, txm.rollbacks)
	})
}

func TestApprove(t *testing.T) {
	t.Run("Records_Provider_Reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
		engine, txm := newTestEngine(mockTxRepo, nil, nil)

		id := "pi_payment_abc123"
		mockTxRepo.EXPECT().WithTransaction(gomock.Any()).Return(mockTxRepo)
		mockTxRepo.EXPECT().UpdateStatusGuarded(
			id,
			[]domain.TransactionStatus{domain.TransactionStatusPending},
			domain.TransactionStatusApproved,
			map[string]interface{}{"reference_id": "ref-1"},
		).Return(int64(1), nil)
		mockTxRepo.EXPECT().AppendLog(id, gomock.Any()).Return(nil)
		mockTxRepo.EXPECT().GetByID(id).Return(&domain.Transaction{ID: id, Status: domain.TransactionStatusApproved}, nil)

		tx, err := engine.Approve(id, "ref-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.TransactionStatusApproved, tx.Status)
		assert.Equal(t, 1, txm.commits)
	})

	t.Run("Settled_Transaction_Cannot_Approve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
		engine, txm := newTestEngine(mockTxRepo, nil, nil)

		id := "pi_payment_abc123"
		mockTxRepo.EXPECT().WithTransaction(gomock.Any()).Return(mockTxRepo)
		mockTxRepo.EXPECT().UpdateStatusGuarded(id, gomock.Any(), domain.TransactionStatusApproved, gomock.Any()).
			Return(int64(0), nil)
		mockTxRepo.EXPECT().GetByID(id).Return(&domain.Transaction{ID: id, Status: domain.TransactionStatusCompleted}, nil)

		tx, err := engine.Approve(id, "ref-1")
		assert.Nil(t, tx)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeInvalidState, appErr.Code)
		assert.Equal(t, 1, txm.rollbacks)
	})
}

func TestComplete(t *testing.T) {
	id := "pi_payment_abc123"
	settled := &domain.Transaction{
		ID:              id,
		UserID:          123,
		Amount:          12.5,
		TransactionType: domain.TransactionTypeDeposit,
		Status:          domain.TransactionStatusCompleted,
		Memo:            "Deposit",
	}

	t.Run("Settles_And_Applies_Balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
		mockUserRepo := mocks.NewMockUserRepository(ctrl)
		mockPaymentRepo := mocks.NewMockPaymentRepository(ctrl)
		engine, txm := newTestEngine(mockTxRepo, mockUserRepo, mockPaymentRepo)

		mockTxRepo.EXPECT().WithTransaction(gomock.Any()).Return(mockTxRepo)
		mockTxRepo.EXPECT().UpdateStatusGuarded(
			id,
			eligibleForSettlement(),
			domain.TransactionStatusCompleted,
			map[string]interface{}{"provider_tx_id": "txid-1"},
		).Return(int64(1), nil)
		mockTxRepo.EXPECT().GetByID(id).Return(settled, nil)
		mockPaymentRepo.EXPECT().WithTransaction(gomock.Any()).Return(mockPaymentRepo)
		mockPaymentRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *domain.Payment) error {
			assert.Equal(t, id, p.ID)
			assert.Equal(t, "txid-1", p.ProviderTxID)
			return nil
		})
		mockTxRepo.EXPECT().AppendLog(id, gomock.Any()).Return(nil)
		mockUserRepo.EXPECT().WithTransaction(gomock.Any()).Return(mockUserRepo)
		mockUserRepo.EXPECT().AddBalance(uint(123), 12.5).Return(int64(1), nil)

		tx, err := engine.Complete(id, "txid-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.TransactionStatusCompleted, tx.Status)
		assert.Equal(t, 1, txm.commits)
	})

	t.Run("Replay_Moves_No_Money", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
		mockUserRepo := mocks.NewMockUserRepository(ctrl)
		mockPaymentRepo := mocks.NewMockPaymentRepository(ctrl)
		engine, txm := newTestEngine(mockTxRepo, mockUserRepo, mockPaymentRepo)

		// First call settles and credits the balance exactly once.
		first := mockTxRepo.EXPECT().UpdateStatusGuarded(
			id, eligibleForSettlement(), domain.TransactionStatusCompleted, gomock.Any(),
		).Return(int64(1), nil)
		mockTxRepo.EXPECT().WithTransaction(gomock.Any()).Return(mockTxRepo).Times(2)
		mockTxRepo.EXPECT().GetByID(id).Return(settled, nil).Times(2)
		mockPaymentRepo.EXPECT().WithTransaction(gomock.Any()).Return(mockPaymentRepo)
		mockPaymentRepo.EXPECT().Create(gomock.Any()).Return(nil)
		mockTxRepo.EXPECT().AppendLog(id, gomock.Any()).Return(nil)
		mockUserRepo.EXPECT().WithTransaction(gomock.Any()).Return(mockUserRepo)
		mockUserRepo.EXPECT().AddBalance(uint(123), 12.5).Return(int64(1), nil).Times(1)

		// Second call finds the guard already consumed.
		mockTxRepo.EXPECT().UpdateStatusGuarded(
			id, eligibleForSettlement(), domain.TransactionStatusCompleted, gomock.Any(),
		).Return(int64(0), nil).After(first)

		_, err := engine.Complete(id, "txid-1")
		assert.NoError(t, err)

		tx, err := engine.Complete(id, "txid-1")
		assert.Nil(t, tx)
		assert.True(t, domain.IsAlreadySettled(err))
		assert.Equal(t, 1, txm.commits)
		assert.Equal(t, 1, txm.rollbacks)
	})

	t.Run("Missing_Transaction_Is_NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
		engine, _ := newTestEngine(mockTxRepo, nil, nil)

		mockTxRepo.EXPECT().WithTransaction(gomock.Any()).Return(mockTxRepo)
		mockTxRepo.EXPECT().UpdateStatusGuarded(id, gomock.Any(), domain.TransactionStatusCompleted, gomock.Any()).
			Return(int64(0), nil)
		mockTxRepo.EXPECT().GetByID(id).Return(nil, nil)

		_, err := engine.Complete(id, "txid-1")
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeNotFound, appErr.Code)
	})
}

func TestCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	engine, txm := newTestEngine(mockTxRepo, mockUserRepo, nil)

	id := "pi_payment_abc123"
	mockTxRepo.EXPECT().WithTransaction(gomock.Any()).Return(mockTxRepo)
	mockTxRepo.EXPECT().UpdateStatusGuarded(
		id, eligibleForSettlement(), domain.TransactionStatusCancelled, nil,
	).Return(int64(1), nil)
	mockTxRepo.EXPECT().AppendLog(id, gomock.Any()).Return(nil)
	mockTxRepo.EXPECT().GetByID(id).Return(&domain.Transaction{ID: id, Status: domain.TransactionStatusCancelled}, nil)
	// No balance expectations: cancellation never moves money.

	tx, err := engine.Cancel(id)
	assert.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusCancelled, tx.Status)
	assert.Equal(t, 1, txm.commits)
}

// TestLedgerBalanceReconciles drives a sequence of settlements through the
// engine and checks that the running balance equals the signed sum of every
// completed transaction.
func TestLedgerBalanceReconciles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockPaymentRepo := mocks.NewMockPaymentRepository(ctrl)
	engine, _ := newTestEngine(mockTxRepo, mockUserRepo, mockPaymentRepo)

	history := []*domain.Transaction{
		{ID: "tx-1", UserID: 123, Amount: 10.0, TransactionType: domain.TransactionTypeDeposit, Status: domain.TransactionStatusCompleted},
		{ID: "tx-2", UserID: 123, Amount: 2.0225, TransactionType: domain.TransactionTypeLottoEntry, Status: domain.TransactionStatusCompleted},
		{ID: "tx-3", UserID: 123, Amount: 5.0, TransactionType: domain.TransactionTypeLottoWinnings, Status: domain.TransactionStatusCompleted},
		{ID: "tx-4", UserID: 123, Amount: 3.0, TransactionType: domain.TransactionTypeWithdrawal, Status: domain.TransactionStatusCompleted},
	}

	balance := 0.0
	mockTxRepo.EXPECT().WithTransaction(gomock.Any()).Return(mockTxRepo).Times(len(history))
	mockPaymentRepo.EXPECT().WithTransaction(gomock.Any()).Return(mockPaymentRepo).Times(len(history))
	mockUserRepo.EXPECT().WithTransaction(gomock.Any()).Return(mockUserRepo).Times(len(history))
	mockPaymentRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(len(history))
	mockUserRepo.EXPECT().AddBalance(uint(123), gomock.Any()).DoAndReturn(func(_ uint, delta float64) (int64, error) {
		balance += delta
		return 1, nil
	}).Times(len(history))
	for _, tx := range history {
		mockTxRepo.EXPECT().UpdateStatusGuarded(tx.ID, gomock.Any(), domain.TransactionStatusCompleted, gomock.Any()).
			Return(int64(1), nil)
		mockTxRepo.EXPECT().GetByID(tx.ID).Return(tx, nil)
		mockTxRepo.EXPECT().AppendLog(tx.ID, gomock.Any()).Return(nil)
	}

	for _, tx := range history {
		_, err := engine.Complete(tx.ID, "txid-"+tx.ID)
		assert.NoError(t, err)
	}

	expected := 0.0
	for _, tx := range history {
		delta, err := SignedAmount(tx.Amount, tx.TransactionType)
		assert.NoError(t, err)
		expected += delta
	}
	assert.InDelta(t, expected, balance, 1e-9)
	assert.InDelta(t, 9.9775, balance, 1e-9)
}
