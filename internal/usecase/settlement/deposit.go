package settlement

import (
	"github.com/pboachie/pi-lotto/internal/domain"
	"go.uber.org/zap"
)

// CreateDeposit opens a pending deposit and returns the payment envelope
// the client hands to the provider SDK. No balance moves until the
// provider's completion webhook lands.
func (u *settlementUseCase) CreateDeposit(uid string, amount float64) (*domain.DepositEnvelope, error) {
	u.logger.Info("Creating deposit",
		zap.String("uid", uid),
		zap.Float64("amount", amount))

	user, err := u.requireUser(uid)
	if err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, domain.NewInvalidAmountError("Deposit amount must be positive")
	}

	payload := domain.PaymentPayload{
		Amount: amount,
		Memo:   "Deposit to Pi-Lotto",
		Metadata: map[string]interface{}{
			"transaction_type": string(domain.TransactionTypeDeposit),
		},
		UID: uid,
	}

	transaction, err := u.engine.Create(domain.CreateTransactionInput{
		UserID:          user.ID,
		Amount:          amount,
		TransactionType: domain.TransactionTypeDeposit,
		Memo:            payload.Memo,
		Payload: map[string]interface{}{
			"amount":   payload.Amount,
			"memo":     payload.Memo,
			"metadata": payload.Metadata,
			"uid":      payload.UID,
		},
	})
	if err != nil {
		return nil, err
	}

	payload.Metadata["deposit_id"] = transaction.ID

	u.logger.Info("Deposit created",
		zap.String("uid", uid),
		zap.String("depositID", transaction.ID))
	return &domain.DepositEnvelope{
		DepositID: transaction.ID,
		Payment:   payload,
	}, nil
}

// ApprovePayment handles the provider's server-side approval callback for a
// deposit: the provider is told to approve, then the local transaction is
// moved to approved with the provider payment id as reference.
func (u *settlementUseCase) ApprovePayment(uid string, providerPaymentID string, depositID string) (*domain.Transaction, error) {
	u.logger.Info("Approving deposit payment",
		zap.String("uid", uid),
		zap.String("providerPaymentID", providerPaymentID),
		zap.String("depositID", depositID))

	user, err := u.requireUser(uid)
	if err != nil {
		return nil, err
	}
	if err := u.requirePaymentScope(user.ID); err != nil {
		return nil, err
	}
	if _, err := u.requireOwnedTransaction(depositID, user.ID); err != nil {
		return nil, err
	}

	if _, err := u.paymentService.ApprovePayment(providerPaymentID); err != nil {
		u.logger.Error("Provider approve failed",
			zap.String("providerPaymentID", providerPaymentID),
			zap.Error(err))
		return nil, domain.NewProviderUnavailableError("approve", err)
	}

	return u.engine.Approve(depositID, providerPaymentID)
}

// CompletePayment handles the provider's completion callback. Replays are
// harmless: a second completion for the same deposit settles nothing and
// returns the stored transaction.
func (u *settlementUseCase) CompletePayment(uid string, providerPaymentID string, depositID string, txid string) (*domain.Transaction, error) {
	u.logger.Info("Completing deposit payment",
		zap.String("uid", uid),
		zap.String("providerPaymentID", providerPaymentID),
		zap.String("depositID", depositID),
		zap.String("txid", txid))

	user, err := u.requireUser(uid)
	if err != nil {
		return nil, err
	}
	if err := u.requirePaymentScope(user.ID); err != nil {
		return nil, err
	}
	if _, err := u.requireOwnedTransaction(depositID, user.ID); err != nil {
		return nil, err
	}

	if _, err := u.paymentService.CompletePayment(providerPaymentID, txid); err != nil {
		u.logger.Error("Provider complete failed",
			zap.String("providerPaymentID", providerPaymentID),
			zap.Error(err))
		return nil, domain.NewProviderUnavailableError("complete", err)
	}

	transaction, err := u.engine.Complete(depositID, txid)
	if domain.IsAlreadySettled(err) {
		u.logger.Warn("Deposit completion replayed, returning settled transaction",
			zap.String("depositID", depositID))
		return u.requireSettledDeposit(depositID)
	}
	if err != nil {
		return nil, err
	}

	u.logger.Info("Deposit completed",
		zap.String("uid", uid),
		zap.String("depositID", depositID),
		zap.Float64("amount", transaction.Amount))
	return transaction, nil
}

// requireSettledDeposit resolves a completion replay: the transaction must
// have landed in completed, a replay against a cancelled deposit is an error.
func (u *settlementUseCase) requireSettledDeposit(depositID string) (*domain.Transaction, error) {
	settled, err := u.transactionRepo.GetByIDAndStatus(depositID, domain.TransactionStatusCompleted)
	if err != nil {
		return nil, domain.NewPersistenceError("load settled deposit", err)
	}
	if settled == nil {
		return nil, domain.NewInvalidStateError("Deposit was cancelled, nothing to complete")
	}
	return settled, nil
}
