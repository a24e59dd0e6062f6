package settlement

import (
	"context"
	"fmt"

	"github.com/pboachie/pi-lotto/internal/domain"
	"go.uber.org/zap"
)

// CreateWithdrawal pays out part of the user's balance to the provider
// network. The whole flow runs under the per-user lock so the balance
// pre-check cannot race a concurrent debit; the balance itself is only
// applied when the local transaction completes.
//
// If the provider fails after acknowledging the payment, the local
// transaction is left approved for reconciliation rather than cancelled:
// the provider may still settle it.
func (u *settlementUseCase) CreateWithdrawal(uid string, amount float64) (*domain.WithdrawalResult, error) {
	u.logger.Info("Creating withdrawal",
		zap.String("uid", uid),
		zap.Float64("amount", amount))

	if err := u.lockManager.Lock(context.Background(), uid); err != nil {
		return nil, domain.NewInternalError("Could not acquire user lock", err)
	}
	defer u.lockManager.Unlock(uid)

	user, err := u.requireUser(uid)
	if err != nil {
		return nil, err
	}

	total := amount + u.cfg.Lotto.NetworkFee
	if amount <= 0 {
		return nil, domain.NewInvalidAmountError("Withdrawal amount must be positive")
	}
	if total < u.cfg.Lotto.MinWithdrawal {
		return nil, domain.NewInvalidAmountError(
			fmt.Sprintf("Minimum withdrawal is %g including the %g network fee",
				u.cfg.Lotto.MinWithdrawal, u.cfg.Lotto.NetworkFee))
	}
	if user.Balance < total {
		return nil, domain.NewInsufficientFundsError("")
	}

	// The house wallet must cover the payout before we promise anything.
	houseBalance, err := u.paymentService.GetBalance()
	if err != nil || houseBalance < amount {
		u.logger.Error("House wallet cannot cover withdrawal",
			zap.Float64("houseBalance", houseBalance),
			zap.Float64("amount", amount),
			zap.Error(err))
		return nil, domain.NewUnderMaintenanceError()
	}

	payload := domain.PaymentPayload{
		Amount: amount,
		Memo:   "Withdrawal from Pi-Lotto",
		Metadata: map[string]interface{}{
			"transaction_type": string(domain.TransactionTypeWithdrawal),
		},
		UID: uid,
	}

	transaction, err := u.engine.Create(domain.CreateTransactionInput{
		UserID:          user.ID,
		Amount:          total,
		TransactionType: domain.TransactionTypeWithdrawal,
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

	providerPaymentID, err := u.paymentService.CreatePayment(payload)
	if err != nil {
		u.logger.Error("Provider payment creation failed, cancelling withdrawal",
			zap.String("transactionID", transaction.ID),
			zap.Error(err))
		if _, cancelErr := u.engine.Cancel(transaction.ID); cancelErr != nil {
			u.logger.Error("Failed to cancel withdrawal after provider failure",
				zap.String("transactionID", transaction.ID),
				zap.Error(cancelErr))
		}
		return nil, domain.NewProviderUnavailableError("create", err)
	}

	if _, err := u.engine.Approve(transaction.ID, providerPaymentID); err != nil {
		return nil, err
	}

	txid, err := u.paymentService.SubmitPayment(providerPaymentID, true)
	if err != nil {
		u.logger.Error("Provider payment submission failed, leaving withdrawal approved",
			zap.String("transactionID", transaction.ID),
			zap.String("providerPaymentID", providerPaymentID),
			zap.Error(err))
		return nil, domain.NewProviderUnavailableError("submit", err)
	}

	if _, err := u.paymentService.CompletePayment(providerPaymentID, txid); err != nil {
		u.logger.Error("Provider payment completion failed, leaving withdrawal approved",
			zap.String("transactionID", transaction.ID),
			zap.String("providerPaymentID", providerPaymentID),
			zap.Error(err))
		return nil, domain.NewProviderUnavailableError("complete", err)
	}

	if _, err := u.engine.Complete(transaction.ID, txid); err != nil && !domain.IsAlreadySettled(err) {
		return nil, err
	}

	settled, err := u.userRepo.GetByUID(uid)
	if err != nil || settled == nil {
		return nil, domain.NewPersistenceError("reload user after withdrawal", err)
	}

	u.logger.Info("Withdrawal completed",
		zap.String("uid", uid),
		zap.String("transactionID", transaction.ID),
		zap.String("txid", txid),
		zap.Float64("balance", settled.Balance))
	return &domain.WithdrawalResult{
		TransactionID: transaction.ID,
		ProviderTxID:  txid,
		Balance:       settled.Balance,
	}, nil
}
