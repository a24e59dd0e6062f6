package settlement

import (
	"github.com/pboachie/pi-lotto/internal/domain"
	"go.uber.org/zap"
)

// ReconcileIncompletePayment settles a payment the provider reports as
// started but unfinished, typically delivered on the user's next sign-in.
// The flow is idempotent: replays of the same payment settle nothing and
// return the stored transaction.
func (u *settlementUseCase) ReconcileIncompletePayment(payment *domain.ProviderPayment) (*domain.Transaction, error) {
	u.logger.Info("Reconciling incomplete payment",
		zap.String("providerPaymentID", payment.Identifier),
		zap.String("uid", payment.UserUID))

	depositID, ok := payment.Metadata["deposit_id"].(string)
	if !ok || depositID == "" {
		u.logger.Error("Incomplete payment carries no deposit reference",
			zap.String("providerPaymentID", payment.Identifier))
		return nil, domain.NewInternalError(
			"Payment has no matching transaction, contact support", nil)
	}

	transaction, err := u.transactionRepo.GetByID(depositID)
	if err != nil {
		return nil, domain.NewPersistenceError("load transaction", err)
	}
	if transaction == nil {
		// Money may have moved on the provider network with no ledger row
		// to settle against. Never guess here.
		u.logger.Error("Incomplete payment references unknown transaction",
			zap.String("providerPaymentID", payment.Identifier),
			zap.String("depositID", depositID))
		return nil, domain.NewInternalError(
			"Payment has no matching transaction, contact support", nil)
	}

	if transaction.Status == domain.TransactionStatusCompleted {
		u.logger.Info("Incomplete payment already settled, no-op",
			zap.String("depositID", depositID))
		return transaction, nil
	}
	if transaction.Status == domain.TransactionStatusCancelled {
		return nil, domain.NewInvalidStateError("Transaction was cancelled, contact support")
	}

	if transaction.Status != domain.TransactionStatusApproved {
		// A deposit the provider never acknowledged has nothing to
		// reconcile; the regular approve callback still owns it.
		return nil, domain.NewInvalidStateError("Transaction was never approved")
	}

	if !payment.Status.DeveloperApproved {
		return nil, domain.NewInvalidStateError("Payment was never approved, contact support")
	}
	if payment.Transaction == nil || !payment.Transaction.Verified {
		return nil, domain.NewInvalidStateError("Payment transaction is not verified yet")
	}

	txid := payment.Transaction.TxID
	if _, err := u.paymentService.CompletePayment(payment.Identifier, txid); err != nil {
		u.logger.Error("Provider complete failed during reconciliation",
			zap.String("providerPaymentID", payment.Identifier),
			zap.Error(err))
		return nil, domain.NewProviderUnavailableError("complete", err)
	}

	settled, err := u.engine.Complete(depositID, txid)
	if domain.IsAlreadySettled(err) {
		return u.requireSettledDeposit(depositID)
	}
	if err != nil {
		return nil, err
	}

	u.logger.Info("Incomplete payment reconciled",
		zap.String("providerPaymentID", payment.Identifier),
		zap.String("depositID", depositID),
		zap.String("txid", txid))
	return settled, nil
}
