package domain

import (
	"fmt"
)

// PaymentService defines the interface for the external payment provider.
// The provider settles payments on its own network; this service only
// reflects its documented approve/submit/complete/cancel contract.
// VerifyAuth is the identity half of the same platform API: it resolves an
// end-user access token to the identity the provider vouches for, which is
// the only identity sign-in may trust.
type PaymentService interface {
	GetBalance() (float64, error)
	CreatePayment(payload PaymentPayload) (string, error)
	SubmitPayment(paymentID string, autoApprove bool) (string, error)
	ApprovePayment(paymentID string) (*ProviderPayment, error)
	CompletePayment(paymentID string, txid string) (*ProviderPayment, error)
	CancelPayment(paymentID string) error
	VerifyAuth(accessToken string) (*AuthResult, error)
}

// PaymentPayload is the request envelope sent to the provider when a
// payment is created. The same envelope is stored as TransactionData so
// reconciliation can re-submit it later.
type PaymentPayload struct {
	Amount   float64                `json:"amount"`
	Memo     string                 `json:"memo"`
	Metadata map[string]interface{} `json:"metadata"`
	UID      string                 `json:"uid"`
}

// ProviderPaymentStatus mirrors the provider's per-payment status flags
type ProviderPaymentStatus struct {
	DeveloperApproved   bool `json:"developer_approved"`
	TransactionVerified bool `json:"transaction_verified"`
	DeveloperCompleted  bool `json:"developer_completed"`
	Cancelled           bool `json:"cancelled"`
	UserCancelled       bool `json:"user_cancelled"`
}

// ProviderPaymentTransaction is the on-network transaction reference
type ProviderPaymentTransaction struct {
	TxID     string `json:"txid"`
	Verified bool   `json:"verified"`
}

// ProviderPayment is the provider's view of a payment
type ProviderPayment struct {
	Identifier  string                      `json:"identifier"`
	UserUID     string                      `json:"user_uid"`
	Amount      float64                     `json:"amount"`
	Memo        string                      `json:"memo"`
	Metadata    map[string]interface{}      `json:"metadata"`
	Status      ProviderPaymentStatus       `json:"status"`
	Transaction *ProviderPaymentTransaction `json:"transaction,omitempty"`
}

// PaymentServiceError represents a provider error with its HTTP status
type PaymentServiceError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface
func (e *PaymentServiceError) Error() string {
	return fmt.Sprintf("payment provider: %s", e.Message)
}

// Is4xxError checks if the error is a 4xx client error
func (e *PaymentServiceError) Is4xxError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}
