package domain

// DepositEnvelope is returned to the client when a deposit is opened; the
// client hands it to the provider SDK, which drives the approve/complete
// callbacks against our webhook surface.
type DepositEnvelope struct {
	DepositID string         `json:"deposit_id"`
	Payment   PaymentPayload `json:"payment"`
}

// TicketQuote is the priced, reserved ticket returned by QuoteTicket. The
// TxID is the pending lotto_entry transaction holding the reservation.
type TicketQuote struct {
	GameID      uint    `json:"gameID"`
	TicketPrice float64 `json:"ticketPrice"`
	BaseFee     float64 `json:"baseFee"`
	ServiceFee  float64 `json:"serviceFee"`
	TxID        string  `json:"txID"`
	Numbers     struct {
		LottoNumbers []int `json:"lotto_numbers"`
		PowerNumber  int   `json:"power_number"`
	} `json:"numbers"`
}

// TotalCost returns the full debit the quote reserves
func (q TicketQuote) TotalCost() float64 {
	return q.TicketPrice + q.BaseFee + q.ServiceFee
}

// WithdrawalResult reports a settled withdrawal and the post-debit balance
type WithdrawalResult struct {
	TransactionID string  `json:"transaction_id"`
	ProviderTxID  string  `json:"provider_tx_id"`
	Balance       float64 `json:"balance"`
}

// SettlementUseCase defines the money-moving workflows built on the
// transaction engine. Every method returns typed errors (AppError) so the
// HTTP layer can map them to status codes.
type SettlementUseCase interface {
	CreateDeposit(uid string, amount float64) (*DepositEnvelope, error)
	ApprovePayment(uid string, providerPaymentID string, depositID string) (*Transaction, error)
	CompletePayment(uid string, providerPaymentID string, depositID string, txid string) (*Transaction, error)
	CreateWithdrawal(uid string, amount float64) (*WithdrawalResult, error)
	QuoteTicket(uid string, gameID uint, numbers []int, powerNumber int) (*TicketQuote, error)
	SubmitTicket(uid string, txID string) (*Ticket, error)
	ReconcileIncompletePayment(payment *ProviderPayment) (*Transaction, error)
}

// MaintenanceJobs defines the periodic consistency sweeps
type MaintenanceJobs interface {
	// RecomputePools refreshes every active game's pool_amount cache from
	// completed entry-fee transactions; failures are isolated per game.
	RecomputePools() error
	// ExpireStalePending cancels pending lotto_entry transactions older
	// than the configured age, returning the number cancelled.
	ExpireStalePending() (int64, error)
}
