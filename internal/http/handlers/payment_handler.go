package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pboachie/pi-lotto/internal/domain"
	"github.com/pboachie/pi-lotto/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// PaymentHandler handles HTTP requests for deposits, withdrawals and the
// provider's payment callbacks
type PaymentHandler struct {
	settlementUseCase domain.SettlementUseCase
	logger            *logger.Logger
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(settlementUseCase domain.SettlementUseCase, logger *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		settlementUseCase: settlementUseCase,
		logger:            logger,
	}
}

// CreateDepositRequest represents the deposit request body
type CreateDepositRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0" example:"1.5"`
}

// ApprovePaymentRequest represents the provider approval callback body
type ApprovePaymentRequest struct {
	PaymentID string `json:"paymentId" binding:"required" example:"pay_abc123"`
	DepositID string `json:"depositId" binding:"required" example:"4fd2…"`
}

// CompletePaymentRequest represents the provider completion callback body
type CompletePaymentRequest struct {
	PaymentID string `json:"paymentId" binding:"required" example:"pay_abc123"`
	DepositID string `json:"depositId" binding:"required" example:"4fd2…"`
	TxID      string `json:"txid" binding:"required" example:"tx_789"`
}

// IncompletePaymentRequest represents the provider's incomplete-payment
// callback body
type IncompletePaymentRequest struct {
	Payment domain.ProviderPayment `json:"payment" binding:"required"`
}

// WithdrawRequest represents the withdrawal request body
type WithdrawRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0" example:"0.5"`
}

// CreateDeposit opens a pending deposit
// @Summary Create deposit
// @Description Open a pending deposit and return the payment envelope for the provider SDK
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateDepositRequest true "Deposit details"
// @Success 200 {object} domain.DepositEnvelope
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /payments/deposits [post]
func (h *PaymentHandler) CreateDeposit(c *gin.Context) {
	uid, ok := getAuthenticatedUID(c)
	if !ok {
		return
	}

	var req CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewErrorResponse(domain.NewValidationError("amount", "must be a positive number")))
		return
	}

	envelope, err := h.settlementUseCase.CreateDeposit(uid, req.Amount)
	if err != nil {
		h.logger.Error("Create deposit failed",
			zap.String("uid", uid),
			zap.Float64("amount", req.Amount),
			zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

// ApprovePayment handles the provider approval callback
// @Summary Approve payment
// @Description Approve a deposit payment with the provider and mark the transaction approved
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ApprovePaymentRequest true "Approval details"
// @Success 200 {object} domain.Transaction
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Failure 503 {object} domain.ErrorResponse
// @Router /payments/approve [post]
func (h *PaymentHandler) ApprovePayment(c *gin.Context) {
	uid, ok := getAuthenticatedUID(c)
	if !ok {
		return
	}

	var req ApprovePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewErrorResponse(domain.NewValidationError("paymentId", "paymentId and depositId are required")))
		return
	}

	transaction, err := h.settlementUseCase.ApprovePayment(uid, req.PaymentID, req.DepositID)
	if err != nil {
		h.logger.Error("Approve payment failed",
			zap.String("uid", uid),
			zap.String("paymentID", req.PaymentID),
			zap.String("depositID", req.DepositID),
			zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// CompletePayment handles the provider completion callback
// @Summary Complete payment
// @Description Complete a deposit payment and credit the user's balance exactly once
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CompletePaymentRequest true "Completion details"
// @Success 200 {object} domain.Transaction
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Failure 503 {object} domain.ErrorResponse
// @Router /payments/complete [post]
func (h *PaymentHandler) CompletePayment(c *gin.Context) {
	uid, ok := getAuthenticatedUID(c)
	if !ok {
		return
	}

	var req CompletePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewErrorResponse(domain.NewValidationError("paymentId", "paymentId, depositId and txid are required")))
		return
	}

	transaction, err := h.settlementUseCase.CompletePayment(uid, req.PaymentID, req.DepositID, req.TxID)
	if err != nil {
		h.logger.Error("Complete payment failed",
			zap.String("uid", uid),
			zap.String("paymentID", req.PaymentID),
			zap.String("depositID", req.DepositID),
			zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// IncompletePayment reconciles a payment the provider reports as unfinished
// @Summary Reconcile incomplete payment
// @Description Settle a payment the provider reports as started but unfinished
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body IncompletePaymentRequest true "Provider payment"
// @Success 200 {object} domain.Transaction
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /payments/incomplete [post]
func (h *PaymentHandler) IncompletePayment(c *gin.Context) {
	if _, ok := getAuthenticatedUID(c); !ok {
		return
	}

	var req IncompletePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewErrorResponse(domain.NewValidationError("payment", "invalid provider payment")))
		return
	}

	transaction, err := h.settlementUseCase.ReconcileIncompletePayment(&req.Payment)
	if err != nil {
		h.logger.Error("Incomplete payment reconciliation failed",
			zap.String("paymentID", req.Payment.Identifier),
			zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// Withdraw pays out part of the user's balance
// @Summary Create withdrawal
// @Description Pay out part of the balance to the provider network, fees included
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body WithdrawRequest true "Withdrawal details"
// @Success 200 {object} domain.WithdrawalResult
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 503 {object} domain.ErrorResponse
// @Router /payments/withdraw [post]
func (h *PaymentHandler) Withdraw(c *gin.Context) {
	uid, ok := getAuthenticatedUID(c)
	if !ok {
		return
	}

	var req WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewErrorResponse(domain.NewValidationError("amount", "must be a positive number")))
		return
	}

	result, err := h.settlementUseCase.CreateWithdrawal(uid, req.Amount)
	if err != nil {
		h.logger.Error("Withdrawal failed",
			zap.String("uid", uid),
			zap.Float64("amount", req.Amount),
			zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
