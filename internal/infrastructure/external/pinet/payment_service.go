package pinet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pboachie/pi-lotto/internal/domain"
)

type paymentServiceImpl struct {
	baseURL string
	apiKey  string
	client  *retryablehttp.Client
}

// NewPaymentService creates a client for the Pi Network payment API. All
// calls carry a bounded timeout; transient failures are retried before the
// caller sees a PaymentServiceError.
func NewPaymentService(baseURL, apiKey string, timeout time.Duration) domain.PaymentService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.HTTPClient.Timeout = timeout
	client.Logger = nil

	return &paymentServiceImpl{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
	}
}

// GetBalance returns the house wallet balance
func (p *paymentServiceImpl) GetBalance() (float64, error) {
	var resp struct {
		Balance float64 `json:"balance"`
	}
	url := fmt.Sprintf("%s/v2/wallet/balance", p.baseURL)
	if err := p.sendRequest(http.MethodGet, url, nil, http.StatusOK, &resp); err != nil {
		return 0, err
	}
	return resp.Balance, nil
}

// CreatePayment registers a payment with the provider and returns its id
func (p *paymentServiceImpl) CreatePayment(payload domain.PaymentPayload) (string, error) {
	body := map[string]interface{}{"payment": payload}
	var resp struct {
		Identifier string `json:"identifier"`
	}
	url := fmt.Sprintf("%s/v2/payments", p.baseURL)
	if err := p.sendRequest(http.MethodPost, url, body, http.StatusOK, &resp); err != nil {
		return "", err
	}
	return resp.Identifier, nil
}

// SubmitPayment submits a created payment to the network and returns the txid
func (p *paymentServiceImpl) SubmitPayment(paymentID string, autoApprove bool) (string, error) {
	body := map[string]interface{}{"auto_approve": autoApprove}
	var resp struct {
		TxID string `json:"txid"`
	}
	url := fmt.Sprintf("%s/v2/payments/%s/submit", p.baseURL, paymentID)
	if err := p.sendRequest(http.MethodPost, url, body, http.StatusOK, &resp); err != nil {
		return "", err
	}
	return resp.TxID, nil
}

// ApprovePayment acknowledges a payment server-side
func (p *paymentServiceImpl) ApprovePayment(paymentID string) (*domain.ProviderPayment, error) {
	var resp domain.ProviderPayment
	url := fmt.Sprintf("%s/v2/payments/%s/approve", p.baseURL, paymentID)
	if err := p.sendRequest(http.MethodPost, url, nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CompletePayment confirms a payment against its on-network txid. The
// provider treats completion of an already-completed payment as success,
// which the reconciliation workflow relies on.
func (p *paymentServiceImpl) CompletePayment(paymentID string, txid string) (*domain.ProviderPayment, error) {
	body := map[string]interface{}{"txid": txid}
	var resp domain.ProviderPayment
	url := fmt.Sprintf("%s/v2/payments/%s/complete", p.baseURL, paymentID)
	if err := p.sendRequest(http.MethodPost, url, body, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CancelPayment cancels a payment provider-side
func (p *paymentServiceImpl) CancelPayment(paymentID string) error {
	url := fmt.Sprintf("%s/v2/payments/%s/cancel", p.baseURL, paymentID)
	return p.sendRequest(http.MethodPost, url, nil, http.StatusOK, nil)
}

// VerifyAuth resolves an end-user access token against the platform's
// /v2/me endpoint and returns the identity the provider vouches for. An
// invalid or expired token comes back as a 4xx PaymentServiceError.
func (p *paymentServiceImpl) VerifyAuth(accessToken string) (*domain.AuthResult, error) {
	var resp struct {
		UID         string `json:"uid"`
		Username    string `json:"username"`
		Credentials struct {
			Scopes []string `json:"scopes"`
		} `json:"credentials"`
	}
	url := fmt.Sprintf("%s/v2/me", p.baseURL)
	if err := p.send(http.MethodGet, url, "Bearer "+accessToken, nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return &domain.AuthResult{
		UID:         resp.UID,
		Username:    resp.Username,
		Scopes:      resp.Credentials.Scopes,
		AccessToken: accessToken,
	}, nil
}

// sendRequest issues a server-authenticated request with the API key
func (p *paymentServiceImpl) sendRequest(method, url string, bodyData any, expectedStatus int, out any) error {
	return p.send(method, url, fmt.Sprintf("Key %s", p.apiKey), bodyData, expectedStatus, out)
}

// send issues an HTTP request with the given Authorization header and
// decodes the response
func (p *paymentServiceImpl) send(method, url, authorization string, bodyData any, expectedStatus int, out any) error {
	var body io.Reader

	if bodyData != nil {
		jsonBytes, err := json.Marshal(bodyData)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := retryablehttp.NewRequest(method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", authorization)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return &domain.PaymentServiceError{
			StatusCode: http.StatusServiceUnavailable,
			Code:       "REQUEST_FAILED",
			Message:    err.Error(),
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		var errResp struct {
			Error        string `json:"error"`
			ErrorMessage string `json:"error_message"`
		}
		message := string(respBody)
		code := "UNEXPECTED_STATUS"
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			code = errResp.Error
			message = errResp.ErrorMessage
		}
		return &domain.PaymentServiceError{
			StatusCode: resp.StatusCode,
			Code:       code,
			Message:    message,
		}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
