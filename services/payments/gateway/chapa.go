package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	httpclient "github.com/wayfare-app/wayfare/internal/pkg/http"
	"github.com/wayfare-app/wayfare/internal/pkg/logger"
	"github.com/wayfare-app/wayfare/internal/pkg/models"
	"github.com/wayfare-app/wayfare/services/payments"
)

// ChapaClient is an HTTP client for the Chapa payment gateway
type ChapaClient struct {
	client        *httpclient.Client
	secretKey     string
	webhookSecret string
	callbackURL   string
	returnURL     string
}

// NewChapaClient creates a new gateway client with a bounded request timeout
func NewChapaClient(cfg models.GatewayConfig) *ChapaClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	return &ChapaClient{
		client:        httpclient.NewClient(cfg.BaseURL, timeout),
		secretKey:     cfg.SecretKey,
		webhookSecret: cfg.WebhookSecret,
		callbackURL:   cfg.CallbackURL,
		returnURL:     cfg.ReturnURL,
	}
}

type initPayload struct {
	Amount        string        `json:"amount"`
	Currency      string        `json:"currency"`
	Email         string        `json:"email"`
	FirstName     string        `json:"first_name"`
	TxRef         string        `json:"tx_ref"`
	CallbackURL   string        `json:"callback_url"`
	ReturnURL     string        `json:"return_url"`
	Customization customization `json:"customization"`
}

type customization struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type initResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		ID          string `json:"id"`
		Reference   string `json:"reference"`
		CheckoutURL string `json:"checkout_url"`
	} `json:"data"`
}

type verifyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status string `json:"status"`
	} `json:"data"`
}

// Initialize starts a hosted-payment transaction with the gateway
func (g *ChapaClient) Initialize(ctx context.Context, req *models.GatewayInitRequest) (*models.GatewayInitResponse, error) {
	payload := initPayload{
		Amount:      strconv.FormatFloat(req.Amount, 'f', 2, 64),
		Currency:    req.Currency,
		Email:       req.CustomerEmail,
		FirstName:   req.CustomerName,
		TxRef:       req.Reference,
		CallbackURL: g.callbackURL,
		ReturnURL:   g.returnURL,
		Customization: customization{
			Title:       "Wayfare Travel Booking",
			Description: req.Description,
		},
	}

	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal initialize request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/transaction/initialize", g.client.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	g.setHeaders(httpReq)

	resp, err := g.client.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payments.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", payments.ErrGatewayUnavailable, err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: status %d", payments.ErrGatewayUnavailable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: (status: %d, body: %s)", payments.ErrGatewayRejected, resp.StatusCode, string(respBody))
	}

	var response initResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		logger.ErrorLog("Error parsing initialize response",
			logger.String("body", string(respBody)))
		return nil, fmt.Errorf("failed to parse initialize response: %w", err)
	}

	gatewayID := response.Data.ID
	if gatewayID == "" {
		gatewayID = response.Data.Reference
	}

	return &models.GatewayInitResponse{
		GatewayTransactionID: gatewayID,
		RedirectURL:          response.Data.CheckoutURL,
	}, nil
}

// Verify queries the gateway for a transaction's true status. The result is
// authoritative; it is never cached.
func (g *ChapaClient) Verify(ctx context.Context, reference string) (*models.GatewayVerifyResult, error) {
	url := fmt.Sprintf("%s/v1/transaction/verify/%s", g.client.BaseURL, reference)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	g.setHeaders(httpReq)

	resp, err := g.client.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payments.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", payments.ErrGatewayUnavailable, err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: status %d", payments.ErrGatewayUnavailable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: (status: %d, body: %s)", payments.ErrGatewayRejected, resp.StatusCode, string(respBody))
	}

	var response verifyResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		logger.ErrorLog("Error parsing verify response",
			logger.String("reference", reference),
			logger.String("body", string(respBody)))
		return nil, fmt.Errorf("failed to parse verify response: %w", err)
	}

	return &models.GatewayVerifyResult{
		Outcome:    mapOutcome(response.Data.Status),
		RawPayload: json.RawMessage(respBody),
	}, nil
}

// ValidateWebhookSignature checks the HMAC-SHA256 signature of an inbound
// webhook body against the shared webhook secret
func (g *ChapaClient) ValidateWebhookSignature(rawBody []byte, signatureHeader string) bool {
	if signatureHeader == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(g.webhookSecret))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signatureHeader))
}

func (g *ChapaClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Content-Type", "application/json")
}

func mapOutcome(status string) models.GatewayOutcome {
	switch status {
	case "success":
		return models.GatewayOutcomeSuccess
	case "failed":
		return models.GatewayOutcomeFailed
	default:
		return models.GatewayOutcomePending
	}
}
