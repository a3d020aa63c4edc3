// Package client is the typed HTTP client for the payments API. It mediates
// authenticated request/response traffic and carries no business logic:
// every call sends exactly one HTTP request, never retries, and surfaces
// backend rejections to the caller.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/chambagt/chamba-payments/pkg/api"
	"github.com/chambagt/chamba-payments/pkg/mapping"
	"github.com/chambagt/chamba-payments/pkg/models"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Client talks to the payments API. All requests carry the bearer token
// except Login, which obtains it.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client, e.g. to set a timeout
// or to target an httptest server transport.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// New creates a payments API client for the given base URL and bearer token.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token, typically after Login.
func (c *Client) SetToken(token string) {
	c.token = token
}

// do sends one request and decodes the response into out. Transport
// failures come back wrapped; non-2xx responses come back as *apiError
// carrying the backend's error message when present.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResp api.ErrorResponse
		// A malformed or empty error body is fine; the message stays empty
		// and callers substitute their fallback.
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return &apiError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Login authenticates and stores the returned bearer token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	reqBody := api.LoginRequest{Email: openapi_types.Email(email), Password: password}
	var resp api.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", nil, reqBody, &resp); err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("login rejected: %s", apiErr.messageOr(fallbackLoginMessage))
		}
		return "", err
	}
	c.token = resp.Data.Token
	return resp.Data.Token, nil
}

// GetProjectPaymentStatus fetches the full payment detail for one project,
// including its transaction list.
func (c *Client) GetProjectPaymentStatus(ctx context.Context, projectID string) (*models.PaymentDetail, error) {
	var resp api.ProjectPaymentStatusResponse
	err := c.do(ctx, http.MethodGet, "/api/payments/project/"+url.PathEscape(projectID), nil, nil, &resp)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			return nil, &PaymentStatusError{StatusCode: apiErr.StatusCode, Message: apiErr.messageOr(fallbackStatusMessage)}
		}
		return nil, err
	}
	return mapping.ToDomainPaymentDetail(projectID, &resp.Data), nil
}

// DepositToEscrow submits a deposit for a project. The amount must be a
// positive finite number; every other bound is validated by the backend,
// which is authoritative for amounts.
func (c *Client) DepositToEscrow(ctx context.Context, projectID string, amount float64, method models.PaymentMethod) (*models.DepositResult, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, ErrInvalidAmount
	}

	reqBody := api.DepositRequest{
		ProjectId:     projectID,
		Amount:        amount,
		PaymentMethod: string(method),
	}
	var resp api.DepositResponse
	if err := c.do(ctx, http.MethodPost, "/api/payments/escrow/deposit", nil, reqBody, &resp); err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			return nil, &DepositError{StatusCode: apiErr.StatusCode, Message: apiErr.messageOr(fallbackDepositMessage)}
		}
		return nil, err
	}
	return &models.DepositResult{
		ProjectID:       resp.Data.ProjectId,
		DepositedAmount: resp.Data.DepositedAmount,
		RemainingAmount: resp.Data.RemainingAmount,
		PaymentStatus:   models.PaymentStatus(resp.Data.PaymentStatus),
	}, nil
}

// ReleasePayment requests release of escrowed funds to the freelancer.
// The backend enforces the preconditions (project completed, funds fully
// escrowed); its rejection is surfaced verbatim.
func (c *Client) ReleasePayment(ctx context.Context, projectID string) (*models.ReleaseResult, error) {
	reqBody := api.ReleaseRequest{ProjectId: projectID}
	var resp api.ReleaseResponse
	if err := c.do(ctx, http.MethodPost, "/api/payments/release", nil, reqBody, &resp); err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			return nil, &ReleaseError{StatusCode: apiErr.StatusCode, Message: apiErr.messageOr(fallbackReleaseMessage)}
		}
		return nil, err
	}
	return &models.ReleaseResult{
		FreelancerReceives: resp.Data.Summary.FreelancerReceives,
		Commission:         resp.Data.Summary.Commission,
	}, nil
}

// HistoryFilter narrows a freelancer payment history query. Zero values
// are omitted from the request.
type HistoryFilter struct {
	Status string
	Limit  int
	Offset int
}

// GetFreelancerPaymentHistory lists the authenticated freelancer's
// payments, optionally filtered by status and paginated.
func (c *Client) GetFreelancerPaymentHistory(ctx context.Context, filter *HistoryFilter) ([]models.Transaction, *models.HistorySummary, error) {
	query := url.Values{}
	if filter != nil {
		if filter.Status != "" {
			query.Set("status", filter.Status)
		}
		if filter.Limit > 0 {
			query.Set("limit", strconv.Itoa(filter.Limit))
		}
		if filter.Offset > 0 {
			query.Set("offset", strconv.Itoa(filter.Offset))
		}
	}

	var resp api.HistoryResponse
	if err := c.do(ctx, http.MethodGet, "/api/payments/freelancer/history", query, nil, &resp); err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			return nil, nil, fmt.Errorf("%s (HTTP %d)", apiErr.messageOr(fallbackHistoryMessage), apiErr.StatusCode)
		}
		return nil, nil, err
	}

	transactions := make([]models.Transaction, len(resp.Data))
	for i := range resp.Data {
		transactions[i] = *mapping.ToDomainTransaction(&resp.Data[i])
	}
	summary := &models.HistorySummary{
		TotalEarnings: resp.Summary.TotalEarnings,
		TotalPayments: resp.Summary.TotalPayments,
	}
	return transactions, summary, nil
}

// GetClientPendingPayments lists every project that requires a client
// payment action.
func (c *Client) GetClientPendingPayments(ctx context.Context) ([]models.ProjectPayment, error) {
	var resp api.PendingPaymentsResponse
	if err := c.do(ctx, http.MethodGet, "/api/payments/client/pending", nil, nil, &resp); err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("%s (HTTP %d)", apiErr.messageOr(fallbackPendingMessage), apiErr.StatusCode)
		}
		return nil, err
	}

	payments := make([]models.ProjectPayment, len(resp.Data))
	for i := range resp.Data {
		payments[i] = *mapping.ToDomainProjectPayment(&resp.Data[i])
	}
	return payments, nil
}
