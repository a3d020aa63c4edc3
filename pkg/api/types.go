// Package api holds the wire types for the payments HTTP contract.
// Successful responses wrap their payload in a "data" field, optionally
// alongside a "summary"; failures carry {"error": "<message>"}.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ErrorResponse is the shape of every non-success response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ProjectPaymentRecord is one entry in the client's pending-payments list.
type ProjectPaymentRecord struct {
	ProjectId           string  `json:"project_id"`
	ProjectTitle        string  `json:"project_title"`
	ProjectStatus       string  `json:"project_status"`
	Amount              float64 `json:"amount"`
	DepositedAmount     float64 `json:"deposited_amount"`
	RemainingAmount     float64 `json:"remaining_amount"`
	PaymentStatus       string  `json:"payment_status"`
	ActionRequired      string  `json:"action_required"`
	Freelancer          string  `json:"freelancer"`
	DaysSinceCompletion *int    `json:"days_since_completion,omitempty"`
}

// PendingPaymentsResponse is the body of GET /api/payments/client/pending.
type PendingPaymentsResponse struct {
	Data []ProjectPaymentRecord `json:"data"`
}

// Transaction is one immutable deposit or release event on the wire.
type Transaction struct {
	Id              openapi_types.UUID `json:"id"`
	Title           string             `json:"title"`
	Amount          float64            `json:"amount"`
	Status          string             `json:"status"`
	TransactionDate time.Time          `json:"transaction_date"`
}

// PaymentDetailData is the payload of GET /api/payments/project/{projectId}.
type PaymentDetailData struct {
	ProjectStatus   string        `json:"project_status"`
	ExpectedPayment float64       `json:"expected_payment"`
	EscrowAmount    float64       `json:"escrow_amount"`
	ReleasedAmount  float64       `json:"released_amount"`
	PaymentStatus   string        `json:"payment_status"`
	Transactions    []Transaction `json:"transactions"`
}

// ProjectPaymentStatusResponse is the body of GET /api/payments/project/{projectId}.
type ProjectPaymentStatusResponse struct {
	Data PaymentDetailData `json:"data"`
}

// DepositRequest is the body of POST /api/payments/escrow/deposit.
type DepositRequest struct {
	ProjectId     string  `json:"project_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
}

// DepositData is the post-deposit snapshot of the project payment.
type DepositData struct {
	ProjectId       string  `json:"project_id"`
	DepositedAmount float64 `json:"deposited_amount"`
	RemainingAmount float64 `json:"remaining_amount"`
	PaymentStatus   string  `json:"payment_status"`
}

// DepositResponse is the body of POST /api/payments/escrow/deposit.
type DepositResponse struct {
	Data DepositData `json:"data"`
}

// ReleaseRequest is the body of POST /api/payments/release.
type ReleaseRequest struct {
	ProjectId string `json:"project_id"`
}

// ReleaseSummary is the backend-computed payout summary for a release.
type ReleaseSummary struct {
	FreelancerReceives float64 `json:"freelancer_receives"`
	Commission         float64 `json:"commission"`
}

// ReleaseData wraps the release summary.
type ReleaseData struct {
	Summary ReleaseSummary `json:"summary"`
}

// ReleaseResponse is the body of POST /api/payments/release.
type ReleaseResponse struct {
	Data ReleaseData `json:"data"`
}

// HistoryResponse is the body of GET /api/payments/freelancer/history.
type HistoryResponse struct {
	Data    []Transaction  `json:"data"`
	Summary HistorySummary `json:"summary"`
}

// HistorySummary aggregates the freelancer's completed payments.
type HistorySummary struct {
	TotalEarnings float64 `json:"total_earnings"`
	TotalPayments int     `json:"total_payments"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    openapi_types.Email `json:"email"`
	Password string              `json:"password"`
}

// LoginData carries the bearer token for subsequent requests.
type LoginData struct {
	Token string `json:"token"`
}

// LoginResponse is the body of POST /api/login.
type LoginResponse struct {
	Data LoginData `json:"data"`
}
