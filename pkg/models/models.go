package models

import (
	"time"
)

// PaymentStatus defines the lifecycle stage of a project's payment.
// The backend is the single source of truth for transitions; clients
// only observe these values.
type PaymentStatus string

const (
	StatusPendingDeposit PaymentStatus = "pending_deposit"
	StatusPartialDeposit PaymentStatus = "partial_deposit"
	StatusEscrowed       PaymentStatus = "escrowed"
	StatusReadyToRelease PaymentStatus = "ready_to_release"
	StatusReleased       PaymentStatus = "released"
)

// ActionRequired is the backend-supplied hint for the next client action.
// It duplicates information recoverable from PaymentStatus and must never
// be trusted as a guard on its own.
type ActionRequired string

const (
	ActionHintDeposit          ActionRequired = "deposit"
	ActionHintDepositRemaining ActionRequired = "deposit_remaining"
	ActionHintRelease          ActionRequired = "release"
	ActionHintWait             ActionRequired = "wait"
	ActionHintNone             ActionRequired = "none"
)

// PaymentMethod enumerates the accepted deposit methods. TestPayment is an
// internal marker accepted only by the sandbox gateway.
type PaymentMethod string

const (
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodCreditCard   PaymentMethod = "credit_card"
	MethodDebitCard    PaymentMethod = "debit_card"
	MethodPaypal       PaymentMethod = "paypal"
	MethodWireTransfer PaymentMethod = "wire_transfer"
	MethodTestPayment  PaymentMethod = "test_payment"
)

// ProjectPayment represents the payment lifecycle of one contracted project.
// It includes dynamodbav tags for the sandbox storage layer. Amounts are
// quetzales (GTQ).
type ProjectPayment struct {
	ProjectID           string         `json:"project_id" dynamodbav:"project_id"`
	ProjectTitle        string         `json:"project_title" dynamodbav:"project_title"`
	ProjectStatus       string         `json:"project_status" dynamodbav:"project_status"`
	Amount              float64        `json:"amount" dynamodbav:"amount"`
	DepositedAmount     float64        `json:"deposited_amount" dynamodbav:"deposited_amount"`
	ReleasedAmount      float64        `json:"released_amount" dynamodbav:"released_amount"`
	PaymentStatus       PaymentStatus  `json:"payment_status" dynamodbav:"payment_status"`
	ActionRequired      ActionRequired `json:"action_required" dynamodbav:"action_required"`
	Freelancer          string         `json:"freelancer" dynamodbav:"freelancer"`
	PaymentMethod       PaymentMethod  `json:"payment_method,omitempty" dynamodbav:"payment_method,omitempty"`
	DaysSinceCompletion *int           `json:"days_since_completion,omitempty" dynamodbav:"days_since_completion,omitempty"`
	Version             int64          `json:"-" dynamodbav:"version"`
	CreatedAt           time.Time      `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at" dynamodbav:"updated_at"`
}

// RemainingAmount is the portion of the contracted amount not yet in
// escrow. Never negative.
func (p *ProjectPayment) RemainingAmount() float64 {
	remaining := p.Amount - p.DepositedAmount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// TransactionType distinguishes deposit events from release events.
type TransactionType string

const (
	TransactionDeposit TransactionType = "deposit"
	TransactionRelease TransactionType = "release"
)

// Transaction is an immutable record of one deposit or release event.
// Only the backend creates transactions; clients never mutate them.
type Transaction struct {
	ID              string          `json:"id" dynamodbav:"id"`
	ProjectID       string          `json:"project_id" dynamodbav:"project_id"`
	Title           string          `json:"title" dynamodbav:"title"`
	Type            TransactionType `json:"type" dynamodbav:"type"`
	Amount          float64         `json:"amount" dynamodbav:"amount"`
	Status          string          `json:"status" dynamodbav:"status"`
	Freelancer      string          `json:"freelancer,omitempty" dynamodbav:"freelancer,omitempty"`
	TransactionDate time.Time       `json:"transaction_date" dynamodbav:"transaction_date"`
}

// DepositRequest is the transient, client-constructed request to place
// funds in escrow for a project.
type DepositRequest struct {
	ProjectID     string        `json:"project_id"`
	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// DepositResult is the backend's view of the project payment after a
// successful deposit.
type DepositResult struct {
	ProjectID       string        `json:"project_id"`
	DepositedAmount float64       `json:"deposited_amount"`
	RemainingAmount float64       `json:"remaining_amount"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
}

// ReleaseResult carries the backend-computed release summary. The client
// reports FreelancerReceives verbatim and never computes commission itself.
type ReleaseResult struct {
	FreelancerReceives float64 `json:"freelancer_receives"`
	Commission         float64 `json:"commission"`
}

// PaymentDetail is the full payment view of one project, including its
// transaction list.
type PaymentDetail struct {
	ProjectID       string        `json:"project_id"`
	ProjectStatus   string        `json:"project_status"`
	ExpectedPayment float64       `json:"expected_payment"`
	EscrowAmount    float64       `json:"escrow_amount"`
	ReleasedAmount  float64       `json:"released_amount"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	Transactions    []Transaction `json:"transactions"`
}

// HistorySummary aggregates a freelancer's payment history.
type HistorySummary struct {
	TotalEarnings float64 `json:"total_earnings"`
	TotalPayments int     `json:"total_payments"`
}

// CompletionEvent is the sandbox message that marks a fully escrowed
// test-payment project as completed after a simulated work period.
type CompletionEvent struct {
	ProjectID   string    `json:"project_id"`
	RequestedAt time.Time `json:"requested_at"`
}
