package storage

import (
	"context"

	"github.com/chambagt/chamba-payments/pkg/models"
)

// HistoryFilter narrows a freelancer payment history listing.
type HistoryFilter struct {
	Freelancer string
	Status     string
	Limit      int32
	Offset     int32
}

// EscrowReader defines the interface for reading escrow payment data.
type EscrowReader interface {
	// GetProjectPayment retrieves the payment record for one project.
	GetProjectPayment(ctx context.Context, projectID string) (*models.ProjectPayment, error)

	// ListTransactionsByProject retrieves all deposit/release events for a project,
	// newest first.
	ListTransactionsByProject(ctx context.Context, projectID string) ([]models.Transaction, error)

	// ListPendingPayments retrieves every project still requiring a client payment
	// action, i.e. whose payment has not been released.
	ListPendingPayments(ctx context.Context) ([]models.ProjectPayment, error)

	// ListFreelancerHistory retrieves a freelancer's payment transactions,
	// optionally filtered by status and paginated.
	ListFreelancerHistory(ctx context.Context, filter HistoryFilter) ([]models.Transaction, error)
}

// EscrowManager defines the interface for the two mutating escrow operations.
// Both are atomic: the project record and the transaction record are written
// together or not at all.
type EscrowManager interface {
	// Deposit places funds in escrow for a project and records the transaction.
	// The project's payment status advances to partial_deposit or escrowed
	// depending on the cumulative deposited amount.
	Deposit(ctx context.Context, req *models.DepositRequest) (*models.ProjectPayment, *models.Transaction, error)

	// Release transfers the escrowed funds to the freelancer. Only valid while
	// the payment status is ready_to_release; released is terminal.
	Release(ctx context.Context, projectID string) (*models.ProjectPayment, *models.Transaction, error)
}
