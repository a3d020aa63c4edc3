package storage

import (
	"context"
	"time"

	"github.com/chambagt/chamba-payments/pkg/models"
)

// CompletionStore defines the privileged interface used by the simulated-gateway
// completion path. It is not exposed to the sandbox API handlers; only the
// completion and reconciliation lambdas hold it.
type CompletionStore interface {
	// MarkProjectComplete atomically advances a fully escrowed project to
	// ready_to_release. Idempotent: a project that already moved on reports
	// ErrProjectNotCompletable, which consumers treat as already done.
	MarkProjectComplete(ctx context.Context, projectID string) error

	// GetStaleEscrowedProjects retrieves test-payment projects that have been
	// sitting in escrowed longer than maxAge, meaning their completion event
	// was likely lost.
	GetStaleEscrowedProjects(ctx context.Context, maxAge time.Duration) ([]models.ProjectPayment, error)
}
