// Package workflow orchestrates the escrow payment workflow on the client
// side: load pending payments, collect a deposit, confirm a release, view
// details. The backend stays authoritative for every transition; the
// controller only guards against requests that are already known to be
// invalid from the cached snapshot, and resynchronizes after every
// successful mutation.
package workflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/chambagt/chamba-payments/pkg/models"
)

// PaymentsAPI is the subset of the payments client the workflow depends on.
type PaymentsAPI interface {
	GetClientPendingPayments(ctx context.Context) ([]models.ProjectPayment, error)
	GetProjectPaymentStatus(ctx context.Context, projectID string) (*models.PaymentDetail, error)
	DepositToEscrow(ctx context.Context, projectID string, amount float64, method models.PaymentMethod) (*models.DepositResult, error)
	ReleasePayment(ctx context.Context, projectID string) (*models.ReleaseResult, error)
}

// Step identifies the single active workflow step. Exactly one step is
// active at a time; Idle means no flow is in progress.
type Step string

const (
	StepIdle             Step = "idle"
	StepSelectingAmount  Step = "selecting_amount"
	StepConfirmingDeposit Step = "confirming_deposit"
	StepConfirmingRelease Step = "confirming_release"
	StepViewingDetails   Step = "viewing_details"
)

// Controller holds the refreshable snapshot of pending payments and the
// active workflow step. It serializes mutating calls: at most one deposit
// or release may be outstanding at a time.
type Controller struct {
	api PaymentsAPI

	mu        sync.Mutex
	pending   []models.ProjectPayment
	step      Step
	selected  string
	suggested float64
	detail    *models.PaymentDetail
	busy      bool
}

// New creates an idle controller with an empty cache.
func New(api PaymentsAPI) *Controller {
	return &Controller{api: api, step: StepIdle}
}

// Step returns the active workflow step.
func (c *Controller) Step() Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Pending returns a copy of the cached pending payments list.
func (c *Controller) Pending() []models.ProjectPayment {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.ProjectPayment, len(c.pending))
	copy(out, c.pending)
	return out
}

// SuggestedAmount returns the deposit amount suggested by InitiateDeposit.
func (c *Controller) SuggestedAmount() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.suggested
}

// Detail returns the payment detail loaded by ViewDetails, or nil.
func (c *Controller) Detail() *models.PaymentDetail {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.detail
}

// Cancel abandons the active step and returns to idle. The cache is left
// untouched.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return
	}
	c.step = StepIdle
	c.selected = ""
	c.suggested = 0
	c.detail = nil
}

// LoadPendingPayments fetches the client's pending payments and fully
// replaces the cache. On failure the cache is left untouched and the error
// is recoverable: re-invoking retries.
func (c *Controller) LoadPendingPayments(ctx context.Context) error {
	payments, err := c.api.GetClientPendingPayments(ctx)
	if err != nil {
		return fmt.Errorf("failed to load pending payments: %w", err)
	}

	c.mu.Lock()
	c.pending = payments
	c.mu.Unlock()
	return nil
}

// findProject returns a copy of the cached project. Callers must hold c.mu.
func (c *Controller) findProject(projectID string) (*models.ProjectPayment, error) {
	for i := range c.pending {
		if c.pending[i].ProjectID == projectID {
			p := c.pending[i]
			return &p, nil
		}
	}
	return nil, ErrUnknownProject
}

// InitiateDeposit opens the amount-selection step for a project and returns
// the suggested amount: the remaining amount when a partial deposit exists,
// otherwise the full contracted amount. No network call is made.
func (c *Controller) InitiateDeposit(projectID string) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.step != StepIdle {
		return 0, ErrInvalidStep
	}
	project, err := c.findProject(projectID)
	if err != nil {
		return 0, err
	}
	if project.PaymentStatus == models.StatusReleased {
		return 0, ErrAlreadyReleased
	}

	suggested := project.RemainingAmount()
	if suggested <= 0 {
		suggested = project.Amount
	}

	c.step = StepSelectingAmount
	c.selected = projectID
	c.suggested = suggested
	return suggested, nil
}

// ConfirmDeposit submits the deposit for the project selected by
// InitiateDeposit. On success the cache is resynchronized and the workflow
// returns to idle; on failure the cached state is untouched and the
// amount-selection step stays open so the user may retry or cancel.
func (c *Controller) ConfirmDeposit(ctx context.Context, amount float64, method models.PaymentMethod) (*models.DepositResult, error) {
	c.mu.Lock()
	if c.step != StepSelectingAmount {
		c.mu.Unlock()
		return nil, ErrInvalidStep
	}
	if c.busy {
		c.mu.Unlock()
		return nil, ErrOperationInFlight
	}
	if amount <= 0 {
		c.mu.Unlock()
		return nil, ErrInvalidAmount
	}
	projectID := c.selected
	c.step = StepConfirmingDeposit
	c.busy = true
	c.mu.Unlock()

	result, err := c.api.DepositToEscrow(ctx, projectID, amount, method)

	c.mu.Lock()
	c.busy = false
	if err != nil {
		c.step = StepSelectingAmount
		c.mu.Unlock()
		return nil, err
	}
	c.step = StepIdle
	c.selected = ""
	c.suggested = 0
	c.mu.Unlock()

	if err := c.LoadPendingPayments(ctx); err != nil {
		// The deposit succeeded; only the resynchronization failed. The
		// caller may retry the reload.
		return result, fmt.Errorf("deposit accepted but refresh failed: %w", err)
	}
	return result, nil
}

// RequestRelease arms the release-confirmation step for a project. Release
// is irreversible, so it always requires this explicit step before
// ConfirmRelease. The workflow layer refuses to arm it unless the cached
// status is ready_to_release; the backend re-validates regardless.
func (c *Controller) RequestRelease(projectID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.step != StepIdle {
		return ErrInvalidStep
	}
	project, err := c.findProject(projectID)
	if err != nil {
		return err
	}
	if project.PaymentStatus != models.StatusReadyToRelease {
		return ErrNotReadyToRelease
	}

	c.step = StepConfirmingRelease
	c.selected = projectID
	return nil
}

// ConfirmRelease performs the armed release. The returned result carries
// the backend-computed summary, including the amount the freelancer
// receives; the controller never computes commission itself. On failure the
// cache is untouched and the confirmation step stays open.
func (c *Controller) ConfirmRelease(ctx context.Context) (*models.ReleaseResult, error) {
	c.mu.Lock()
	if c.step != StepConfirmingRelease {
		c.mu.Unlock()
		return nil, ErrInvalidStep
	}
	if c.busy {
		c.mu.Unlock()
		return nil, ErrOperationInFlight
	}
	projectID := c.selected
	c.busy = true
	c.mu.Unlock()

	result, err := c.api.ReleasePayment(ctx, projectID)

	c.mu.Lock()
	c.busy = false
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	c.step = StepIdle
	c.selected = ""
	c.mu.Unlock()

	if err := c.LoadPendingPayments(ctx); err != nil {
		return result, fmt.Errorf("release accepted but refresh failed: %w", err)
	}
	return result, nil
}

// ViewDetails fetches the full payment detail and transaction list for a
// project. Read-only: no state transition besides opening the details step.
func (c *Controller) ViewDetails(ctx context.Context, projectID string) (*models.PaymentDetail, error) {
	c.mu.Lock()
	if c.step != StepIdle {
		c.mu.Unlock()
		return nil, ErrInvalidStep
	}
	c.mu.Unlock()

	detail, err := c.api.GetProjectPaymentStatus(ctx, projectID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.step = StepViewingDetails
	c.selected = projectID
	c.detail = detail
	c.mu.Unlock()
	return detail, nil
}
