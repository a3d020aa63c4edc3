package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/chambagt/chamba-payments/pkg/client"
	"github.com/chambagt/chamba-payments/pkg/models"
	"github.com/chambagt/chamba-payments/pkg/workflow/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// The HTTP client is the production implementation of PaymentsAPI.
var _ PaymentsAPI = (*client.Client)(nil)

func pendingFixture() []models.ProjectPayment {
	return []models.ProjectPayment{
		{
			ProjectID:       "proj-1",
			ProjectTitle:    "Logo",
			Amount:          1000,
			DepositedAmount: 400,
			PaymentStatus:   models.StatusPartialDeposit,
			ActionRequired:  models.ActionHintDepositRemaining,
			Freelancer:      "maria",
		},
		{
			ProjectID:     "proj-2",
			ProjectTitle:  "Sitio web",
			Amount:        2000,
			PaymentStatus: models.StatusPendingDeposit,
			Freelancer:    "jorge",
		},
		{
			ProjectID:       "proj-3",
			ProjectTitle:    "App móvil",
			Amount:          500,
			DepositedAmount: 500,
			PaymentStatus:   models.StatusReadyToRelease,
			ActionRequired:  models.ActionHintRelease,
			Freelancer:      "maria",
		},
	}
}

func loadedController(t *testing.T, api *mocks.PaymentsAPI) *Controller {
	t.Helper()
	api.On("GetClientPendingPayments", mock.Anything).Return(pendingFixture(), nil).Once()
	c := New(api)
	assert.NoError(t, c.LoadPendingPayments(context.Background()))
	return c
}

func TestLoadPendingPayments(t *testing.T) {
	t.Run("Full Replace", func(t *testing.T) {
		api := new(mocks.PaymentsAPI)
		api.On("GetClientPendingPayments", mock.Anything).Return(pendingFixture(), nil).Once()
		api.On("GetClientPendingPayments", mock.Anything).Return([]models.ProjectPayment{pendingFixture()[0]}, nil).Once()

		c := New(api)
		assert.NoError(t, c.LoadPendingPayments(context.Background()))
		assert.Len(t, c.Pending(), 3)

		assert.NoError(t, c.LoadPendingPayments(context.Background()))
		assert.Len(t, c.Pending(), 1)
		api.AssertExpectations(t)
	})

	t.Run("Idempotent Without Mutation", func(t *testing.T) {
		api := new(mocks.PaymentsAPI)
		api.On("GetClientPendingPayments", mock.Anything).Return(pendingFixture(), nil).Twice()

		c := New(api)
		assert.NoError(t, c.LoadPendingPayments(context.Background()))
		first := c.Pending()
		assert.NoError(t, c.LoadPendingPayments(context.Background()))
		assert.Equal(t, first, c.Pending())
	})

	t.Run("Failure Leaves Cache Untouched", func(t *testing.T) {
		api := new(mocks.PaymentsAPI)
		api.On("GetClientPendingPayments", mock.Anything).Return(pendingFixture(), nil).Once()
		api.On("GetClientPendingPayments", mock.Anything).Return(nil, errors.New("network down")).Once()

		c := New(api)
		assert.NoError(t, c.LoadPendingPayments(context.Background()))
		assert.Error(t, c.LoadPendingPayments(context.Background()))
		assert.Len(t, c.Pending(), 3)
	})
}

func TestInitiateDeposit(t *testing.T) {
	t.Run("Suggests Remaining Amount", func(t *testing.T) {
		api := new(mocks.PaymentsAPI)
		c := loadedController(t, api)

		suggested, err := c.InitiateDeposit("proj-1")
		assert.NoError(t, err)
		assert.Equal(t, 600.0, suggested)
		assert.Equal(t, StepSelectingAmount, c.Step())
	})

	t.Run("Suggests Full Amount Without Prior Deposit", func(t *testing.T) {
		api := new(mocks.PaymentsAPI)
		c := loadedController(t, api)

		suggested, err := c.InitiateDeposit("proj-2")
		assert.NoError(t, err)
		assert.Equal(t, 2000.0, suggested)
	})

	t.Run("Unknown Project", func(t *testing.T) {
		api := new(mocks.PaymentsAPI)
		c := loadedController(t, api)

		_, err := c.InitiateDeposit("nope")
		assert.ErrorIs(t, err, ErrUnknownProject)
		assert.Equal(t, StepIdle, c.Step())
	})

	t.Run("Only One Active Step", func(t *testing.T) {
		api := new(mocks.PaymentsAPI)
		c := loadedController(t, api)

		_, err := c.InitiateDeposit("proj-1")
		assert.NoError(t, err)
		_, err = c.InitiateDeposit("proj-2")
		assert.ErrorIs(t, err, ErrInvalidStep)
	})
}

func TestConfirmDeposit(t *testing.T) {
	t.Run("Success Resynchronizes", func(t *testing.T) {
		api := new(mocks.PaymentsAPI)
		c := loadedController(t, api)

		api.On("DepositToEscrow", mock.Anything, "proj-1", 600.0, models.MethodCreditCard).
			Return(&models.DepositResult{
				ProjectID:       "proj-1",
				DepositedAmount: 1000,
				RemainingAmount: 0,
				PaymentStatus:   models.StatusEscrowed,
			}, nil).Once()

		refreshed := pendingFixture()
		refreshed[0].DepositedAmount = 1000
		refreshed[0].PaymentStatus = models.StatusEscrowed
		refreshed[0].ActionRequired = models.ActionHintWait
		api.On("GetClientPendingPayments", mock.Anything).Return(refreshed, nil).Once()

		suggested, err := c.InitiateDeposit("proj-1")
		assert.NoError(t, err)
		assert.Equal(t, 600.0, suggested)

		result, err := c.ConfirmDeposit(context.Background(), suggested, models.MethodCreditCard)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusEscrowed, result.PaymentStatus)
		assert.Equal(t, StepIdle, c.Step())

		pending := c.Pending()
		assert.Equal(t, models.StatusEscrowed, pending[0].PaymentStatus)
		assert.Equal(t, 0.0, pending[0].RemainingAmount())
		api.AssertExpectations(t)
	})

	t.Run("Failure Leaves Cache Untouched", func(t *testing.T) {
		api := new(mocks.PaymentsAPI)
		c := loadedController(t, api)

		api.On("DepositToEscrow", mock.Anything, "proj-1", 600.0, models.MethodPaypal).
			Return(nil, errors.New("tarjeta rechazada")).Once()

		before := c.Pending()
		_, err := c.InitiateDeposit("proj-1")
		assert.NoError(t, err)

		_, err = c.ConfirmDeposit(context.Background(), 600, models.MethodPaypal)
		assert.Error(t, err)
		assert.Equal(t, before, c.Pending())
		// The step stays open for a retry.
		assert.Equal(t, StepSelectingAmount, c.Step())
		api.AssertExpectations(t)
	})

	t.Run("Rejects Non-Positive Amount", func(t *testing.T) {
		api := new(mocks.PaymentsAPI)
		c := loadedController(t, api)

		_, err := c.InitiateDeposit("proj-1")
		assert.NoError(t, err)
		_, err = c.ConfirmDeposit(context.Background(), 0, models.MethodCreditCard)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("Requires Amount Selection Step", func(t *testing.T) {
		api := new(mocks.PaymentsAPI)
		c := loadedController(t, api)

		_, err := c.ConfirmDeposit(context.Background(), 100, models.MethodCreditCard)
		assert.ErrorIs(t, err, ErrInvalidStep)
	})
}

func TestRelease(t *testing.T) {
	t.Run("Not Invocable Unless Ready", func(t *testing.T) {
		api := new(mocks.PaymentsAPI)
		c := loadedController(t, api)

		// proj-1 is only partially deposited.
		err := c.RequestRelease("proj-1")
		assert.ErrorIs(t, err, ErrNotReadyToRelease)
		assert.Equal(t, StepIdle, c.Step())
		// No network call may have happened.
		api.AssertNotCalled(t, "ReleasePayment", mock.Anything, mock.Anything)
	})

	t.Run("Success Reports Backend Summary", func(t *testing.T) {
		api := new(mocks.PaymentsAPI)
		c := loadedController(t, api)

		api.On("ReleasePayment", mock.Anything, "proj-3").
			Return(&models.ReleaseResult{FreelancerReceives: 450, Commission: 50}, nil).Once()
		api.On("GetClientPendingPayments", mock.Anything).
			Return(pendingFixture()[:2], nil).Once()

		assert.NoError(t, c.RequestRelease("proj-3"))
		assert.Equal(t, StepConfirmingRelease, c.Step())

		result, err := c.ConfirmRelease(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 450.0, result.FreelancerReceives)
		assert.Equal(t, StepIdle, c.Step())
		assert.Len(t, c.Pending(), 2)
		api.AssertExpectations(t)
	})

	t.Run("Backend Rejection Leaves Cache Unchanged", func(t *testing.T) {
		api := new(mocks.PaymentsAPI)
		c := loadedController(t, api)

		api.On("ReleasePayment", mock.Anything, "proj-3").
			Return(nil, errors.New("el proyecto aún no está listo para liberar el pago")).Once()

		before := c.Pending()
		assert.NoError(t, c.RequestRelease("proj-3"))

		_, err := c.ConfirmRelease(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no está listo")
		assert.Equal(t, before, c.Pending())
		assert.Equal(t, StepConfirmingRelease, c.Step())
		api.AssertExpectations(t)
	})

	t.Run("Confirm Requires Armed Step", func(t *testing.T) {
		api := new(mocks.PaymentsAPI)
		c := loadedController(t, api)

		_, err := c.ConfirmRelease(context.Background())
		assert.ErrorIs(t, err, ErrInvalidStep)
	})
}

func TestViewDetails(t *testing.T) {
	api := new(mocks.PaymentsAPI)
	c := loadedController(t, api)

	detail := &models.PaymentDetail{
		ProjectID:     "proj-1",
		PaymentStatus: models.StatusPartialDeposit,
		Transactions:  []models.Transaction{{Title: "Depósito", Amount: 400}},
	}
	api.On("GetProjectPaymentStatus", mock.Anything, "proj-1").Return(detail, nil).Once()

	got, err := c.ViewDetails(context.Background(), "proj-1")
	assert.NoError(t, err)
	assert.Equal(t, detail, got)
	assert.Equal(t, StepViewingDetails, c.Step())

	c.Cancel()
	assert.Equal(t, StepIdle, c.Step())
	assert.Nil(t, c.Detail())
	api.AssertExpectations(t)
}
