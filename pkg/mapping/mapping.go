package mapping

import (
	"github.com/chambagt/chamba-payments/pkg/api"
	"github.com/chambagt/chamba-payments/pkg/models"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ToDomainProjectPayment converts a wire pending-payment record to the
// domain model.
func ToDomainProjectPayment(rec *api.ProjectPaymentRecord) *models.ProjectPayment {
	return &models.ProjectPayment{
		ProjectID:           rec.ProjectId,
		ProjectTitle:        rec.ProjectTitle,
		ProjectStatus:       rec.ProjectStatus,
		Amount:              rec.Amount,
		DepositedAmount:     rec.DepositedAmount,
		PaymentStatus:       models.PaymentStatus(rec.PaymentStatus),
		ActionRequired:      models.ActionRequired(rec.ActionRequired),
		Freelancer:          rec.Freelancer,
		DaysSinceCompletion: rec.DaysSinceCompletion,
	}
}

// ToApiProjectPaymentRecord converts a domain project payment to its wire
// record, deriving remaining_amount.
func ToApiProjectPaymentRecord(p *models.ProjectPayment) *api.ProjectPaymentRecord {
	return &api.ProjectPaymentRecord{
		ProjectId:           p.ProjectID,
		ProjectTitle:        p.ProjectTitle,
		ProjectStatus:       p.ProjectStatus,
		Amount:              p.Amount,
		DepositedAmount:     p.DepositedAmount,
		RemainingAmount:     p.RemainingAmount(),
		PaymentStatus:       string(p.PaymentStatus),
		ActionRequired:      string(p.ActionRequired),
		Freelancer:          p.Freelancer,
		DaysSinceCompletion: p.DaysSinceCompletion,
	}
}

// ToDomainTransaction converts a wire transaction to the domain model.
func ToDomainTransaction(tx *api.Transaction) *models.Transaction {
	return &models.Transaction{
		ID:              uuid.UUID(tx.Id).String(),
		Title:           tx.Title,
		Amount:          tx.Amount,
		Status:          tx.Status,
		TransactionDate: tx.TransactionDate,
	}
}

// ToApiTransaction converts a domain transaction to its wire shape. An ID
// that is not a UUID maps to the zero UUID rather than failing; the
// sandbox always assigns UUIDs.
func ToApiTransaction(tx *models.Transaction) *api.Transaction {
	id, _ := uuid.Parse(tx.ID)
	return &api.Transaction{
		Id:              openapi_types.UUID(id),
		Title:           tx.Title,
		Amount:          tx.Amount,
		Status:          tx.Status,
		TransactionDate: tx.TransactionDate,
	}
}

// ToDomainPaymentDetail converts the project payment status payload to the
// domain model. The wire payload does not repeat the project ID, so the
// caller supplies it.
func ToDomainPaymentDetail(projectID string, d *api.PaymentDetailData) *models.PaymentDetail {
	detail := &models.PaymentDetail{
		ProjectID:       projectID,
		ProjectStatus:   d.ProjectStatus,
		ExpectedPayment: d.ExpectedPayment,
		EscrowAmount:    d.EscrowAmount,
		ReleasedAmount:  d.ReleasedAmount,
		PaymentStatus:   models.PaymentStatus(d.PaymentStatus),
		Transactions:    make([]models.Transaction, len(d.Transactions)),
	}
	for i := range d.Transactions {
		detail.Transactions[i] = *ToDomainTransaction(&d.Transactions[i])
	}
	return detail
}

// ToApiPaymentDetailData converts a domain payment detail to its wire payload.
func ToApiPaymentDetailData(d *models.PaymentDetail) *api.PaymentDetailData {
	data := &api.PaymentDetailData{
		ProjectStatus:   d.ProjectStatus,
		ExpectedPayment: d.ExpectedPayment,
		EscrowAmount:    d.EscrowAmount,
		ReleasedAmount:  d.ReleasedAmount,
		PaymentStatus:   string(d.PaymentStatus),
		Transactions:    make([]api.Transaction, len(d.Transactions)),
	}
	for i := range d.Transactions {
		data.Transactions[i] = *ToApiTransaction(&d.Transactions[i])
	}
	return data
}

// ToApiDepositData converts a post-deposit domain result to its wire payload.
func ToApiDepositData(res *models.DepositResult) *api.DepositData {
	return &api.DepositData{
		ProjectId:       res.ProjectID,
		DepositedAmount: res.DepositedAmount,
		RemainingAmount: res.RemainingAmount,
		PaymentStatus:   string(res.PaymentStatus),
	}
}
