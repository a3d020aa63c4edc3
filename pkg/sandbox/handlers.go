// Package sandbox implements the payments HTTP contract against local AWS
// resources. It exists so the client and workflow layers can be exercised end
// to end without the production platform: the test_payment method simulates
// the gateway, including the delayed project-completion transition.
package sandbox

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/chambagt/chamba-payments/pkg/api"
	"github.com/chambagt/chamba-payments/pkg/mapping"
	"github.com/chambagt/chamba-payments/pkg/models"
	"github.com/chambagt/chamba-payments/pkg/scheduler"
	"github.com/chambagt/chamba-payments/pkg/storage"
	"github.com/chambagt/chamba-payments/pkg/websockets"
	"github.com/go-chi/chi/v5"
)

// DefaultCommissionRate is the platform cut applied when a payment is released.
const DefaultCommissionRate = 0.10

// PaymentsHandler implements the payments endpoints. It holds the sandbox's
// dependencies: the storage layer, the completion scheduler for simulated
// gateway deposits, and the publisher for payment update pushes.
type PaymentsHandler struct {
	Store     storage.ApiStore
	Scheduler scheduler.CompletionScheduler
	Publisher websockets.Publisher

	// Token is returned by Login and expected by the auth middleware.
	Token string

	// Freelancer identifies the simulated logged-in freelancer for history
	// queries.
	Freelancer string

	// CommissionRate applies to releases; zero means DefaultCommissionRate.
	CommissionRate float64

	// CompletionDelay is how long a fully escrowed test_payment project waits
	// before being marked complete.
	CompletionDelay time.Duration
}

// NewPaymentsHandler creates a PaymentsHandler with the default commission rate.
func NewPaymentsHandler(store storage.ApiStore, sched scheduler.CompletionScheduler, pub websockets.Publisher) *PaymentsHandler {
	return &PaymentsHandler{
		Store:           store,
		Scheduler:       sched,
		Publisher:       pub,
		CommissionRate:  DefaultCommissionRate,
		CompletionDelay: time.Minute,
	}
}

// GetProjectPayment handles GET /api/payments/project/{projectId}.
func (h *PaymentsHandler) GetProjectPayment(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")

	project, err := h.Store.GetProjectPayment(r.Context(), projectID)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	transactions, err := h.Store.ListTransactionsByProject(r.Context(), projectID)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	detail := &models.PaymentDetail{
		ProjectID:       project.ProjectID,
		ProjectStatus:   project.ProjectStatus,
		ExpectedPayment: project.Amount,
		EscrowAmount:    project.DepositedAmount,
		ReleasedAmount:  project.ReleasedAmount,
		PaymentStatus:   project.PaymentStatus,
		Transactions:    transactions,
	}

	respondJSON(w, http.StatusOK, api.ProjectPaymentStatusResponse{Data: *mapping.ToApiPaymentDetailData(detail)})
}

// Deposit handles POST /api/payments/escrow/deposit.
func (h *PaymentsHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req api.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "cuerpo de la solicitud inválido")
		return
	}
	if req.Amount <= 0 {
		respondError(w, http.StatusUnprocessableEntity, "el monto del depósito debe ser mayor que cero")
		return
	}

	project, _, err := h.Store.Deposit(r.Context(), &models.DepositRequest{
		ProjectID:     req.ProjectId,
		Amount:        req.Amount,
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		respondStorageError(w, err)
		return
	}

	// A simulated-gateway deposit that fully funds the escrow also schedules
	// the project's completion, standing in for the work being delivered.
	if project.PaymentMethod == models.MethodTestPayment && project.PaymentStatus == models.StatusEscrowed {
		event := &models.CompletionEvent{ProjectID: project.ProjectID, RequestedAt: time.Now()}
		if err := h.Scheduler.ScheduleCompletion(r.Context(), event, h.CompletionDelay); err != nil {
			slog.Error("failed to schedule project completion", "project_id", project.ProjectID, "error", err)
		}
	}

	h.publishUpdate(r, project)

	result := &models.DepositResult{
		ProjectID:       project.ProjectID,
		DepositedAmount: project.DepositedAmount,
		RemainingAmount: project.RemainingAmount(),
		PaymentStatus:   project.PaymentStatus,
	}
	respondJSON(w, http.StatusOK, api.DepositResponse{Data: *mapping.ToApiDepositData(result)})
}

// Release handles POST /api/payments/release.
func (h *PaymentsHandler) Release(w http.ResponseWriter, r *http.Request) {
	var req api.ReleaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "cuerpo de la solicitud inválido")
		return
	}

	project, tx, err := h.Store.Release(r.Context(), req.ProjectId)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	h.publishUpdate(r, project)

	rate := h.CommissionRate
	if rate == 0 {
		rate = DefaultCommissionRate
	}
	commission := tx.Amount * rate
	respondJSON(w, http.StatusOK, api.ReleaseResponse{Data: api.ReleaseData{
		Summary: api.ReleaseSummary{
			FreelancerReceives: tx.Amount - commission,
			Commission:         commission,
		},
	}})
}

// FreelancerHistory handles GET /api/payments/freelancer/history.
func (h *PaymentsHandler) FreelancerHistory(w http.ResponseWriter, r *http.Request) {
	filter := storage.HistoryFilter{
		Freelancer: h.Freelancer,
		Status:     r.URL.Query().Get("status"),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.ParseInt(v, 10, 32)
		if err != nil || limit < 0 {
			respondError(w, http.StatusBadRequest, "parámetro limit inválido")
			return
		}
		filter.Limit = int32(limit)
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		offset, err := strconv.ParseInt(v, 10, 32)
		if err != nil || offset < 0 {
			respondError(w, http.StatusBadRequest, "parámetro offset inválido")
			return
		}
		filter.Offset = int32(offset)
	}

	page, err := h.Store.ListFreelancerHistory(r.Context(), filter)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	// The summary spans the whole history, not the requested page.
	all := page
	if filter.Limit > 0 || filter.Offset > 0 {
		all, err = h.Store.ListFreelancerHistory(r.Context(), storage.HistoryFilter{
			Freelancer: filter.Freelancer,
			Status:     filter.Status,
		})
		if err != nil {
			respondStorageError(w, err)
			return
		}
	}

	summary := api.HistorySummary{TotalPayments: len(all)}
	for _, tx := range all {
		summary.TotalEarnings += tx.Amount
	}

	data := make([]api.Transaction, 0, len(page))
	for i := range page {
		data = append(data, *mapping.ToApiTransaction(&page[i]))
	}

	respondJSON(w, http.StatusOK, api.HistoryResponse{Data: data, Summary: summary})
}

// ClientPending handles GET /api/payments/client/pending.
func (h *PaymentsHandler) ClientPending(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Store.ListPendingPayments(r.Context())
	if err != nil {
		respondStorageError(w, err)
		return
	}

	data := make([]api.ProjectPaymentRecord, 0, len(projects))
	for i := range projects {
		data = append(data, *mapping.ToApiProjectPaymentRecord(&projects[i]))
	}

	respondJSON(w, http.StatusOK, api.PendingPaymentsResponse{Data: data})
}

// Login handles POST /api/login. The sandbox accepts any non-empty
// credentials and hands out its static bearer token.
func (h *PaymentsHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "cuerpo de la solicitud inválido")
		return
	}
	if string(req.Email) == "" || req.Password == "" {
		respondError(w, http.StatusUnauthorized, "Credenciales inválidas")
		return
	}

	respondJSON(w, http.StatusOK, api.LoginResponse{Data: api.LoginData{Token: h.Token}})
}

func (h *PaymentsHandler) publishUpdate(r *http.Request, project *models.ProjectPayment) {
	message := websockets.Message{
		Type: websockets.MessageTypePaymentUpdate,
		Payload: websockets.PaymentUpdatePayload{
			ProjectID:       project.ProjectID,
			PaymentStatus:   string(project.PaymentStatus),
			DepositedAmount: project.DepositedAmount,
			RemainingAmount: project.RemainingAmount(),
		},
	}
	if err := h.Publisher.Publish(r.Context(), message); err != nil {
		slog.Error("failed to publish payment update", "project_id", project.ProjectID, "error", err)
	}
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, api.ErrorResponse{Error: message})
}

func respondStorageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrProjectNotFound):
		respondError(w, http.StatusNotFound, "proyecto no encontrado")
	case errors.Is(err, storage.ErrAlreadyReleased):
		respondError(w, http.StatusConflict, "el pago ya fue liberado")
	case errors.Is(err, storage.ErrNotReadyToRelease):
		respondError(w, http.StatusConflict, "el proyecto aún no está listo para liberar el pago")
	case errors.Is(err, storage.ErrExceedsRemaining):
		respondError(w, http.StatusUnprocessableEntity, "el monto excede el saldo pendiente del proyecto")
	case errors.Is(err, storage.ErrConcurrentUpdate):
		respondError(w, http.StatusConflict, "el pago fue modificado por otra operación, intente de nuevo")
	default:
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("error interno: %v", err))
	}
}
