package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chambagt/chamba-payments/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestGetClientPendingPayments(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/payments/client/pending", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"data": []map[string]any{
					{
						"project_id":       "proj-1",
						"project_title":    "Logo",
						"amount":           1000.0,
						"deposited_amount": 400.0,
						"remaining_amount": 600.0,
						"payment_status":   "partial_deposit",
						"action_required":  "deposit_remaining",
						"freelancer":       "maria",
					},
				},
			})
		}))
		defer server.Close()

		c := New(server.URL, "test-token")
		payments, err := c.GetClientPendingPayments(context.Background())

		assert.NoError(t, err)
		assert.Len(t, payments, 1)
		assert.Equal(t, "proj-1", payments[0].ProjectID)
		assert.Equal(t, models.StatusPartialDeposit, payments[0].PaymentStatus)
		assert.Equal(t, 600.0, payments[0].RemainingAmount())
	})

	t.Run("Network Error", func(t *testing.T) {
		c := New("http://127.0.0.1:1", "test-token")
		_, err := c.GetClientPendingPayments(context.Background())
		assert.Error(t, err)
	})
}

func TestGetProjectPaymentStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/payments/project/proj-1", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{
					"project_status":   "in_progress",
					"expected_payment": 1000.0,
					"escrow_amount":    1000.0,
					"released_amount":  0.0,
					"payment_status":   "escrowed",
					"transactions": []map[string]any{
						{"title": "Depósito", "amount": 1000.0, "status": "completed"},
					},
				},
			})
		}))
		defer server.Close()

		c := New(server.URL, "test-token")
		detail, err := c.GetProjectPaymentStatus(context.Background(), "proj-1")

		assert.NoError(t, err)
		assert.Equal(t, models.StatusEscrowed, detail.PaymentStatus)
		assert.Len(t, detail.Transactions, 1)
	})

	t.Run("Backend Error With Message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "proyecto no encontrado"})
		}))
		defer server.Close()

		c := New(server.URL, "test-token")
		_, err := c.GetProjectPaymentStatus(context.Background(), "missing")

		var statusErr *PaymentStatusError
		assert.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
		assert.Equal(t, "proyecto no encontrado", statusErr.Message)
	})

	t.Run("Backend Error Without Message Uses Fallback", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		c := New(server.URL, "test-token")
		_, err := c.GetProjectPaymentStatus(context.Background(), "proj-1")

		var statusErr *PaymentStatusError
		assert.ErrorAs(t, err, &statusErr)
		assert.Equal(t, "No se pudo obtener el estado del pago", statusErr.Message)
	})
}

func TestDepositToEscrow(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/payments/escrow/deposit", r.URL.Path)

			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			assert.Equal(t, "proj-1", body["project_id"])
			assert.Equal(t, 600.0, body["amount"])
			assert.Equal(t, "credit_card", body["payment_method"])

			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{
					"project_id":       "proj-1",
					"deposited_amount": 1000.0,
					"remaining_amount": 0.0,
					"payment_status":   "escrowed",
				},
			})
		}))
		defer server.Close()

		c := New(server.URL, "test-token")
		result, err := c.DepositToEscrow(context.Background(), "proj-1", 600, models.MethodCreditCard)

		assert.NoError(t, err)
		assert.Equal(t, models.StatusEscrowed, result.PaymentStatus)
		assert.Equal(t, 0.0, result.RemainingAmount)
	})

	t.Run("Non-Positive Amount Rejected Locally", func(t *testing.T) {
		c := New("http://unused", "test-token")

		_, err := c.DepositToEscrow(context.Background(), "proj-1", 0, models.MethodCreditCard)
		assert.ErrorIs(t, err, ErrInvalidAmount)

		_, err = c.DepositToEscrow(context.Background(), "proj-1", -5, models.MethodCreditCard)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("Backend Rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]string{"error": "el monto excede el saldo restante"})
		}))
		defer server.Close()

		c := New(server.URL, "test-token")
		_, err := c.DepositToEscrow(context.Background(), "proj-1", 5000, models.MethodCreditCard)

		var depositErr *DepositError
		assert.ErrorAs(t, err, &depositErr)
		assert.Equal(t, "el monto excede el saldo restante", depositErr.Message)
	})
}

func TestReleasePayment(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/payments/release", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{
					"summary": map[string]any{
						"freelancer_receives": 900.0,
						"commission":          100.0,
					},
				},
			})
		}))
		defer server.Close()

		c := New(server.URL, "test-token")
		result, err := c.ReleasePayment(context.Background(), "proj-1")

		assert.NoError(t, err)
		assert.Equal(t, 900.0, result.FreelancerReceives)
		assert.Equal(t, 100.0, result.Commission)
	})

	t.Run("Backend Rejection Surfaced Verbatim", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"error": "el proyecto aún no está listo para liberar el pago"})
		}))
		defer server.Close()

		c := New(server.URL, "test-token")
		_, err := c.ReleasePayment(context.Background(), "proj-1")

		var releaseErr *ReleaseError
		assert.ErrorAs(t, err, &releaseErr)
		assert.Equal(t, "el proyecto aún no está listo para liberar el pago", releaseErr.Message)
	})
}

func TestGetFreelancerPaymentHistory(t *testing.T) {
	t.Run("Filter Becomes Query Params", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/payments/freelancer/history", r.URL.Path)
			assert.Equal(t, "completed", r.URL.Query().Get("status"))
			assert.Equal(t, "10", r.URL.Query().Get("limit"))
			assert.Equal(t, "20", r.URL.Query().Get("offset"))

			json.NewEncoder(w).Encode(map[string]any{
				"data": []map[string]any{
					{"title": "Pago proyecto Logo", "amount": 900.0, "status": "completed"},
				},
				"summary": map[string]any{
					"total_earnings": 900.0,
					"total_payments": 1,
				},
			})
		}))
		defer server.Close()

		c := New(server.URL, "test-token")
		transactions, summary, err := c.GetFreelancerPaymentHistory(context.Background(), &HistoryFilter{
			Status: "completed", Limit: 10, Offset: 20,
		})

		assert.NoError(t, err)
		assert.Len(t, transactions, 1)
		assert.Equal(t, 900.0, summary.TotalEarnings)
		assert.Equal(t, 1, summary.TotalPayments)
	})

	t.Run("Nil Filter Sends No Params", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.URL.RawQuery)
			json.NewEncoder(w).Encode(map[string]any{"data": []any{}, "summary": map[string]any{}})
		}))
		defer server.Close()

		c := New(server.URL, "test-token")
		transactions, _, err := c.GetFreelancerPaymentHistory(context.Background(), nil)

		assert.NoError(t, err)
		assert.Empty(t, transactions)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Success Stores Token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/login", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]any{"data": map[string]string{"token": "fresh-token"}})
		}))
		defer server.Close()

		c := New(server.URL, "")
		token, err := c.Login(context.Background(), "cliente@chamba.gt", "secreto")

		assert.NoError(t, err)
		assert.Equal(t, "fresh-token", token)
	})

	t.Run("Rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		c := New(server.URL, "")
		_, err := c.Login(context.Background(), "cliente@chamba.gt", "mala")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Credenciales inválidas")
	})
}
