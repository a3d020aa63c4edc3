package client

import "errors"

// ErrInvalidAmount is returned before any request is sent when a deposit
// amount is not a positive finite number.
var ErrInvalidAmount = errors.New("deposit amount must be a positive finite number")

// Generic localized fallbacks, used when the backend rejects a request
// without a structured error message.
const (
	fallbackStatusMessage  = "No se pudo obtener el estado del pago"
	fallbackDepositMessage = "No se pudo procesar el depósito"
	fallbackReleaseMessage = "No se pudo liberar el pago"
	fallbackHistoryMessage = "No se pudo obtener el historial de pagos"
	fallbackPendingMessage = "No se pudieron obtener los pagos pendientes"
	fallbackLoginMessage   = "Credenciales inválidas"
)

// apiError is the internal representation of a non-success HTTP response.
// Operations convert it into their public typed error.
type apiError struct {
	StatusCode int
	Message    string
}

func (e *apiError) Error() string {
	return e.Message
}

// messageOr returns the backend-supplied message, or fallback when the
// response carried none.
func (e *apiError) messageOr(fallback string) string {
	if e.Message != "" {
		return e.Message
	}
	return fallback
}

// PaymentStatusError reports a backend rejection of a payment status or
// detail lookup.
type PaymentStatusError struct {
	StatusCode int
	Message    string
}

func (e *PaymentStatusError) Error() string { return e.Message }

// DepositError reports a backend rejection of an escrow deposit.
type DepositError struct {
	StatusCode int
	Message    string
}

func (e *DepositError) Error() string { return e.Message }

// ReleaseError reports a backend rejection of a payment release. The
// message is surfaced verbatim; the client never pre-validates the
// backend's release preconditions.
type ReleaseError struct {
	StatusCode int
	Message    string
}

func (e *ReleaseError) Error() string { return e.Message }
