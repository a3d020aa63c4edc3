package mapping

import (
	"github.com/chambagt/chamba-payments/pkg/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// paymentStatusText maps payment statuses to user-facing Spanish labels.
// Unknown statuses pass through unchanged so unrecognized future statuses
// degrade gracefully instead of crashing the UI.
var paymentStatusText = map[models.PaymentStatus]string{
	models.StatusPendingDeposit: "Pendiente de Depósito",
	models.StatusPartialDeposit: "Depósito Parcial",
	models.StatusEscrowed:       "Fondos en Custodia",
	models.StatusReadyToRelease: "Listo para Liberar",
	models.StatusReleased:       "Pago Liberado",
}

// paymentStatusClass maps payment statuses to style tags.
var paymentStatusClass = map[models.PaymentStatus]string{
	models.StatusPendingDeposit: "status-pending",
	models.StatusPartialDeposit: "status-partial",
	models.StatusEscrowed:       "status-escrowed",
	models.StatusReadyToRelease: "status-ready",
	models.StatusReleased:       "status-released",
}

// PaymentStatusText returns the display label for a payment status.
func PaymentStatusText(status models.PaymentStatus) string {
	if text, ok := paymentStatusText[status]; ok {
		return text
	}
	return string(status)
}

// PaymentStatusClass returns the style tag for a payment status.
func PaymentStatusClass(status models.PaymentStatus) string {
	if class, ok := paymentStatusClass[status]; ok {
		return class
	}
	return "unknown"
}

// ActionKind is the single next action a rendered payment row may offer.
type ActionKind string

const (
	ActionDeposit ActionKind = "deposit"
	ActionRelease ActionKind = "release"
	ActionWait    ActionKind = "wait"
	ActionNone    ActionKind = "none"
)

// Action describes the one button (or placeholder) to render for a project.
type Action struct {
	Kind    ActionKind
	Label   string
	Enabled bool
}

// NextAction derives the single allowed action for a project from its
// payment status and the backend's action hint. The hint is advisory only:
// every action is re-validated against the payment status, which is the
// authoritative state.
func NextAction(status models.PaymentStatus, hint models.ActionRequired) Action {
	switch hint {
	case models.ActionHintDeposit:
		if status == models.StatusPendingDeposit {
			return Action{Kind: ActionDeposit, Label: "Depositar Fondos", Enabled: true}
		}
	case models.ActionHintDepositRemaining:
		if status == models.StatusPartialDeposit {
			return Action{Kind: ActionDeposit, Label: "Depositar Restante", Enabled: true}
		}
	case models.ActionHintRelease:
		if status == models.StatusReadyToRelease {
			return Action{Kind: ActionRelease, Label: "Liberar Pago", Enabled: true}
		}
	case models.ActionHintWait:
		return Action{Kind: ActionWait, Label: "Esperando finalización del proyecto", Enabled: false}
	}

	// Hint absent or inconsistent with the status: fall back to the status
	// alone.
	switch status {
	case models.StatusPendingDeposit:
		return Action{Kind: ActionDeposit, Label: "Depositar Fondos", Enabled: true}
	case models.StatusPartialDeposit:
		return Action{Kind: ActionDeposit, Label: "Depositar Restante", Enabled: true}
	case models.StatusReadyToRelease:
		return Action{Kind: ActionRelease, Label: "Liberar Pago", Enabled: true}
	case models.StatusEscrowed:
		return Action{Kind: ActionWait, Label: "Esperando finalización del proyecto", Enabled: false}
	}
	return Action{Kind: ActionNone}
}

// currencySymbols maps ISO currency codes to their display symbols.
var currencySymbols = map[string]string{
	"GTQ": "Q",
	"USD": "$",
}

// FormatCurrency renders an amount as a currency string with two fraction
// digits and thousands grouping, e.g. FormatCurrency(1500) == "Q1,500.00".
// The currency defaults to GTQ; unknown codes are prefixed verbatim.
func FormatCurrency(amount float64, currencyCode ...string) string {
	code := "GTQ"
	if len(currencyCode) > 0 && currencyCode[0] != "" {
		code = currencyCode[0]
	}
	symbol, ok := currencySymbols[code]
	if !ok {
		symbol = code + " "
	}

	p := message.NewPrinter(language.English)
	return symbol + p.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}
