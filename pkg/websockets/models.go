package websockets

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypePaymentUpdate is for messages that notify a change in a
	// project's payment state.
	MessageTypePaymentUpdate MessageType = "paymentUpdate"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// PaymentUpdatePayload is the payload for a paymentUpdate message.
type PaymentUpdatePayload struct {
	ProjectID       string  `json:"project_id"`
	PaymentStatus   string  `json:"payment_status"`
	DepositedAmount float64 `json:"deposited_amount"`
	RemainingAmount float64 `json:"remaining_amount"`
}
