// Package queue defines the message payloads exchanged over the broker and
// the background consumer that records them.
package queue

// Actions carried by a TicketEvent.
const (
	ActionBooked   = "booked"
	ActionCanceled = "canceled"
)

// TicketEvent is published to the ticket.events queue after a booking or a
// cancellation commits.  It carries enough information for downstream
// consumers to log or notify without querying the primary database.
type TicketEvent struct {
	Action       string `json:"action"`
	TicketNo     int64  `json:"ticket_no,omitempty"`
	CustomerID   int64  `json:"customer_id"`
	CustomerName string `json:"customer_name,omitempty"`
	EventID      int64  `json:"event_id,omitempty"`
	Category     string `json:"category,omitempty"`
	SeatNo       string `json:"seat_no,omitempty"`
	PaymentMode  string `json:"payment_mode,omitempty"`
	OccurredAt   string `json:"occurred_at"`
}
