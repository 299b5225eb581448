package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Sentinel errors returned by Cancel so the handler can map each guard
// failure to its own response message.
var (
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrNotOwner        = errors.New("ticket owned by another customer")
	ErrAlreadyCanceled = errors.New("ticket already canceled")
)

// TicketRepo manages bookings.  Seat availability, price computation and
// payment creation are owned by the database's BookTicket procedure and the
// insert/update triggers around the Ticket table; this layer only forwards
// parameters and performs the cancellation status write.
type TicketRepo struct{ DB *sql.DB }

func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{DB: db} }

// Book invokes the atomic BookTicket stored procedure.  Any SIGNAL raised by
// the procedure or the BeforeTicketInsert/AfterTicketInsert triggers comes
// back as the driver error for the handler to relay.
func (r *TicketRepo) Book(ctx context.Context, custID, eventID int64, category, seatNo, paymentMode string) error {
	_, err := r.DB.ExecContext(ctx,
		"CALL BookTicket(?, ?, ?, ?, ?)",
		custID, eventID, category, seatNo, paymentMode)
	return err
}

// Cancel transitions a ticket to Canceled after checking ownership and
// current status inside one transaction.  The UPDATE fires the
// AfterTicketCancellation trigger, which reconciles seat counts and the
// payment record; the Booked -> Canceled transition is one-way.
func (r *TicketRepo) Cancel(ctx context.Context, ticketNo, custID int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var status string
	var ownerID int64
	err = tx.QueryRowContext(ctx,
		"SELECT Status, Cust_ID FROM Ticket WHERE Ticket_No = ?",
		ticketNo).Scan(&status, &ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTicketNotFound
	}
	if err != nil {
		return err
	}
	if ownerID != custID {
		return ErrNotOwner
	}
	if status == "Canceled" {
		return ErrAlreadyCanceled
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE Ticket SET Status = 'Canceled' WHERE Ticket_No = ?",
		ticketNo); err != nil {
		return err
	}
	return tx.Commit()
}

// ListByCustomer returns the caller's tickets joined with category, payment
// status, venue and the derived event name, newest booking first.
func (r *TicketRepo) ListByCustomer(ctx context.Context, custID int64) []Row {
	return FetchAll(ctx, r.DB, `
		SELECT t.Ticket_No, t.Booking_Date, t.Seat_No, t.Final_Price, t.Status, t.Event_ID,
		        sc.Category_Name, p.Payment_Status,
		        COALESCE(m.Movie_Name, c.Artist_Name,
		                 CONCAT(cr.Team1_Name, ' vs ', cr.Team2_Name),
		                 sc_comedy.Comedian_Name) AS Event_Name,
		        e.Event_Date, v.Venue_Name
		FROM Ticket t
		JOIN Event e ON t.Event_ID = e.Event_ID
		JOIN Seat_Category sc ON t.Category_ID = sc.Category_ID
		JOIN Venue v ON e.Venue_ID = v.Venue_ID
		LEFT JOIN Payment p ON t.Ticket_No = p.Ticket_No
		LEFT JOIN Movie m ON e.Event_ID = m.Event_ID
		LEFT JOIN Concert c ON e.Event_ID = c.Event_ID
		LEFT JOIN Cricket_Match cr ON e.Event_ID = cr.Event_ID
		LEFT JOIN Standup_Comedy sc_comedy ON e.Event_ID = sc_comedy.Event_ID
		WHERE t.Cust_ID = ?
		ORDER BY t.Booking_Date DESC`,
		custID)
}
