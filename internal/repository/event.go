package repository

import (
	"context"
	"database/sql"
)

// EventRepo serves the public catalog: upcoming events and their seat
// categories.  Exactly one of the four subtype tables (Movie, Concert,
// Cricket_Match, Standup_Comedy) is populated per event; COALESCE across
// their LEFT JOINs derives the display name and secondary descriptor.
type EventRepo struct{ DB *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{DB: db} }

const upcomingEventsQuery = `
SELECT e.Event_ID, e.Event_Type, e.Event_Date, e.Event_Time,
        e.Duration, e.No_of_Seats, v.Venue_Name, v.City,
        COALESCE(m.Movie_Name, c.Artist_Name,
                 CONCAT(cr.Team1_Name, ' vs ', cr.Team2_Name),
                 sc.Comedian_Name) AS Event_Name,
        COALESCE(m.Genre, c.Music_Genre, cr.Match_Type, sc.Comedy_Style, '') AS Extra_Info
FROM Event e
JOIN Venue v ON e.Venue_ID = v.Venue_ID
LEFT JOIN Movie m ON e.Event_ID = m.Event_ID
LEFT JOIN Concert c ON e.Event_ID = c.Event_ID
LEFT JOIN Cricket_Match cr ON e.Event_ID = cr.Event_ID
LEFT JOIN Standup_Comedy sc ON e.Event_ID = sc.Event_ID
WHERE e.Event_Date >= CURDATE()`

// ListUpcoming returns events dated today or later, ordered by date then
// time.  eventType filters by equality when non-empty and not "All"; city
// applies a substring match on the venue city.
func (r *EventRepo) ListUpcoming(ctx context.Context, eventType, city string) []Row {
	query := upcomingEventsQuery
	args := []any{}
	if eventType != "" && eventType != "All" {
		query += " AND e.Event_Type = ?"
		args = append(args, eventType)
	}
	if city != "" {
		query += " AND v.City LIKE ?"
		args = append(args, "%"+city+"%")
	}
	query += " ORDER BY e.Event_Date, e.Event_Time"
	return FetchAll(ctx, r.DB, query, args...)
}

// Categories lists the seat categories of an event with the computed final
// price (base price times multiplier), most expensive first.
func (r *EventRepo) Categories(ctx context.Context, eventID int64) []Row {
	return FetchAll(ctx, r.DB, `
		SELECT Category_Name, Available_Seats, Status,
		        (Base_Price * Price_Multiplier) AS Final_Price
		FROM Seat_Category
		WHERE Event_ID = ?
		ORDER BY Final_Price DESC`,
		eventID)
}
