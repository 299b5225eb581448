package repository

import (
	"context"
	"database/sql"
)

// ReportRepo serves the read-only reporting queries.
type ReportRepo struct{ DB *sql.DB }

func NewReportRepo(db *sql.DB) *ReportRepo { return &ReportRepo{DB: db} }

// Revenue returns the top 20 events by total revenue from booked tickets.
// The LEFT JOIN keeps zero-revenue events in the result with a 0 total.
func (r *ReportRepo) Revenue(ctx context.Context) []Row {
	return FetchAll(ctx, r.DB, `
		SELECT e.Event_ID, e.Event_Type,
		       COALESCE(m.Movie_Name, c.Artist_Name,
		                 CONCAT(cr.Team1_Name, ' vs ', cr.Team2_Name),
		                 sc.Comedian_Name) AS Event_Name,
		       COUNT(t.Ticket_No) AS Tickets_Sold,
		       COALESCE(SUM(t.Final_Price), 0) AS Total_Revenue
		FROM Event e
		LEFT JOIN Ticket t ON e.Event_ID = t.Event_ID AND t.Status = 'Booked'
		LEFT JOIN Movie m ON e.Event_ID = m.Event_ID
		LEFT JOIN Concert c ON e.Event_ID = c.Event_ID
		LEFT JOIN Cricket_Match cr ON e.Event_ID = cr.Event_ID
		LEFT JOIN Standup_Comedy sc ON e.Event_ID = sc.Event_ID
		GROUP BY e.Event_ID
		ORDER BY Total_Revenue DESC
		LIMIT 20`)
}

// TopCustomers ranks the top 15 customers by total spend on booked tickets.
// RANK() gives ties a shared rank and skips the following positions.
func (r *ReportRepo) TopCustomers(ctx context.Context) []Row {
	return FetchAll(ctx, r.DB, `
		WITH CustomerTotalSpent AS (
		    SELECT Cust_ID, SUM(Final_Price) AS Total_Spent
		    FROM Ticket
		    WHERE Status = 'Booked'
		    GROUP BY Cust_ID
		)
		SELECT c.Cust_Name, c.Email, CTS.Total_Spent,
		        RANK() OVER (ORDER BY CTS.Total_Spent DESC) AS Spending_Rank
		FROM Customer c
		JOIN CustomerTotalSpent CTS ON c.Cust_ID = CTS.Cust_ID
		ORDER BY Spending_Rank
		LIMIT 15`)
}
