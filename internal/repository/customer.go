package repository

import (
	"context"
	"database/sql"
)

// Customer carries the public profile columns of the Customer table.  The
// remaining columns (DOB, Gender, Address) are write-only from this layer
// and never travel further than the registration INSERT.
type Customer struct {
	ID    int64
	Name  string
	Email string
}

// CustomerRepo manages persistence for customers.
type CustomerRepo struct{ DB *sql.DB }

func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{DB: db} }

// GetByEmail fetches a customer's public profile by exact email match.
// sql.ErrNoRows passes through so the handler can distinguish an unknown
// email from a query failure.
func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (Customer, error) {
	var c Customer
	err := r.DB.QueryRowContext(ctx,
		"SELECT Cust_ID, Cust_Name, Email FROM Customer WHERE Email = ?",
		email).Scan(&c.ID, &c.Name, &c.Email)
	return c, err
}

// Register inserts a new customer.  Uniqueness and format validation live in
// the database's BEFORE INSERT trigger (ValidateCustomerEmail); any SIGNAL it
// raises, or a UNIQUE constraint violation, comes back as the driver error
// and is surfaced verbatim by the handler.  Optional fields are stored as
// NULL when empty.
func (r *CustomerRepo) Register(ctx context.Context, name, email, phone, dob, gender, address string) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO Customer (Cust_Name, Email, Phone, DOB, Gender, Address)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		name, email, phone, nullable(dob), nullable(gender), nullable(address))
	return err
}

// Age returns the caller's name, date of birth and age as computed by the
// database's CalculateAge scalar function.  The result goes through the row
// sanitizer so DOB arrives as text.
func (r *CustomerRepo) Age(ctx context.Context, custID int64) []Row {
	return FetchAll(ctx, r.DB,
		"SELECT Cust_Name, DOB, CalculateAge(DOB) AS Age FROM Customer WHERE Cust_ID = ?",
		custID)
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
