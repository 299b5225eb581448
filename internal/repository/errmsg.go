package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// SignalText extracts the human-readable message from a database error.
// Triggers and stored procedures raise domain validation errors via SIGNAL
// SQLSTATE '45000'; the driver wraps them with an "Error 1644 (45000):"
// prefix that should not reach the user.  For a *mysql.MySQLError the bare
// message is returned directly, otherwise the text after the last colon is
// kept.
func SignalText(err error) string {
	if err == nil {
		return ""
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return strings.TrimSpace(myErr.Message)
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, ":"); i >= 0 {
		msg = msg[i+1:]
	}
	return strings.TrimSpace(msg)
}
