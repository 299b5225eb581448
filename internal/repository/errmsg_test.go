package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestSignalText(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "trigger signal carries bare message",
			err:  &mysql.MySQLError{Number: 1644, SQLState: [5]byte{'4', '5', '0', '0', '0'}, Message: "Seat is already booked for this event"},
			want: "Seat is already booked for this event",
		},
		{
			name: "unique violation carries driver message",
			err:  &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@b.com' for key 'Email'"},
			want: "Duplicate entry 'a@b.com' for key 'Email'",
		},
		{
			name: "wrapped driver error still unwraps",
			err:  fmt.Errorf("book ticket: %w", &mysql.MySQLError{Number: 1644, Message: "No seats available in this category"}),
			want: "No seats available in this category",
		},
		{
			name: "plain error keeps last colon segment",
			err:  errors.New("Error 1644 (45000): Invalid payment mode"),
			want: "Invalid payment mode",
		},
		{
			name: "error without colon passes through",
			err:  errors.New("connection reset"),
			want: "connection reset",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if got := SignalText(test.err); got != test.want {
				t.Errorf("SignalText(%v) = %q, want %q", test.err, got, test.want)
			}
		})
	}
}
