// Package repository contains data access for the ticket booking API.  The
// browse, booking-list and report surfaces treat the schema as opaque: rows
// come back as column-name keyed maps so the handlers can hand them straight
// to the JSON encoder.  This file implements the shared fetch-and-sanitize
// helper those surfaces use.
package repository

import (
	"context"
	"database/sql"
	"log"
	"strconv"
	"strings"
	"time"
)

// Row is a single result row keyed by column name, with all values already
// safe for JSON encoding.
type Row = map[string]any

// moneySuffixes lists the column-name endings whose values are reported as
// floating point regardless of the column's SQL type.  MySQL DECIMAL arrives
// from the driver as bytes; without this pass a Total_Revenue column would
// serialize as a quoted string.
var moneySuffixes = []string{"price", "revenue", "spent", "percentage"}

// FetchAll executes a query and returns every row with temporal values
// rendered as text and financial columns coerced to float64.  A query or
// scan failure is logged and yields an empty slice, never a partial result.
func FetchAll(ctx context.Context, db *sql.DB, query string, args ...any) []Row {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("query execution error: %v", err)
		return []Row{}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		log.Printf("query columns error: %v", err)
		return []Row{}
	}

	// DATE and DATETIME both scan into time.Time; only the column type
	// says which textual form the value should take.
	dateCol := make([]bool, len(cols))
	if types, err := rows.ColumnTypes(); err == nil {
		for i, ct := range types {
			dateCol[i] = ct != nil && ct.DatabaseTypeName() == "DATE"
		}
	}

	out := make([]Row, 0)
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			log.Printf("row scan error: %v", err)
			return []Row{}
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			row[col] = sanitizeValue(col, vals[i], dateCol[i])
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		log.Printf("row iteration error: %v", err)
		return []Row{}
	}
	return out
}

// sanitizeValue applies the per-cell conversion rules.  It only matches raw
// driver types, so re-running it over already-sanitized output changes
// nothing.
func sanitizeValue(name string, v any, isDate bool) any {
	switch t := v.(type) {
	case time.Time:
		return formatTemporal(t, isDate)
	case []byte:
		s := string(t)
		if f, ok := coerceMoney(name, s); ok {
			return f
		}
		return s
	case string:
		if f, ok := coerceMoney(name, t); ok {
			return f
		}
		return t
	case int64:
		if hasMoneySuffix(name) {
			return float64(t)
		}
		return t
	case float64:
		return t
	}
	return v
}

// formatTemporal renders a time.Time the way MySQL would print the column:
// DATE values as "2006-01-02", DATETIME values with the time component even
// at midnight.  TIME/duration columns never reach here; the driver hands
// them over as bytes and they pass through as "HH:MM:SS" strings.
func formatTemporal(t time.Time, isDate bool) string {
	if isDate {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04:05")
}

func coerceMoney(name, s string) (float64, bool) {
	if !hasMoneySuffix(name) {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func hasMoneySuffix(name string) bool {
	lower := strings.ToLower(name)
	for _, suffix := range moneySuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
