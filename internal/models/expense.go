package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date form expenses are exchanged and persisted
// in. Dates carry no time-of-day component.
const DateLayout = time.DateOnly

var (
	ErrNonPositiveAmount = errors.New("amount must be a positive number")
	ErrEmptyCategory     = errors.New("expense category cannot be empty")
	ErrEmptyDate         = errors.New("expense date cannot be empty")
)

type Expense struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	// Category holds the category name, not an id. Renaming or deleting a
	// category leaves past expenses untouched.
	Category  string    `db:"category"`
	Date      time.Time `db:"date"`
	CreatedAt time.Time `db:"created_at"`
}

func (e *Expense) Validate() error {
	if !e.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if e.Category == "" {
		return ErrEmptyCategory
	}
	if e.Date.IsZero() {
		return ErrEmptyDate
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
