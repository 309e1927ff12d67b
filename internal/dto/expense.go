package dto

import "encoding/json"

// Amounts travel as JSON numbers and are parsed into exact decimals at the
// boundary; responses render them back as decimal strings.
type ExpenseRequest struct {
	Amount      json.Number `json:"amount" validate:"required"`
	Description string      `json:"description"`
	Category    string      `json:"category" validate:"required"`
	Date        string      `json:"date" validate:"required"` // YYYY-MM-DD
}

type ExpenseResponse struct {
	ID          string `json:"id"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	CreatedAt   string `json:"created_at"`
}
