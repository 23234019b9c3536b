package models

import "strings"

// EntryType is the direction of an income/expense transaction.
type EntryType string

const (
	EntryTypeIncome  EntryType = "INCOME"
	EntryTypeExpense EntryType = "EXPENSE"
)

// Account codes the report aggregates by.
const (
	CodeHouseRent        = "100"
	CodeOtherIncome      = "140"
	CodeManagement       = "200"
	CodeUtility          = "210"
	CodeRepair           = "220"
	CodeTenantRecruiting = "240"
	CodeOtherExpense     = "270"
)

// IncomeExpenseEntry is one line of the transaction log.
type IncomeExpenseEntry struct {
	ID        int64     `json:"id"`
	CreatedAt string    `json:"created_at"`
	Type      EntryType `json:"type"`
	Partner   string    `json:"partner"`
	Code      string    `json:"code"`
	Subject   string    `json:"subject"`
	Amount    Amount    `json:"amount"`
	Tax       Amount    `json:"tax"`
	Total     Amount    `json:"total"`
	Details   string    `json:"details"`
}

// CreateIncomeExpenseRequest represents the request to log a transaction.
// Total defaults to amount + tax when omitted.
type CreateIncomeExpenseRequest struct {
	CreatedAt string    `json:"created_at"`
	Type      EntryType `json:"type"`
	Partner   string    `json:"partner"`
	Code      string    `json:"code"`
	Subject   string    `json:"subject"`
	Amount    Amount    `json:"amount"`
	Tax       Amount    `json:"tax"`
	Total     *Amount   `json:"total,omitempty"`
	Details   string    `json:"details"`
}

// Validate checks required fields.
func (r *CreateIncomeExpenseRequest) Validate() error {
	if r.CreatedAt == "" {
		return missingField("created_at")
	}
	if _, _, _, ok := ParseDate(r.CreatedAt); !ok {
		return invalidField("created_at", r.CreatedAt)
	}
	switch r.Type {
	case EntryTypeIncome, EntryTypeExpense:
	case "":
		return missingField("type")
	default:
		return invalidField("type", r.Type)
	}
	if strings.TrimSpace(r.Code) == "" {
		return missingField("code")
	}
	return nil
}

// ResolvedTotal returns Total, or amount + tax when it was not sent.
func (r *CreateIncomeExpenseRequest) ResolvedTotal() Amount {
	if r.Total != nil {
		return *r.Total
	}
	return r.Amount + r.Tax
}

// SumField names the column a code sum aggregates.
type SumField string

const (
	SumFieldAmount SumField = "amount"
	SumFieldTax    SumField = "tax"
	SumFieldTotal  SumField = "total"
)

// Valid reports whether f is a known column.
func (f SumField) Valid() bool {
	switch f {
	case SumFieldAmount, SumFieldTax, SumFieldTotal:
		return true
	}
	return false
}
