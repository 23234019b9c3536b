package models

// UtilityExpense represents the utility costs charged for a unit.
type UtilityExpense struct {
	ID          int64         `json:"id"`
	RentRoll    RentRollEntry `json:"rentRoll"`
	Electricity Amount        `json:"electricity"`
	Water       Amount        `json:"water"`
	Gas         Amount        `json:"gas"`
	Other1      Amount        `json:"other1"`
	Other2      Amount        `json:"other2"`
	CreatedAt   string        `json:"createdAt"`
}

// Total returns electricity + water + gas + other1 + other2.
func (u *UtilityExpense) Total() float64 {
	return float64(u.Electricity + u.Water + u.Gas + u.Other1 + u.Other2)
}

// UtilityExpenseRequest is used both to create and to replace a utility record.
type UtilityExpenseRequest struct {
	RentRollID  RefID  `json:"rentRollId"`
	Electricity Amount `json:"electricity"`
	Water       Amount `json:"water"`
	Gas         Amount `json:"gas"`
	Other1      Amount `json:"other1"`
	Other2      Amount `json:"other2"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// Validate checks required fields.
func (r *UtilityExpenseRequest) Validate() error {
	if r.RentRollID <= 0 {
		return missingField("rentRollId")
	}
	if r.CreatedAt != "" {
		if _, _, _, ok := ParseDate(r.CreatedAt); !ok {
			return invalidField("createdAt", r.CreatedAt)
		}
	}
	return nil
}
