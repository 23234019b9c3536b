package models

// UncollectedAdvancePayment records an unpaid or prepaid amount of a unit.
type UncollectedAdvancePayment struct {
	ID                int64  `json:"id"`
	RentRollID        int64  `json:"rentRollId"`
	Details           string `json:"details"`
	GuaranteeCompany  string `json:"guaranteeCompany"`
	Notes             string `json:"notes"`
	ContactInfo       string `json:"contactInfo"`
	PreDifference     Amount `json:"preDifference"`
	DepositAdjustment Amount `json:"depositAdjustment"`
	PostMoveInPayment Amount `json:"postMoveInPayment"`
	Uncollectible     Amount `json:"uncollectible"`
	Year              int    `json:"year"`
	Month             int    `json:"month"`
}

// CreateUncollectedRequest represents the request to record an uncollected
// or advance payment.
type CreateUncollectedRequest struct {
	RentRollID        RefID  `json:"rentRollId"`
	Details           string `json:"details"`
	GuaranteeCompany  string `json:"guaranteeCompany"`
	Notes             string `json:"notes"`
	ContactInfo       string `json:"contactInfo"`
	PreDifference     Amount `json:"preDifference"`
	DepositAdjustment Amount `json:"depositAdjustment"`
	PostMoveInPayment Amount `json:"postMoveInPayment"`
	Uncollectible     Amount `json:"uncollectible"`
	Year              int    `json:"year"`
	Month             int    `json:"month"`
}

// Validate checks required fields.
func (r *CreateUncollectedRequest) Validate() error {
	if r.RentRollID <= 0 {
		return missingField("rentRollId")
	}
	if r.Year <= 0 {
		return missingField("year")
	}
	if r.Month < 1 || r.Month > 12 {
		return invalidField("month", r.Month)
	}
	return nil
}
