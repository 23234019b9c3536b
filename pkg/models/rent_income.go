package models

// MonthlyRentIncome records what was collected for a unit in one month,
// either from the contractor or from a substitute payer such as a
// guarantee company.
type MonthlyRentIncome struct {
	ID                      int64  `json:"id"`
	RentRollID              int64  `json:"rentRollId"`
	Year                    int    `json:"year"`
	Month                   int    `json:"month"`
	ContractorPaymentDate   string `json:"contractorPaymentDate"`
	ContractorPaymentAmount Amount `json:"contractorPaymentAmount"`
	SubstitutePaymentDate   string `json:"substitutePaymentDate"`
	SubstitutePaymentAmount Amount `json:"substitutePaymentAmount"`
	SubstitutePayer         string `json:"substitutePayer"`
}

// TotalIncome returns contractor + substitute payments.
func (m *MonthlyRentIncome) TotalIncome() float64 {
	return float64(m.ContractorPaymentAmount + m.SubstitutePaymentAmount)
}

// CreateMonthlyRentIncomeRequest represents the request to record a collection.
type CreateMonthlyRentIncomeRequest struct {
	RentRollID              RefID  `json:"rentRollId"`
	Year                    int    `json:"year"`
	Month                   int    `json:"month"`
	ContractorPaymentDate   string `json:"contractorPaymentDate"`
	ContractorPaymentAmount Amount `json:"contractorPaymentAmount"`
	SubstitutePaymentDate   string `json:"substitutePaymentDate"`
	SubstitutePaymentAmount Amount `json:"substitutePaymentAmount"`
	SubstitutePayer         string `json:"substitutePayer"`
}

// Validate checks required fields.
func (r *CreateMonthlyRentIncomeRequest) Validate() error {
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
