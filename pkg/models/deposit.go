package models

// Deposit represents the deposit and key-money record of a leased unit.
type Deposit struct {
	ID             int64         `json:"id"`
	RentRoll       RentRollEntry `json:"rentRoll"`
	Deposit        Amount        `json:"deposit"`
	Suubiki        Amount        `json:"suubiki"`
	GuaranteeMoney Amount        `json:"guaranteeMoney"`
	Reikin         Amount        `json:"reikin"`
}

// Total returns the sum of the four deposit components.
func (d *Deposit) Total() float64 {
	return float64(d.Deposit + d.Suubiki + d.GuaranteeMoney + d.Reikin)
}

// DepositRequest is used both to create and to replace a deposit record.
type DepositRequest struct {
	RentRollID     RefID  `json:"rentRollId"`
	Deposit        Amount `json:"deposit"`
	Suubiki        Amount `json:"suubiki"`
	GuaranteeMoney Amount `json:"guaranteeMoney"`
	Reikin         Amount `json:"reikin"`
}

// Validate checks required fields.
func (r *DepositRequest) Validate() error {
	if r.RentRollID <= 0 {
		return missingField("rentRollId")
	}
	return nil
}
