package models

// WaterRatePerUnit is the billed amount in yen per cubic meter.
const WaterRatePerUnit = 1200

// WaterFeeReading represents one water meter reading of a unit.
type WaterFeeReading struct {
	ID              int64  `json:"id"`
	RentRollID      int64  `json:"rentRollId"`
	PreviousReading Amount `json:"previousReading"`
	CurrentReading  Amount `json:"currentReading"`
	CreatedAt       string `json:"createdAt"`
}

// Usage returns currentReading - previousReading.
func (w *WaterFeeReading) Usage() float64 {
	return float64(w.CurrentReading - w.PreviousReading)
}

// Bill returns the usage multiplied by WaterRatePerUnit.
func (w *WaterFeeReading) Bill() float64 {
	return w.Usage() * WaterRatePerUnit
}

// CreateWaterFeeRequest represents the request to record a meter reading.
// A nil PreviousReading is filled with the unit's latest current reading.
type CreateWaterFeeRequest struct {
	RentRollID      RefID   `json:"rentRollId"`
	PreviousReading *Amount `json:"previousReading,omitempty"`
	CurrentReading  Amount  `json:"currentReading"`
	CreatedAt       string  `json:"createdAt,omitempty"`
}

// Validate checks required fields.
func (r *CreateWaterFeeRequest) Validate() error {
	if r.RentRollID <= 0 {
		return missingField("rentRollId")
	}
	if r.CurrentReading < 0 {
		return invalidField("currentReading", r.CurrentReading)
	}
	if r.PreviousReading != nil && *r.PreviousReading < 0 {
		return invalidField("previousReading", *r.PreviousReading)
	}
	if r.CreatedAt != "" {
		if _, _, _, ok := ParseDate(r.CreatedAt); !ok {
			return invalidField("createdAt", r.CreatedAt)
		}
	}
	return nil
}
