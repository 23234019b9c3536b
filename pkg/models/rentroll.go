package models

// RentRollEntry represents one leased unit of a property for one period.
// CreatedAt is a yyyy/MM/dd string; its year and month are the period key
// every other ledger joins on.
type RentRollEntry struct {
	ID                   int64  `json:"id"`
	PropertyID           int64  `json:"propertyId"`
	Floor                string `json:"floor"`
	RoomNumber           string `json:"roomNumber"`
	RoomUsage            string `json:"roomUsage"`
	Contractor           string `json:"contractor"`
	ContractDate         string `json:"contractDate"`
	RentalArea           Amount `json:"rentalArea"`
	Rent                 Amount `json:"rent"`
	MaintenanceFee       Amount `json:"maintenanceFee"`
	Tax                  Amount `json:"tax"`
	TotalRent            Amount `json:"totalRent"`
	UnitPrice            Amount `json:"unitPrice"`
	ParkingFee           Amount `json:"parkingFee"`
	BikeParkingFee       Amount `json:"bikeParkingFee"`
	BicycleParkingFee    Amount `json:"bicycleParkingFee"`
	StorageFee           Amount `json:"storageFee"`
	TotalFee             Amount `json:"totalFee"`
	BicycleParkingNumber string `json:"bicycleParkingNumber"`
	RenewalFee           Amount `json:"renewalFee"`
	CreatedAt            string `json:"createdAt"`
}

// InPeriod reports whether the entry belongs to the given year and month.
func (e *RentRollEntry) InPeriod(year, month int) bool {
	y, m, _, ok := ParseDate(e.CreatedAt)
	return ok && y == year && m == month
}

// CreateRentRollRequest represents the request to add a unit to the rent roll.
// CreatedAt is optional; the server stamps the current date when it is empty.
type CreateRentRollRequest struct {
	Floor                string `json:"floor"`
	RoomNumber           string `json:"roomNumber"`
	RoomUsage            string `json:"roomUsage"`
	Contractor           string `json:"contractor"`
	ContractDate         string `json:"contractDate"`
	RentalArea           Amount `json:"rentalArea"`
	Rent                 Amount `json:"rent"`
	MaintenanceFee       Amount `json:"maintenanceFee"`
	Tax                  Amount `json:"tax"`
	TotalRent            Amount `json:"totalRent"`
	UnitPrice            Amount `json:"unitPrice"`
	ParkingFee           Amount `json:"parkingFee"`
	BikeParkingFee       Amount `json:"bikeParkingFee"`
	BicycleParkingFee    Amount `json:"bicycleParkingFee"`
	StorageFee           Amount `json:"storageFee"`
	TotalFee             Amount `json:"totalFee"`
	BicycleParkingNumber string `json:"bicycleParkingNumber"`
	RenewalFee           Amount `json:"renewalFee"`
	CreatedAt            string `json:"createdAt,omitempty"`
}

// Validate checks required fields.
func (r *CreateRentRollRequest) Validate() error {
	if r.RoomNumber == "" {
		return missingField("roomNumber")
	}
	if r.CreatedAt != "" {
		if _, _, _, ok := ParseDate(r.CreatedAt); !ok {
			return invalidField("createdAt", r.CreatedAt)
		}
	}
	return nil
}
