package integration

import (
	"fmt"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// TestDataBuilder builds requests dated inside one month.
type TestDataBuilder struct {
	year, month int
}

// NewTestDataBuilder creates a new TestDataBuilder for year/month.
func NewTestDataBuilder(year, month int) *TestDataBuilder {
	return &TestDataBuilder{year: year, month: month}
}

// Date returns the yyyy-MM-dd date of day in the builder's month.
func (b *TestDataBuilder) Date(day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", b.year, b.month, day)
}

// Unit creates a rent roll request for a residential room.
func (b *TestDataBuilder) Unit(room string, rent float64) *models.CreateRentRollRequest {
	return &models.CreateRentRollRequest{
		Floor:          room[:1] + "F",
		RoomNumber:     room,
		RoomUsage:      "住居",
		Contractor:     "Tenant " + room,
		Rent:           models.Amount(rent),
		MaintenanceFee: 5000,
		TotalRent:      models.Amount(rent + 5000),
		CreatedAt:      b.Date(1),
	}
}

// Income creates an income transaction request.
func (b *TestDataBuilder) Income(code string, amount float64, day int) *models.CreateIncomeExpenseRequest {
	return &models.CreateIncomeExpenseRequest{
		CreatedAt: b.Date(day),
		Type:      models.EntryTypeIncome,
		Code:      code,
		Amount:    models.Amount(amount),
	}
}

// Expense creates an expense transaction request with 10% consumption tax.
func (b *TestDataBuilder) Expense(code string, amount float64, day int) *models.CreateIncomeExpenseRequest {
	return &models.CreateIncomeExpenseRequest{
		CreatedAt: b.Date(day),
		Type:      models.EntryTypeExpense,
		Code:      code,
		Amount:    models.Amount(amount),
		Tax:       models.Amount(amount / 10),
	}
}

// RentIncome creates a rent collection request for the builder's month.
func (b *TestDataBuilder) RentIncome(unitID int64, contractor, substitute float64) *models.CreateMonthlyRentIncomeRequest {
	return &models.CreateMonthlyRentIncomeRequest{
		RentRollID:              models.RefID(unitID),
		Year:                    b.year,
		Month:                   b.month,
		ContractorPaymentDate:   b.Date(27),
		ContractorPaymentAmount: models.Amount(contractor),
		SubstitutePaymentAmount: models.Amount(substitute),
	}
}
