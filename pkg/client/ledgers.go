package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// ListProperties lists all properties.
func (c *Client) ListProperties(ctx context.Context) ([]models.Property, error) {
	return getList[models.Property](ctx, c, "/properties", nil)
}

// GetProperty retrieves a property by ID.
func (c *Client) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	var out models.Property
	if err := c.get(ctx, propertyPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProperty registers a property.
func (c *Client) CreateProperty(ctx context.Context, req *models.CreatePropertyRequest) (*models.Property, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out models.Property
	if err := c.doJSON(ctx, http.MethodPost, "/properties", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRentRoll lists the rent roll, narrowed by p on the server.
func (c *Client) ListRentRoll(ctx context.Context, propertyID int64, p models.Period) ([]models.RentRollEntry, error) {
	return getList[models.RentRollEntry](ctx, c, propertyPath(propertyID, "rentroll"), p.Query())
}

// CreateRentRoll adds a unit to the rent roll.
func (c *Client) CreateRentRoll(ctx context.Context, propertyID int64, req *models.CreateRentRollRequest) (*models.RentRollEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out models.RentRollEntry
	if err := c.doJSON(ctx, http.MethodPost, propertyPath(propertyID, "rentroll"), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListDeposits lists every deposit of the property.
func (c *Client) ListDeposits(ctx context.Context, propertyID int64) ([]models.Deposit, error) {
	return getList[models.Deposit](ctx, c, propertyPath(propertyID, "deposit"), nil)
}

// CreateDeposit records a deposit.
func (c *Client) CreateDeposit(ctx context.Context, propertyID int64, req *models.DepositRequest) (*models.Deposit, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out models.Deposit
	if err := c.doJSON(ctx, http.MethodPost, propertyPath(propertyID, "deposit"), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDeposit replaces a deposit.
func (c *Client) UpdateDeposit(ctx context.Context, propertyID, id int64, req *models.DepositRequest) (*models.Deposit, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out models.Deposit
	if err := c.doJSON(ctx, http.MethodPut, propertyPath(propertyID, "deposit", strconv.FormatInt(id, 10)), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDeposit deletes a deposit.
func (c *Client) DeleteDeposit(ctx context.Context, propertyID, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, propertyPath(propertyID, "deposit", strconv.FormatInt(id, 10)), nil, nil, nil)
}

// ListUtilityExpenses lists every utility expense of the property.
func (c *Client) ListUtilityExpenses(ctx context.Context, propertyID int64) ([]models.UtilityExpense, error) {
	return getList[models.UtilityExpense](ctx, c, propertyPath(propertyID, "utility-expenses"), nil)
}

// CreateUtilityExpense records a utility expense.
func (c *Client) CreateUtilityExpense(ctx context.Context, propertyID int64, req *models.UtilityExpenseRequest) (*models.UtilityExpense, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out models.UtilityExpense
	if err := c.doJSON(ctx, http.MethodPost, propertyPath(propertyID, "utility-expenses"), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUtilityExpense replaces a utility expense.
func (c *Client) UpdateUtilityExpense(ctx context.Context, propertyID, id int64, req *models.UtilityExpenseRequest) (*models.UtilityExpense, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out models.UtilityExpense
	if err := c.doJSON(ctx, http.MethodPut, propertyPath(propertyID, "utility-expenses", strconv.FormatInt(id, 10)), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUtilityExpense deletes a utility expense.
func (c *Client) DeleteUtilityExpense(ctx context.Context, propertyID, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, propertyPath(propertyID, "utility-expenses", strconv.FormatInt(id, 10)), nil, nil, nil)
}

// ListWaterFees lists every meter reading of the property.
func (c *Client) ListWaterFees(ctx context.Context, propertyID int64) ([]models.WaterFeeReading, error) {
	return getList[models.WaterFeeReading](ctx, c, propertyPath(propertyID, "water-fees"), nil)
}

// CreateWaterFee records a meter reading.
func (c *Client) CreateWaterFee(ctx context.Context, propertyID int64, req *models.CreateWaterFeeRequest) (*models.WaterFeeReading, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out models.WaterFeeReading
	if err := c.doJSON(ctx, http.MethodPost, propertyPath(propertyID, "water-fees"), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMonthlyRentIncome lists the collections of the period.
func (c *Client) ListMonthlyRentIncome(ctx context.Context, propertyID int64, p models.Period) ([]models.MonthlyRentIncome, error) {
	return getList[models.MonthlyRentIncome](ctx, c, propertyPath(propertyID, "monthly-rent-income"), p.Query())
}

// CreateMonthlyRentIncome records a collection.
func (c *Client) CreateMonthlyRentIncome(ctx context.Context, propertyID int64, req *models.CreateMonthlyRentIncomeRequest) (*models.MonthlyRentIncome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out models.MonthlyRentIncome
	if err := c.doJSON(ctx, http.MethodPost, propertyPath(propertyID, "monthly-rent-income"), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RentIncomeHistory returns the six month history window ending at p.
func (c *Client) RentIncomeHistory(ctx context.Context, propertyID int64, p models.Period) ([]models.HistoryEntry, error) {
	return getList[models.HistoryEntry](ctx, c, propertyPath(propertyID, "monthly-rent-income-history"), p.Query())
}

// UpdateRentIncomeHistory upserts one history cell. The server only accepts
// the current calendar month.
func (c *Client) UpdateRentIncomeHistory(ctx context.Context, propertyID int64, u *models.HistoryUpdate) (*models.HistoryEntry, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("rentRollId", strconv.FormatInt(u.RentRollID, 10))
	q.Set("year", strconv.Itoa(u.Year))
	q.Set("month", strconv.Itoa(u.Month))
	if u.IncomeAmount != nil {
		q.Set("incomeAmount", strconv.FormatFloat(*u.IncomeAmount, 'f', -1, 64))
	}
	q.Set("differenceAmount", strconv.FormatFloat(u.DifferenceAmount, 'f', -1, 64))

	var out models.HistoryEntry
	if err := c.doJSON(ctx, http.MethodPost, propertyPath(propertyID, "monthly-rent-income-history", "update"), q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUncollected lists the uncollected and advance payments of the period.
func (c *Client) ListUncollected(ctx context.Context, propertyID int64, p models.Period) ([]models.UncollectedAdvancePayment, error) {
	return getList[models.UncollectedAdvancePayment](ctx, c, propertyPath(propertyID, "uncollected-advance-payments"), p.Query())
}

// CreateUncollected records an uncollected or advance payment.
func (c *Client) CreateUncollected(ctx context.Context, propertyID int64, req *models.CreateUncollectedRequest) (*models.UncollectedAdvancePayment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out models.UncollectedAdvancePayment
	if err := c.doJSON(ctx, http.MethodPost, propertyPath(propertyID, "uncollected-advance-payments"), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInputManual lists the checklist of the period.
func (c *Client) ListInputManual(ctx context.Context, propertyID int64, p models.Period) ([]models.InputManualEntry, error) {
	return getList[models.InputManualEntry](ctx, c, propertyPath(propertyID, "input-manual"), p.Query())
}

// CreateInputManual adds a checklist line.
func (c *Client) CreateInputManual(ctx context.Context, propertyID int64, req *models.CreateInputManualRequest) (*models.InputManualEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out models.InputManualEntry
	if err := c.doJSON(ctx, http.MethodPost, propertyPath(propertyID, "input-manual"), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InputManualYears lists the years that have checklist lines.
func (c *Client) InputManualYears(ctx context.Context, propertyID int64) ([]int, error) {
	return getList[int](ctx, c, propertyPath(propertyID, "input-manual", "years"), nil)
}

// InputManualMonths lists the months of year that have checklist lines.
func (c *Client) InputManualMonths(ctx context.Context, propertyID int64, year int) ([]int, error) {
	return getList[int](ctx, c, propertyPath(propertyID, "input-manual", "months"), models.Period{Year: year}.Query())
}
