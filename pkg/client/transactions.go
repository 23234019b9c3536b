package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/report"
)

// ListIncomeExpenses lists the transactions of the period.
func (c *Client) ListIncomeExpenses(ctx context.Context, propertyID int64, p models.Period) ([]models.IncomeExpenseEntry, error) {
	return getList[models.IncomeExpenseEntry](ctx, c, propertyPath(propertyID, "income-expense"), p.Query())
}

// CreateIncomeExpense logs a transaction.
func (c *Client) CreateIncomeExpense(ctx context.Context, propertyID int64, req *models.CreateIncomeExpenseRequest) (*models.IncomeExpenseEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out models.IncomeExpenseEntry
	if err := c.doJSON(ctx, http.MethodPost, propertyPath(propertyID, "income-expense"), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IncomeExpenseYears lists the years that have transactions.
func (c *Client) IncomeExpenseYears(ctx context.Context, propertyID int64) ([]int, error) {
	return getList[int](ctx, c, propertyPath(propertyID, "income-expense", "years"), nil)
}

// IncomeExpenseMonths lists the months of year that have transactions.
func (c *Client) IncomeExpenseMonths(ctx context.Context, propertyID int64, year int) ([]int, error) {
	return getList[int](ctx, c, propertyPath(propertyID, "income-expense", "months"), models.Period{Year: year}.Query())
}

// IncomeExpenseDays lists the days of year/month that have transactions.
func (c *Client) IncomeExpenseDays(ctx context.Context, propertyID int64, year, month int) ([]int, error) {
	return getList[int](ctx, c, propertyPath(propertyID, "income-expense", "days"), models.Period{Year: year, Month: month}.Query())
}

type sumRoute struct {
	code  string
	field models.SumField
}

// dedicatedSums maps the statement's fixed lines to their own endpoints.
var dedicatedSums = map[sumRoute]string{
	{models.CodeHouseRent, models.SumFieldTotal}:   "code100sum",
	{models.CodeOtherIncome, models.SumFieldTotal}: "code140sum",
	{models.CodeManagement, models.SumFieldAmount}: "code200amountsum",
	{models.CodeManagement, models.SumFieldTax}:    "code200taxsum",
}

// SumByCode sums one column of the transactions with code inside p. It
// implements report.Source.
func (c *Client) SumByCode(ctx context.Context, propertyID int64, code string, field models.SumField, p models.Period) (float64, error) {
	q := p.Query()
	endpoint, ok := dedicatedSums[sumRoute{code, field}]
	if !ok {
		endpoint = "codesum"
		q.Set("code", code)
		q.Set("field", string(field))
	}

	var sum float64
	if err := c.get(ctx, propertyPath(propertyID, "income-expense", endpoint), q, &sum); err != nil {
		return 0, err
	}
	return sum, nil
}

var _ report.Source = (*Client)(nil)

// Report fetches the statement computed by the server.
func (c *Client) Report(ctx context.Context, propertyID int64, p models.Period) (*report.Summary, error) {
	var out report.Summary
	if err := c.get(ctx, propertyPath(propertyID, "income-expense", "report"), p.Query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReportSettings fetches the report configuration of the property.
func (c *Client) ReportSettings(ctx context.Context, propertyID int64) (*report.Settings, error) {
	var out report.Settings
	if err := c.get(ctx, propertyPath(propertyID, "report-settings"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PutReportSettings replaces the report configuration of the property.
func (c *Client) PutReportSettings(ctx context.Context, propertyID int64, settings *report.Settings) (*report.Settings, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	var out report.Settings
	if err := c.doJSON(ctx, http.MethodPut, propertyPath(propertyID, "report-settings"), nil, settings, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReportMemos lists the report memos of the property.
func (c *Client) ReportMemos(ctx context.Context, propertyID int64) ([]models.ReportMemo, error) {
	return getList[models.ReportMemo](ctx, c, propertyPath(propertyID, "report-memos"), nil)
}

// PutReportMemo sets the memo of one report field.
func (c *Client) PutReportMemo(ctx context.Context, propertyID int64, field, value string) (*models.ReportMemo, error) {
	var out models.ReportMemo
	path := propertyPath(propertyID, "report-memos", url.PathEscape(field))
	if err := c.doJSON(ctx, http.MethodPut, path, nil, &models.UpdateMemoRequest{Value: value}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
