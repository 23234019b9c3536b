package api

import (
	"net/http"

	"github.com/shunichi-ikebuchi/property-backoffice/internal/settings"
	"github.com/shunichi-ikebuchi/property-backoffice/internal/store"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/report"
)

// IncomeExpenseHandler handles the income/expense ledger, its sums and
// the statement built from them.
type IncomeExpenseHandler struct {
	store    *store.Store
	settings *settings.Store
}

// NewIncomeExpenseHandler creates a new IncomeExpenseHandler.
func NewIncomeExpenseHandler(s *store.Store, rs *settings.Store) *IncomeExpenseHandler {
	return &IncomeExpenseHandler{store: s, settings: rs}
}

// List handles GET /api/properties/{propertyId}/income-expense.
// @Summary List transactions
// @Tags income-expense
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param year query int false "Year"
// @Param month query int false "Month"
// @Param day query int false "Day"
// @Success 200 {array} models.IncomeExpenseEntry
// @Router /properties/{propertyId}/income-expense [get]
func (h *IncomeExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := queryPeriod(w, r)
	if !ok {
		return
	}

	entries, err := h.store.ListIncomeExpenses(r.Context(), propertyID(r), p)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to list transactions")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// Create handles POST /api/properties/{propertyId}/income-expense.
// @Summary Record a transaction
// @Description total defaults to amount + tax.
// @Tags income-expense
// @Accept json
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param request body models.CreateIncomeExpenseRequest true "Transaction"
// @Success 201 {object} models.IncomeExpenseEntry
// @Failure 400 {object} ErrorResponse
// @Router /properties/{propertyId}/income-expense [post]
func (h *IncomeExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateIncomeExpenseRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	entry, err := h.store.CreateIncomeExpense(r.Context(), propertyID(r), &req)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to create transaction")
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// Years handles GET /api/properties/{propertyId}/income-expense/years.
// @Summary Years with transactions
// @Tags income-expense
// @Produce json
// @Param propertyId path int true "Property ID"
// @Success 200 {array} int
// @Router /properties/{propertyId}/income-expense/years [get]
func (h *IncomeExpenseHandler) Years(w http.ResponseWriter, r *http.Request) {
	years, err := h.store.IncomeExpenseYears(r.Context(), propertyID(r))
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to list years")
		return
	}
	writeJSON(w, http.StatusOK, years)
}

// Months handles GET /api/properties/{propertyId}/income-expense/months.
// @Summary Months with transactions
// @Tags income-expense
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param year query int true "Year"
// @Success 200 {array} int
// @Router /properties/{propertyId}/income-expense/months [get]
func (h *IncomeExpenseHandler) Months(w http.ResponseWriter, r *http.Request) {
	p, ok := queryPeriod(w, r)
	if !ok {
		return
	}
	if p.Year == 0 {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "year is required")
		return
	}

	months, err := h.store.IncomeExpenseMonths(r.Context(), propertyID(r), p.Year)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to list months")
		return
	}
	writeJSON(w, http.StatusOK, months)
}

// Days handles GET /api/properties/{propertyId}/income-expense/days.
// @Summary Days with transactions
// @Tags income-expense
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param year query int true "Year"
// @Param month query int true "Month"
// @Success 200 {array} int
// @Router /properties/{propertyId}/income-expense/days [get]
func (h *IncomeExpenseHandler) Days(w http.ResponseWriter, r *http.Request) {
	p, ok := queryPeriod(w, r)
	if !ok {
		return
	}
	if p.Year == 0 || p.Month == 0 {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "year and month are required")
		return
	}

	days, err := h.store.IncomeExpenseDays(r.Context(), propertyID(r), p.Year, p.Month)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to list days")
		return
	}
	writeJSON(w, http.StatusOK, days)
}

// Sum returns a handler for one of the dedicated sum endpoints
// (code100sum, code140sum, code200amountsum, code200taxsum).
func (h *IncomeExpenseHandler) Sum(code string, field models.SumField) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.writeSum(w, r, code, field)
	}
}

// CodeSum handles GET /api/properties/{propertyId}/income-expense/codesum.
// @Summary Sum one column for a transaction code
// @Tags income-expense
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param code query string true "Transaction code"
// @Param field query string false "amount, tax or total (default)"
// @Param year query int false "Year"
// @Param month query int false "Month"
// @Param day query int false "Day"
// @Success 200 {number} number
// @Failure 400 {object} ErrorResponse
// @Router /properties/{propertyId}/income-expense/codesum [get]
func (h *IncomeExpenseHandler) CodeSum(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "code is required")
		return
	}
	field := models.SumField(r.URL.Query().Get("field"))
	if field == "" {
		field = models.SumFieldTotal
	}
	if !field.Valid() {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Invalid field: "+string(field))
		return
	}
	h.writeSum(w, r, code, field)
}

func (h *IncomeExpenseHandler) writeSum(w http.ResponseWriter, r *http.Request, code string, field models.SumField) {
	p, ok := queryPeriod(w, r)
	if !ok {
		return
	}

	sum, err := h.store.SumByCode(r.Context(), propertyID(r), code, field, p)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to sum transactions")
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// Report handles GET /api/properties/{propertyId}/income-expense/report.
// @Summary Income/expense statement with distributions
// @Tags income-expense
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param year query int false "Year"
// @Param month query int false "Month"
// @Param day query int false "Day"
// @Success 200 {object} report.Summary
// @Failure 400 {object} ErrorResponse
// @Router /properties/{propertyId}/income-expense/report [get]
func (h *IncomeExpenseHandler) Report(w http.ResponseWriter, r *http.Request) {
	p, ok := queryPeriod(w, r)
	if !ok {
		return
	}

	pid := propertyID(r)
	rs, err := h.settings.ReportSettings(pid)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to load report settings")
		return
	}

	summary, err := report.Build(r.Context(), h.store, pid, rs, p)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to build report")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
