package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/shunichi-ikebuchi/property-backoffice/internal/store"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// RentIncomeHandler handles monthly rent income and its history.
type RentIncomeHandler struct {
	store *store.Store
}

// NewRentIncomeHandler creates a new RentIncomeHandler.
func NewRentIncomeHandler(s *store.Store) *RentIncomeHandler {
	return &RentIncomeHandler{store: s}
}

// List handles GET /api/properties/{propertyId}/monthly-rent-income.
// @Summary List collected rent
// @Tags monthly-rent-income
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param year query int false "Year"
// @Param month query int false "Month"
// @Success 200 {array} models.MonthlyRentIncome
// @Router /properties/{propertyId}/monthly-rent-income [get]
func (h *RentIncomeHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := queryPeriod(w, r)
	if !ok {
		return
	}

	incomes, err := h.store.ListMonthlyRentIncomes(r.Context(), propertyID(r), p)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to list monthly rent income")
		return
	}
	writeJSON(w, http.StatusOK, incomes)
}

// Create handles POST /api/properties/{propertyId}/monthly-rent-income.
// @Summary Record collected rent
// @Tags monthly-rent-income
// @Accept json
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param request body models.CreateMonthlyRentIncomeRequest true "Collection"
// @Success 201 {object} models.MonthlyRentIncome
// @Failure 400 {object} ErrorResponse
// @Router /properties/{propertyId}/monthly-rent-income [post]
func (h *RentIncomeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMonthlyRentIncomeRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	income, err := h.store.CreateMonthlyRentIncome(r.Context(), propertyID(r), &req)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to create monthly rent income")
		return
	}
	writeJSON(w, http.StatusCreated, income)
}

// History handles GET /api/properties/{propertyId}/monthly-rent-income-history.
// @Summary Six-month collection history
// @Description Window ends at year/month, defaulting to the current month.
// @Tags monthly-rent-income
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param year query int false "Year"
// @Param month query int false "Month"
// @Success 200 {array} models.HistoryEntry
// @Router /properties/{propertyId}/monthly-rent-income-history [get]
func (h *RentIncomeHandler) History(w http.ResponseWriter, r *http.Request) {
	p, ok := queryPeriod(w, r)
	if !ok {
		return
	}
	current := models.CurrentMonth(h.store.Now())
	if p.Year == 0 {
		p.Year = current.Year
	}
	if p.Month == 0 {
		p.Month = current.Month
	}

	entries, err := h.store.RentIncomeHistory(r.Context(), propertyID(r), p.Year, p.Month)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to get rent income history")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// UpdateHistory handles POST /api/properties/{propertyId}/monthly-rent-income-history/update.
// @Summary Set one history cell
// @Description Only the current calendar month can be edited. Without incomeAmount the cell keeps
// @Description its stored income, or the payments collected for the month.
// @Tags monthly-rent-income
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param rentRollId query int true "Rent roll ID"
// @Param year query int true "Year"
// @Param month query int true "Month"
// @Param incomeAmount query number false "Income amount (default: unchanged)"
// @Param differenceAmount query number false "Difference amount"
// @Success 200 {object} models.HistoryEntry
// @Failure 400 {object} ErrorResponse
// @Router /properties/{propertyId}/monthly-rent-income-history/update [post]
func (h *RentIncomeHandler) UpdateHistory(w http.ResponseWriter, r *http.Request) {
	u, err := parseHistoryUpdate(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}
	if err := u.Validate(); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	current := models.CurrentMonth(h.store.Now())
	if u.Year != current.Year || u.Month != current.Month {
		writeJSONError(w, http.StatusBadRequest, "invalid_request",
			fmt.Sprintf("Only %s can be edited", current))
		return
	}

	entry, err := h.store.UpsertRentIncomeHistory(r.Context(), propertyID(r), u)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to update rent income history")
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func parseHistoryUpdate(r *http.Request) (*models.HistoryUpdate, error) {
	q := r.URL.Query()
	u := &models.HistoryUpdate{}

	var err error
	if v := q.Get("rentRollId"); v != "" {
		if u.RentRollID, err = strconv.ParseInt(v, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid rentRollId: %q", v)
		}
	}
	if u.Year, err = queryInt(r, "year"); err != nil {
		return nil, err
	}
	if u.Month, err = queryInt(r, "month"); err != nil {
		return nil, err
	}
	if v := q.Get("incomeAmount"); v != "" {
		income, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid incomeAmount: %q", v)
		}
		u.IncomeAmount = &income
	}
	if v := q.Get("differenceAmount"); v != "" {
		if u.DifferenceAmount, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, fmt.Errorf("invalid differenceAmount: %q", v)
		}
	}
	return u, nil
}
