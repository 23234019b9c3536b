package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/swaggo/swag"

	"github.com/shunichi-ikebuchi/property-backoffice/docs"
	"github.com/shunichi-ikebuchi/property-backoffice/internal/settings"
	"github.com/shunichi-ikebuchi/property-backoffice/internal/store"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// Config holds the backends the router serves.
type Config struct {
	Store    *store.Store
	Settings *settings.Store
	// Quiet drops the access log middleware.
	Quiet bool
}

// NewRouter builds the HTTP handler for the backoffice API.
func NewRouter(cfg Config) http.Handler {
	st := cfg.Store

	properties := NewPropertiesHandler(st)
	rentRoll := NewRentRollHandler(st)
	deposits := NewDepositsHandler(st)
	utilities := NewUtilitiesHandler(st)
	water := NewWaterHandler(st)
	rentIncome := NewRentIncomeHandler(st)
	uncollected := NewUncollectedHandler(st)
	incomeExpense := NewIncomeExpenseHandler(st, cfg.Settings)
	reportSettings := NewReportSettingsHandler(cfg.Settings)
	inputManual := NewInputManualHandler(st)
	documents := NewDocumentsHandler(st)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if !cfg.Quiet {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Get("/swagger.json", swaggerDoc)

		r.Get("/properties", properties.List)
		r.Post("/properties", properties.Create)

		r.Route("/properties/{propertyId}", func(r chi.Router) {
			r.Use(PropertyCtx(st))

			r.Get("/", properties.Get)

			r.Get("/rentroll", rentRoll.List)
			r.Post("/rentroll", rentRoll.Create)

			r.Route("/deposit", func(r chi.Router) {
				r.Get("/", deposits.List)
				r.Post("/", deposits.Create)
				r.Put("/{id}", deposits.Update)
				r.Delete("/{id}", deposits.Delete)
			})

			r.Route("/utility-expenses", func(r chi.Router) {
				r.Get("/", utilities.List)
				r.Post("/", utilities.Create)
				r.Put("/{id}", utilities.Update)
				r.Delete("/{id}", utilities.Delete)
			})

			r.Get("/water-fees", water.List)
			r.Post("/water-fees", water.Create)

			r.Get("/monthly-rent-income", rentIncome.List)
			r.Post("/monthly-rent-income", rentIncome.Create)
			r.Get("/monthly-rent-income-history", rentIncome.History)
			r.Post("/monthly-rent-income-history/update", rentIncome.UpdateHistory)

			r.Get("/uncollected-advance-payments", uncollected.List)
			r.Post("/uncollected-advance-payments", uncollected.Create)

			r.Route("/income-expense", func(r chi.Router) {
				r.Get("/", incomeExpense.List)
				r.Post("/", incomeExpense.Create)
				r.Get("/years", incomeExpense.Years)
				r.Get("/months", incomeExpense.Months)
				r.Get("/days", incomeExpense.Days)
				r.Get("/code100sum", incomeExpense.Sum(models.CodeHouseRent, models.SumFieldTotal))
				r.Get("/code140sum", incomeExpense.Sum(models.CodeOtherIncome, models.SumFieldTotal))
				r.Get("/code200amountsum", incomeExpense.Sum(models.CodeManagement, models.SumFieldAmount))
				r.Get("/code200taxsum", incomeExpense.Sum(models.CodeManagement, models.SumFieldTax))
				r.Get("/codesum", incomeExpense.CodeSum)
				r.Get("/report", incomeExpense.Report)
			})

			r.Get("/report-settings", reportSettings.Get)
			r.Put("/report-settings", reportSettings.Put)
			r.Get("/report-memos", reportSettings.Memos)
			r.Get("/report-memos/{field}", reportSettings.GetMemo)
			r.Put("/report-memos/{field}", reportSettings.PutMemo)

			r.Route("/input-manual", func(r chi.Router) {
				r.Get("/", inputManual.List)
				r.Post("/", inputManual.Create)
				r.Get("/years", inputManual.Years)
				r.Get("/months", inputManual.Months)
			})

			r.Route("/past-documents", func(r chi.Router) {
				r.Get("/", documents.List)
				r.Post("/", documents.Create)
				r.Post("/upload", documents.Upload)
				r.Get("/{id}/download", documents.Download)
				r.Delete("/{id}", documents.Delete)
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}

func swaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to read swagger doc", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to read API documentation")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}
