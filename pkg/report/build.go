package report

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// Source sums one column of a property's transactions by account code.
// Both the SQLite store and the HTTP client implement it.
type Source interface {
	SumByCode(ctx context.Context, propertyID int64, code string, field models.SumField, p models.Period) (float64, error)
}

// ExpenseLine is one expense category of the statement.
type ExpenseLine struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Tax    float64 `json:"tax"`
	Total  float64 `json:"total"`
	Fixed  bool    `json:"fixed"`
}

// Payout is the computed result of one tranche.
type Payout struct {
	Name            string      `json:"name"`
	Percent         float64     `json:"percent"`
	Rounding        Rounding    `json:"rounding"`
	Base            float64     `json:"base"`
	PriorAdjustment float64     `json:"priorAdjustment"`
	Advance         float64     `json:"advance"`
	Amount          float64     `json:"amount"`
	Payout          float64     `json:"payout"`
	CarryForward    float64     `json:"carryForward"`
	Account         BankAccount `json:"account"`
}

// Summary is the income/expense statement of one property and period.
type Summary struct {
	PropertyID       int64         `json:"propertyId"`
	Period           models.Period `json:"period"`
	HouseRentTotal   float64       `json:"houseRentTotal"`
	OtherIncomeTotal float64       `json:"otherIncomeTotal"`
	IncomeTotal      float64       `json:"incomeTotal"`
	ManageAmount     float64       `json:"manageAmount"`
	ManageTax        float64       `json:"manageTax"`
	ManageTotal      float64       `json:"manageTotal"`
	Expenses         []ExpenseLine `json:"expenses"`
	ExpenseTotal     float64       `json:"expenseTotal"`
	Difference       float64       `json:"difference"`
	Advances         []AdvanceItem `json:"advances"`
	TotalAdvance     float64       `json:"totalAdvance"`
	NetIncome        float64       `json:"netIncome"`
	Distributions    []Payout      `json:"distributions"`
	RentAccount      BankAccount   `json:"rentAccount"`
}

// maxConcurrentSums bounds the sum requests in flight per build.
const maxConcurrentSums = 4

// Build aggregates the statement for the property and period. The sums are
// fetched concurrently; the first failure cancels the rest and no partial
// summary is returned.
func Build(ctx context.Context, src Source, propertyID int64, settings *Settings, p models.Period) (*Summary, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if settings == nil {
		settings = DefaultSettings()
	}

	s := &Summary{
		PropertyID:  propertyID,
		Period:      p,
		Expenses:    make([]ExpenseLine, len(settings.Categories)),
		Advances:    append([]AdvanceItem{}, settings.Advances...),
		RentAccount: settings.RentAccount,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSums)

	sum := func(code string, field models.SumField, dst *float64) {
		g.Go(func() error {
			v, err := src.SumByCode(gctx, propertyID, code, field, p)
			if err != nil {
				return fmt.Errorf("failed to sum %s %s: %w", code, field, err)
			}
			*dst = v
			return nil
		})
	}

	sum(models.CodeHouseRent, models.SumFieldTotal, &s.HouseRentTotal)
	sum(models.CodeOtherIncome, models.SumFieldTotal, &s.OtherIncomeTotal)
	sum(models.CodeManagement, models.SumFieldAmount, &s.ManageAmount)
	sum(models.CodeManagement, models.SumFieldTax, &s.ManageTax)

	for i, c := range settings.Categories {
		line := &s.Expenses[i]
		line.Code, line.Name = c.Code, c.Name
		if fixed, ok := settings.FixedLines[c.Code]; ok {
			line.Amount, line.Tax, line.Total, line.Fixed = fixed.Amount, fixed.Tax, fixed.Total, true
			continue
		}
		sum(c.Code, models.SumFieldAmount, &line.Amount)
		sum(c.Code, models.SumFieldTax, &line.Tax)
		sum(c.Code, models.SumFieldTotal, &line.Total)
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.IncomeTotal = s.HouseRentTotal + s.OtherIncomeTotal
	s.ManageTotal = s.ManageAmount + s.ManageTax
	s.ExpenseTotal = s.ManageTotal
	for _, line := range s.Expenses {
		s.ExpenseTotal += line.Total
	}
	s.Difference = s.IncomeTotal - s.ExpenseTotal
	s.TotalAdvance = settings.TotalAdvance()
	s.NetIncome = s.Difference - s.TotalAdvance
	s.Distributions = Distribute(s.NetIncome, s.TotalAdvance, settings.Distributions)

	return s, nil
}

// Distribute runs the waterfall over netIncome. A tranche whose amount is
// negative pays nothing and reports the shortfall as CarryForward, to be
// entered as the next period's PriorAdjustment.
func Distribute(netIncome, totalAdvance float64, tranches []Tranche) []Payout {
	payouts := make([]Payout, 0, len(tranches))
	for _, t := range tranches {
		p := Payout{
			Name:            t.Name,
			Percent:         t.Percent,
			Rounding:        t.Rounding,
			Base:            roundYen(netIncome*t.Percent/100, t.Rounding),
			PriorAdjustment: t.PriorAdjustment,
			Account:         t.Account,
		}
		if t.IncludeAdvance {
			p.Advance = totalAdvance
		}
		p.Amount = p.Base + p.PriorAdjustment + p.Advance
		if p.Amount < 0 {
			p.CarryForward = p.Amount
		} else {
			p.Payout = p.Amount
		}
		payouts = append(payouts, p)
	}
	return payouts
}

// roundYen rounds v to whole yen in the given direction. v is first snapped
// to six decimals so that binary noise such as 203447.00000000003 does not
// round up to the next yen.
func roundYen(v float64, r Rounding) float64 {
	v = math.Round(v*1e6) / 1e6
	if r == RoundDown {
		return math.Floor(v)
	}
	return math.Ceil(v)
}
