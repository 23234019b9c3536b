// Package report builds the income/expense statement of a property and its
// distribution waterfall.
package report

import (
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// Rounding is the direction a tranche base is rounded to whole yen.
type Rounding string

const (
	RoundUp   Rounding = "up"
	RoundDown Rounding = "down"
)

// Category is an expense line aggregated from the ledger by account code.
type Category struct {
	Code string `yaml:"code" json:"code"`
	Name string `yaml:"name" json:"name"`
}

// Line is a pinned amount/tax/total for a category. Pinned lines replace
// the ledger aggregation for their code.
type Line struct {
	Amount float64 `yaml:"amount" json:"amount"`
	Tax    float64 `yaml:"tax" json:"tax"`
	Total  float64 `yaml:"total" json:"total"`
}

// AdvanceItem is an amount paid out ahead of the distribution, such as loan
// repayment or property tax.
type AdvanceItem struct {
	Name   string  `yaml:"name" json:"name"`
	Amount float64 `yaml:"amount" json:"amount"`
}

// BankAccount is the destination of a payout.
type BankAccount struct {
	Bank          string `yaml:"bank" json:"bank"`
	Branch        string `yaml:"branch" json:"branch"`
	AccountType   string `yaml:"accountType" json:"accountType"`
	AccountNumber string `yaml:"accountNumber" json:"accountNumber"`
	Holder        string `yaml:"holder" json:"holder"`
}

// Tranche is one step of the distribution waterfall.
type Tranche struct {
	Name            string      `yaml:"name" json:"name"`
	Percent         float64     `yaml:"percent" json:"percent"`
	Rounding        Rounding    `yaml:"rounding" json:"rounding"`
	PriorAdjustment float64     `yaml:"priorAdjustment" json:"priorAdjustment"`
	IncludeAdvance  bool        `yaml:"includeAdvance" json:"includeAdvance"`
	Account         BankAccount `yaml:"account" json:"account"`
}

// Settings is the per-property report configuration.
type Settings struct {
	PropertyID    int64           `yaml:"-" json:"propertyId"`
	Categories    []Category      `yaml:"categories" json:"categories"`
	Advances      []AdvanceItem   `yaml:"advances" json:"advances"`
	Distributions []Tranche       `yaml:"distributions" json:"distributions"`
	RentAccount   BankAccount     `yaml:"rentAccount" json:"rentAccount"`
	FixedLines    map[string]Line `yaml:"fixedLines,omitempty" json:"fixedLines,omitempty"`
}

// DefaultSettings returns the built-in configuration: the four standard
// expense categories, zeroed advance items and a 50/25/25 waterfall whose
// first tranche also returns the advances.
func DefaultSettings() *Settings {
	return &Settings{
		Categories: []Category{
			{Code: models.CodeUtility, Name: "水道光熱通信費"},
			{Code: models.CodeRepair, Name: "修繕費"},
			{Code: models.CodeTenantRecruiting, Name: "テナント募集費用"},
			{Code: models.CodeOtherExpense, Name: "その他費用"},
		},
		Advances: []AdvanceItem{
			{Name: "元利金の返済額"},
			{Name: "固定資産税・都市計画税"},
			{Name: "積立金"},
		},
		Distributions: []Tranche{
			{Name: "分配1", Percent: 50, Rounding: RoundUp, IncludeAdvance: true},
			{Name: "分配2", Percent: 25, Rounding: RoundUp},
			{Name: "分配3", Percent: 25, Rounding: RoundUp},
		},
	}
}

// LoadDefaults reads settings from a YAML file. Sections missing from the
// file keep the built-in defaults.
func LoadDefaults(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report defaults: %w", err)
	}

	var file Settings
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	s := DefaultSettings()
	if file.Categories != nil {
		s.Categories = file.Categories
	}
	if file.Advances != nil {
		s.Advances = file.Advances
	}
	if file.Distributions != nil {
		s.Distributions = file.Distributions
	}
	if file.RentAccount != (BankAccount{}) {
		s.RentAccount = file.RentAccount
	}
	if file.FixedLines != nil {
		s.FixedLines = file.FixedLines
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid report defaults %s: %w", path, err)
	}
	return s, nil
}

// Validate checks codes and tranche parameters. Category codes may not
// repeat the fixed statement lines, and tranches may not distribute more
// than the net income.
func (s *Settings) Validate() error {
	seen := make(map[string]bool, len(s.Categories))
	for _, c := range s.Categories {
		if c.Code == "" {
			return fmt.Errorf("category %q has no code", c.Name)
		}
		switch c.Code {
		case models.CodeHouseRent, models.CodeOtherIncome, models.CodeManagement:
			return fmt.Errorf("category code %s is a fixed statement line", c.Code)
		}
		if seen[c.Code] {
			return fmt.Errorf("duplicate category code %s", c.Code)
		}
		seen[c.Code] = true
	}
	for code := range s.FixedLines {
		if !seen[code] {
			return fmt.Errorf("fixed line %s is not a configured category", code)
		}
	}
	var percent float64
	for _, t := range s.Distributions {
		if t.Percent < 0 || t.Percent > 100 {
			return fmt.Errorf("tranche %q: percent %v out of range", t.Name, t.Percent)
		}
		percent += t.Percent
		switch t.Rounding {
		case RoundUp, RoundDown:
		default:
			return fmt.Errorf("tranche %q: unknown rounding %q", t.Name, t.Rounding)
		}
	}
	if percent > 100 {
		return fmt.Errorf("tranches distribute %v%% of the net income", percent)
	}
	return nil
}

// TotalAdvance returns the sum of the advance items.
func (s *Settings) TotalAdvance() float64 {
	var total float64
	for _, a := range s.Advances {
		total += a.Amount
	}
	return total
}

// Clone returns a deep copy of s.
func (s *Settings) Clone() *Settings {
	c := *s
	c.Categories = append([]Category(nil), s.Categories...)
	c.Advances = append([]AdvanceItem(nil), s.Advances...)
	c.Distributions = append([]Tranche(nil), s.Distributions...)
	c.FixedLines = maps.Clone(s.FixedLines)
	return &c
}
