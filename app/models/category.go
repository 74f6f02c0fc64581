package models

import "github.com/shopspring/decimal"

// FeeCategory is a configured billable line-item template, e.g. "Tuition Fee".
// Categories are never deleted; disabled ones are hidden from the generate
// form via IsEnabled.
type FeeCategory struct {
	ID            string          `json:"id"`
	Name          string          `json:"name" validate:"required"`
	DefaultAmount decimal.Decimal `json:"defaultAmount"`
	IsEnabled     bool            `json:"isEnabled"`
	IsCustom      bool            `json:"isCustom,omitempty"`
}

// DefaultFeeCategories returns the stock category list used when the store
// has no saved configuration yet.
func DefaultFeeCategories() []FeeCategory {
	return []FeeCategory{
		{ID: "1", Name: "Admission Fee", DefaultAmount: decimal.NewFromInt(5000), IsEnabled: true},
		{ID: "2", Name: "Monthly Tuition Fee", DefaultAmount: decimal.NewFromInt(1200), IsEnabled: true},
		{ID: "3", Name: "Examination Fee", DefaultAmount: decimal.NewFromInt(500), IsEnabled: true},
		{ID: "4", Name: "Computer Fee", DefaultAmount: decimal.NewFromInt(300), IsEnabled: true},
		{ID: "5", Name: "Sports & Cultural Fee", DefaultAmount: decimal.NewFromInt(400), IsEnabled: true},
		{ID: "6", Name: "Miscellaneous Fee", DefaultAmount: decimal.NewFromInt(100), IsEnabled: true},
	}
}

// CategoryName resolves a category id against a category list. Dangling
// references are tolerated and fall back to a generic label.
func CategoryName(categories []FeeCategory, id string) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return "Fee"
}
