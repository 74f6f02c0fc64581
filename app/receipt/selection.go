package receipt

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/models"
)

// SelectedAmounts is the (total, paid) pair tracked for one selected category.
type SelectedAmounts struct {
	Total decimal.Decimal
	Paid  decimal.Decimal
}

// Selection is the fee-selection state of the generate form: a mapping from
// category id to amounts, keeping the order categories were selected in.
type Selection struct {
	order   []string
	entries map[string]SelectedAmounts
}

func NewSelection() *Selection {
	return &Selection{entries: make(map[string]SelectedAmounts)}
}

// Toggle selects the category with total = paid = defaultAmount (fully-paid
// default), or removes it entirely if already selected.
func (s *Selection) Toggle(categoryID string, defaultAmount decimal.Decimal) {
	if _, ok := s.entries[categoryID]; ok {
		delete(s.entries, categoryID)
		for i, id := range s.order {
			if id == categoryID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return
	}
	s.entries[categoryID] = SelectedAmounts{Total: defaultAmount, Paid: defaultAmount}
	s.order = append(s.order, categoryID)
}

// SetTotal overrides the due amount of a selected category. Unselected
// categories are ignored; edits only exist for visible selected rows.
func (s *Selection) SetTotal(categoryID string, total decimal.Decimal) {
	if e, ok := s.entries[categoryID]; ok {
		e.Total = total
		s.entries[categoryID] = e
	}
}

// SetPaid overrides the paid amount of a selected category. Paid greater
// than total is accepted; the line's due simply goes negative.
func (s *Selection) SetPaid(categoryID string, paid decimal.Decimal) {
	if e, ok := s.entries[categoryID]; ok {
		e.Paid = paid
		s.entries[categoryID] = e
	}
}

func (s *Selection) IsSelected(categoryID string) bool {
	_, ok := s.entries[categoryID]
	return ok
}

func (s *Selection) Len() int {
	return len(s.order)
}

// Totals returns the running sums shown on the form: total billed, total
// paid and the resulting due.
func (s *Selection) Totals() (total, paid, due decimal.Decimal) {
	for _, id := range s.order {
		e := s.entries[id]
		total = total.Add(e.Total)
		paid = paid.Add(e.Paid)
	}
	return total, paid, total.Sub(paid)
}

// Fees projects the selection into receipt lines in selection order, deriving
// each line's due as total minus paid.
func (s *Selection) Fees() []models.SelectedFee {
	fees := make([]models.SelectedFee, 0, len(s.order))
	for _, id := range s.order {
		e := s.entries[id]
		fees = append(fees, models.SelectedFee{
			CategoryID: id,
			Amount:     e.Total,
			Paid:       e.Paid,
			Due:        e.Total.Sub(e.Paid),
		})
	}
	return fees
}

// ParseAmount converts free-form numeric input to a decimal. Non-numeric
// input coerces to zero, mirroring how the form treats bad keystrokes.
func ParseAmount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Amount is a decimal for request payloads. It accepts JSON numbers and
// strings, coercing anything non-numeric to zero via ParseAmount instead
// of failing the whole request.
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	a.Decimal = ParseAmount(strings.Trim(string(data), `"`))
	return nil
}
