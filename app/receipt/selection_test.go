package receipt

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestToggleSelectsWithFullyPaidDefault(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("tuition", dec(1200))

	assert.True(t, sel.IsSelected("tuition"))
	total, paid, due := sel.Totals()
	assert.True(t, total.Equal(dec(1200)))
	assert.True(t, paid.Equal(dec(1200)))
	assert.True(t, due.IsZero())
}

func TestToggleTwiceRestoresPriorState(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("admission", dec(5000))
	sel.SetPaid("admission", dec(3000))

	sel.Toggle("exam", dec(500))
	sel.Toggle("exam", dec(500))

	assert.False(t, sel.IsSelected("exam"))
	assert.Equal(t, 1, sel.Len())
	total, paid, due := sel.Totals()
	assert.True(t, total.Equal(dec(5000)))
	assert.True(t, paid.Equal(dec(3000)))
	assert.True(t, due.Equal(dec(2000)))
}

func TestToggleReselectResetsOverrides(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("exam", dec(500))
	sel.SetPaid("exam", dec(100))
	sel.Toggle("exam", dec(500))
	sel.Toggle("exam", dec(500))

	// Deselecting clears both amounts, so reselecting starts fully paid.
	_, paid, _ := sel.Totals()
	assert.True(t, paid.Equal(dec(500)))
}

func TestOverridesIgnoreUnselectedCategories(t *testing.T) {
	sel := NewSelection()
	sel.SetTotal("ghost", dec(999))
	sel.SetPaid("ghost", dec(999))

	assert.Equal(t, 0, sel.Len())
	total, _, _ := sel.Totals()
	assert.True(t, total.IsZero())
}

func TestFeesPreserveSelectionOrderAndDeriveDue(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("b", dec(300))
	sel.Toggle("a", dec(1200))
	sel.SetPaid("a", dec(1000))

	fees := sel.Fees()
	assert.Len(t, fees, 2)
	assert.Equal(t, "b", fees[0].CategoryID)
	assert.Equal(t, "a", fees[1].CategoryID)
	assert.True(t, fees[1].Due.Equal(dec(200)))
}

func TestOverpaymentGoesNegativeWithoutClamping(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("tuition", dec(500))
	sel.SetPaid("tuition", dec(600))

	fees := sel.Fees()
	assert.True(t, fees[0].Due.Equal(dec(-100)))
	_, _, due := sel.Totals()
	assert.True(t, due.Equal(dec(-100)))
}

func TestParseAmountCoercesBadInputToZero(t *testing.T) {
	assert.True(t, ParseAmount("12.50").Equal(decimal.RequireFromString("12.5")))
	assert.True(t, ParseAmount("").IsZero())
	assert.True(t, ParseAmount("abc").IsZero())
	assert.True(t, ParseAmount("-40").Equal(dec(-40)))
}

func TestAmountUnmarshalsNumbersAndStrings(t *testing.T) {
	var payload struct {
		Total Amount `json:"total"`
		Paid  Amount `json:"paid"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"total": 1200, "paid": "1000"}`), &payload))
	assert.True(t, payload.Total.Equal(dec(1200)))
	assert.True(t, payload.Paid.Equal(dec(1000)))

	// Garbage coerces to zero instead of failing the request.
	require.NoError(t, json.Unmarshal([]byte(`{"total": "abc", "paid": null}`), &payload))
	assert.True(t, payload.Total.IsZero())
	assert.True(t, payload.Paid.IsZero())
}
