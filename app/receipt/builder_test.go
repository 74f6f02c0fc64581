package receipt

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBuilder() *Builder {
	b := NewBuilder(NewNumberGenerator("ALB"))
	b.now = func() time.Time {
		return time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)
	}
	return b
}

func TestBuildDerivesTotals(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("2", dec(1200))
	sel.SetPaid("2", dec(1000))

	r, err := testBuilder().Build(BuildInput{StudentName: "Aisha Khan"}, sel)
	require.NoError(t, err)

	assert.True(t, r.TotalAmount.Equal(dec(1200)))
	assert.True(t, r.TotalPaid.Equal(dec(1000)))
	assert.True(t, r.TotalDue.Equal(dec(200)))
	require.Len(t, r.Fees, 1)
	assert.True(t, r.Fees[0].Due.Equal(dec(200)))
}

func TestBuildTotalsAreElementwiseSums(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("1", dec(5000))
	sel.Toggle("3", dec(500))
	sel.SetPaid("3", dec(750))
	sel.Toggle("4", decimal.RequireFromString("299.99"))

	r, err := testBuilder().Build(BuildInput{StudentName: "Rahim"}, sel)
	require.NoError(t, err)

	var amount, paid, due decimal.Decimal
	for _, f := range r.Fees {
		amount = amount.Add(f.Amount)
		paid = paid.Add(f.Paid)
		due = due.Add(f.Due)
	}
	assert.True(t, r.TotalAmount.Equal(amount))
	assert.True(t, r.TotalPaid.Equal(paid))
	assert.True(t, r.TotalDue.Equal(due))
	assert.True(t, r.TotalDue.Equal(r.TotalAmount.Sub(r.TotalPaid)))
}

func TestBuildRejectsEmptyStudentName(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("3", dec(500))

	r, err := testBuilder().Build(BuildInput{StudentName: "   "}, sel)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrStudentNameRequired)
}

func TestBuildRejectsEmptyOrZeroSelection(t *testing.T) {
	b := testBuilder()

	r, err := b.Build(BuildInput{StudentName: "Aisha Khan"}, NewSelection())
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrNoFeesSelected)

	sel := NewSelection()
	sel.Toggle("6", dec(100))
	sel.SetTotal("6", decimal.Zero)
	r, err = b.Build(BuildInput{StudentName: "Aisha Khan"}, sel)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrNoFeesSelected)
}

func TestBuildOverpaymentPropagatesNegativeDue(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("2", dec(500))
	sel.SetPaid("2", dec(600))

	r, err := testBuilder().Build(BuildInput{StudentName: "Noor"}, sel)
	require.NoError(t, err)
	assert.True(t, r.TotalDue.Equal(dec(-100)))
	assert.False(t, r.HasBalance())
}

func TestBuildAppliesDefaults(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("2", dec(1200))

	r, err := testBuilder().Build(BuildInput{StudentName: "Aisha Khan"}, sel)
	require.NoError(t, err)

	assert.Equal(t, "Parent/Guardian", r.GuardianName)
	assert.Equal(t, "N/A", r.MobileNumber)
	assert.Equal(t, "2025-06-10", r.DateOfPayment)
	assert.Regexp(t, `^ALB-[A-Z0-9]{6}$`, r.ReceiptNo)
	assert.NotEmpty(t, r.ID)
	assert.False(t, r.CreatedAt.IsZero())
}

func TestBuildKeepsProvidedMetadata(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("2", dec(1200))

	r, err := testBuilder().Build(BuildInput{
		StudentName:   "Aisha Khan",
		GuardianName:  "S. Khan",
		MobileNumber:  "9830000000",
		DateOfPayment: "2025-06-01",
		MonthYear:     "June 2025",
		ReceiptNo:     "ALB-MANUAL",
	}, sel)
	require.NoError(t, err)

	assert.Equal(t, "ALB-MANUAL", r.ReceiptNo)
	assert.Equal(t, "S. Khan", r.GuardianName)
	assert.Equal(t, "June 2025", r.MonthYear)
	assert.Equal(t, "2025-06-01", r.DateOfPayment)
}
