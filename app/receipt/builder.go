package receipt

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/models"
)

// Validation failures surfaced to the user before any state changes.
var (
	ErrStudentNameRequired = errors.New("student name is required")
	ErrNoFeesSelected      = errors.New("select at least one fee category with a non-zero total")
)

// BuildInput carries the form fields for one receipt. Empty optional fields
// get the documented defaults during Build.
type BuildInput struct {
	StudentName   string
	Class         string
	Section       string
	RollNo        string
	GuardianName  string
	MobileNumber  string
	DateOfPayment string
	MonthYear     string
	ReceiptNo     string
}

// Builder turns form input plus a fee selection into immutable receipts.
// Construction is pure: appending to history and the print queue is the
// caller's job.
type Builder struct {
	numbers *NumberGenerator
	now     func() time.Time
}

func NewBuilder(numbers *NumberGenerator) *Builder {
	return &Builder{numbers: numbers, now: time.Now}
}

// Build validates the input and derives a Receipt with computed totals.
// It fails when the student name is blank or when the selection is empty or
// sums to a zero total; in that case no receipt is produced.
func (b *Builder) Build(in BuildInput, sel *Selection) (*models.Receipt, error) {
	if strings.TrimSpace(in.StudentName) == "" {
		return nil, ErrStudentNameRequired
	}
	total, paid, due := sel.Totals()
	if sel.Len() == 0 || total.IsZero() {
		return nil, ErrNoFeesSelected
	}

	now := b.now()

	receiptNo := strings.TrimSpace(in.ReceiptNo)
	if receiptNo == "" {
		receiptNo = b.numbers.Next()
	}
	guardian := strings.TrimSpace(in.GuardianName)
	if guardian == "" {
		guardian = "Parent/Guardian"
	}
	mobile := strings.TrimSpace(in.MobileNumber)
	if mobile == "" {
		mobile = "N/A"
	}
	date := strings.TrimSpace(in.DateOfPayment)
	if date == "" {
		date = now.Format("2006-01-02")
	}

	return &models.Receipt{
		ID:            uuid.NewString(),
		ReceiptNo:     receiptNo,
		StudentName:   strings.TrimSpace(in.StudentName),
		Class:         strings.TrimSpace(in.Class),
		Section:       strings.TrimSpace(in.Section),
		RollNo:        strings.TrimSpace(in.RollNo),
		GuardianName:  guardian,
		MobileNumber:  mobile,
		DateOfPayment: date,
		MonthYear:     strings.TrimSpace(in.MonthYear),
		Fees:          sel.Fees(),
		TotalAmount:   total,
		TotalPaid:     paid,
		TotalDue:      due,
		CreatedAt:     now,
	}, nil
}
