package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SelectedFee is one billed line on a receipt. Due is always Amount - Paid;
// it is recomputed at construction and never stored independently.
type SelectedFee struct {
	CategoryID string          `json:"categoryId"`
	Amount     decimal.Decimal `json:"amount"`
	Paid       decimal.Decimal `json:"paid"`
	Due        decimal.Decimal `json:"due"`
}

// Receipt is an immutable record of one billing transaction for one student.
// There is no update operation; corrections are new receipts.
type Receipt struct {
	ID            string          `json:"id"`
	ReceiptNo     string          `json:"receiptNo"`
	StudentName   string          `json:"studentName"`
	Class         string          `json:"class"`
	Section       string          `json:"section"`
	RollNo        string          `json:"rollNo"`
	GuardianName  string          `json:"guardianName"`
	MobileNumber  string          `json:"mobileNumber"`
	DateOfPayment string          `json:"dateOfPayment"`
	MonthYear     string          `json:"monthYear"`
	Fees          []SelectedFee   `json:"fees"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	TotalDue      decimal.Decimal `json:"totalDue"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// HasBalance reports whether the student still owes money on this receipt.
// Overpayment makes TotalDue negative, which counts as settled.
func (r *Receipt) HasBalance() bool {
	return r.TotalDue.IsPositive()
}

// PaymentDate parses DateOfPayment for display. The field is free-form user
// input, so parse failures fall back to the creation timestamp.
func (r *Receipt) PaymentDate() time.Time {
	t, err := time.Parse("2006-01-02", r.DateOfPayment)
	if err != nil {
		return r.CreatedAt
	}
	return t
}
