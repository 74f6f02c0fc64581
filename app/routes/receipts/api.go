package receipts

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/models"
	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/receipt"
	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/session"
)

var validate = validator.New()

// FeeInput is one selected fee line in a create request. Amounts accept
// JSON numbers or strings; non-numeric values coerce to zero.
type FeeInput struct {
	CategoryID string         `json:"categoryId" validate:"required"`
	Total      receipt.Amount `json:"total"`
	Paid       receipt.Amount `json:"paid"`
}

type ReceiptInput struct {
	StudentName   string     `json:"studentName" validate:"required"`
	Class         string     `json:"class" validate:"max=20"`
	Section       string     `json:"section" validate:"max=20"`
	RollNo        string     `json:"rollNo" validate:"max=20"`
	GuardianName  string     `json:"guardianName" validate:"max=100"`
	MobileNumber  string     `json:"mobileNumber" validate:"omitempty,min=7,max=15"`
	DateOfPayment string     `json:"dateOfPayment" validate:"omitempty,datetime=2006-01-02"`
	MonthYear     string     `json:"monthYear" validate:"max=30"`
	ReceiptNo     string     `json:"receiptNo" validate:"max=30"`
	Fees          []FeeInput `json:"fees" validate:"required,min=1,dive"`
}

func buildReceipt(in ReceiptInput, builder *receipt.Builder) (*models.Receipt, error) {
	sel := receipt.NewSelection()
	for _, fee := range in.Fees {
		// Toggle only on first sight of a category; a repeated id would
		// toggle the line back off. Repeats overwrite amounts instead.
		if !sel.IsSelected(fee.CategoryID) {
			sel.Toggle(fee.CategoryID, fee.Total.Decimal)
		}
		sel.SetTotal(fee.CategoryID, fee.Total.Decimal)
		sel.SetPaid(fee.CategoryID, fee.Paid.Decimal)
	}

	return builder.Build(receipt.BuildInput{
		StudentName:   in.StudentName,
		Class:         in.Class,
		Section:       in.Section,
		RollNo:        in.RollNo,
		GuardianName:  in.GuardianName,
		MobileNumber:  in.MobileNumber,
		DateOfPayment: in.DateOfPayment,
		MonthYear:     in.MonthYear,
		ReceiptNo:     in.ReceiptNo,
	}, sel)
}

func buildError(err error) error {
	if errors.Is(err, receipt.ErrStudentNameRequired) || errors.Is(err, receipt.ErrNoFeesSelected) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Failed to create receipt")
}

// GetReceiptsAPI returns the receipt history, newest first
func GetReceiptsAPI(c *fiber.Ctx, sess *session.Session) error {
	history := sess.History()
	return c.JSON(fiber.Map{
		"success": true,
		"data":    history,
		"count":   len(history),
	})
}

// NextNumberAPI previews a freshly generated receipt number
func NextNumberAPI(c *fiber.Ctx, numbers *receipt.NumberGenerator) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"receiptNo": numbers.Next()},
	})
}

// CreateReceiptAPI creates a single receipt and prepends it to history
func CreateReceiptAPI(c *fiber.Ctx, sess *session.Session, builder *receipt.Builder) error {
	var in ReceiptInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(in); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Validation failed: "+err.Error())
	}

	r, err := buildReceipt(in, builder)
	if err != nil {
		return buildError(err)
	}

	sess.AddReceipt(*r)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    r,
		"message": "Receipt created successfully",
	})
}

type bulkInput struct {
	Receipts []ReceiptInput `json:"receipts" validate:"required,min=1,dive"`
}

// CreateReceiptsBulkAPI creates a batch of receipts in one call. The batch
// is all-or-nothing: a single invalid entry rejects the whole request.
func CreateReceiptsBulkAPI(c *fiber.Ctx, sess *session.Session, builder *receipt.Builder) error {
	var in bulkInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(in); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Validation failed: "+err.Error())
	}

	built := make([]models.Receipt, 0, len(in.Receipts))
	for i, entry := range in.Receipts {
		r, err := buildReceipt(entry, builder)
		if err != nil {
			if errors.Is(err, receipt.ErrStudentNameRequired) || errors.Is(err, receipt.ErrNoFeesSelected) {
				return fiber.NewError(fiber.StatusUnprocessableEntity,
					fmt.Sprintf("Receipt %d: %v", i+1, err))
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create receipts")
		}
		built = append(built, *r)
	}

	sess.AddReceipts(built)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    built,
		"count":   len(built),
		"message": fmt.Sprintf("%d receipts created successfully", len(built)),
	})
}

// GetReceiptByIDAPI returns a single receipt
func GetReceiptByIDAPI(c *fiber.Ctx, sess *session.Session) error {
	r, ok := sess.Receipt(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Receipt not found")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    r,
	})
}

// DeleteReceiptAPI removes a receipt from history and from the print queue
func DeleteReceiptAPI(c *fiber.Ctx, sess *session.Session) error {
	if !sess.DeleteReceipt(c.Params("id")) {
		return fiber.NewError(fiber.StatusNotFound, "Receipt not found")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Receipt deleted successfully",
	})
}
