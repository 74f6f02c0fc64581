// Package render produces the visual outputs of the app: receipt card
// images, single-receipt PDFs and batched A4 sheets.
package render

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/models"
)

// ErrUnavailable is returned when the rendering engine could not be set up
// (e.g. font initialisation failed). Handlers surface it as a user-visible
// failure instead of crashing; core state is never touched by rendering.
var ErrUnavailable = errors.New("rendering engine is not available")

// Renderer is the injected rendering capability. All methods are read-only
// with respect to session state.
type Renderer interface {
	// ReceiptPNG renders one receipt card at print resolution.
	ReceiptPNG(r models.Receipt, profile models.SchoolProfile, categories []models.FeeCategory) ([]byte, error)
	// ReceiptPDF renders one receipt onto a single A4 page.
	ReceiptPDF(r models.Receipt, profile models.SchoolProfile, categories []models.FeeCategory) ([]byte, error)
	// BatchPDF renders pre-packed groups of up to four receipts, one A4
	// page per group, filling the 2x2 grid from slot 1 and leaving the
	// remaining slots blank.
	BatchPDF(pages [][]models.Receipt, profile models.SchoolProfile, categories []models.FeeCategory) ([]byte, error)
}

// Unavailable is the fallback Renderer used when engine setup fails at
// startup; every call reports ErrUnavailable.
type Unavailable struct{}

func (Unavailable) ReceiptPNG(models.Receipt, models.SchoolProfile, []models.FeeCategory) ([]byte, error) {
	return nil, ErrUnavailable
}

func (Unavailable) ReceiptPDF(models.Receipt, models.SchoolProfile, []models.FeeCategory) ([]byte, error) {
	return nil, ErrUnavailable
}

func (Unavailable) BatchPDF([][]models.Receipt, models.SchoolProfile, []models.FeeCategory) ([]byte, error) {
	return nil, ErrUnavailable
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// ReceiptFileName builds the download name for a single receipt export,
// falling back to a timestamp when the receipt number is unusable.
func ReceiptFileName(receiptNo, ext string, now time.Time) string {
	base := unsafeFilenameChars.ReplaceAllString(receiptNo, "")
	if base == "" {
		base = fmt.Sprintf("%d", now.UnixMilli())
	}
	return fmt.Sprintf("Receipt_%s.%s", base, ext)
}

// BatchFileName builds the download name for an A4 batch export.
func BatchFileName(now time.Time) string {
	return fmt.Sprintf("A4_Batch_%d.pdf", now.UnixMilli())
}
