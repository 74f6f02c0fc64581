package receipts

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/render"
	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/session"
)

// DownloadReceiptPDFAPI streams a single receipt as an A4 PDF
func DownloadReceiptPDFAPI(c *fiber.Ctx, sess *session.Session, renderer render.Renderer) error {
	r, ok := sess.Receipt(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Receipt not found")
	}

	data, err := renderer.ReceiptPDF(r, sess.Profile(), sess.Categories())
	if err != nil {
		return exportError(err, "PDF")
	}

	name := render.ReceiptFileName(r.ReceiptNo, "pdf", time.Now())
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Send(data)
}

// DownloadReceiptPNGAPI streams a single receipt card as a PNG image
func DownloadReceiptPNGAPI(c *fiber.Ctx, sess *session.Session, renderer render.Renderer) error {
	r, ok := sess.Receipt(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Receipt not found")
	}

	data, err := renderer.ReceiptPNG(r, sess.Profile(), sess.Categories())
	if err != nil {
		return exportError(err, "PNG")
	}

	name := render.ReceiptFileName(r.ReceiptNo, "png", time.Now())
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Send(data)
}

func exportError(err error, kind string) error {
	if errors.Is(err, render.ErrUnavailable) {
		return fiber.NewError(fiber.StatusServiceUnavailable, kind+" generation is not available")
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate "+kind)
}
