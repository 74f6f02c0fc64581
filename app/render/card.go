package render

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/fogleman/gg"
	"github.com/shopspring/decimal"

	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/logo"
	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/models"
)

// Card geometry: 3.75in x 5.5in at 300dpi, so four cards tile an A4 sheet.
const (
	cardWidth  = 1125
	cardHeight = 1650
	cardPad    = 42.0
)

const feeTableRows = 5

type cardPalette struct {
	ink, faint, accent, paper, panel [3]float64
}

var palette = cardPalette{
	ink:    [3]float64{0.10, 0.12, 0.16},
	faint:  [3]float64{0.45, 0.48, 0.53},
	accent: [3]float64{0.13, 0.23, 0.46},
	paper:  [3]float64{1, 1, 1},
	panel:  [3]float64{0.93, 0.94, 0.97},
}

func setRGB(dc *gg.Context, c [3]float64) { dc.SetRGB(c[0], c[1], c[2]) }

// drawCard paints a full receipt card onto a fresh context and returns it.
func (e *Engine) drawCard(r models.Receipt, profile models.SchoolProfile, categories []models.FeeCategory) (*gg.Context, error) {
	dc := gg.NewContext(cardWidth, cardHeight)

	setRGB(dc, palette.paper)
	dc.Clear()

	// Outer border.
	setRGB(dc, palette.ink)
	dc.SetLineWidth(4)
	dc.DrawRectangle(6, 6, cardWidth-12, cardHeight-12)
	dc.Stroke()

	y := e.drawHeader(dc, profile)
	y = e.drawMetaBar(dc, r, y)
	y = e.drawStudentBlock(dc, r, y)
	y = e.drawFeeTable(dc, r, categories, y)
	y = e.drawTotals(dc, r, y)
	e.drawFooter(dc, r, profile, y)

	return dc, nil
}

func (e *Engine) drawHeader(dc *gg.Context, profile models.SchoolProfile) float64 {
	y := cardPad + 8

	if profile.Logo != nil {
		if raw, err := logo.Decode(*profile.Logo); err == nil {
			if img, err := png.Decode(bytes.NewReader(raw)); err == nil {
				const box = 130.0
				b := img.Bounds()
				scale := box / float64(max(b.Dx(), b.Dy()))
				dc.Push()
				dc.Translate(cardPad, y)
				dc.Scale(scale, scale)
				dc.DrawImage(img, 0, 0)
				dc.Pop()
			}
		}
	}

	cx := float64(cardWidth) / 2
	setRGB(dc, palette.accent)
	dc.SetFontFace(e.fonts.face(e.fonts.bold, 54))
	dc.DrawStringAnchored(profile.Name, cx, y+34, 0.5, 0.5)

	y += 80
	setRGB(dc, palette.faint)
	if profile.TrustName != "" {
		dc.SetFontFace(e.fonts.face(e.fonts.italic, 26))
		dc.DrawStringAnchored(profile.TrustName, cx, y, 0.5, 0.5)
		y += 38
	}
	if profile.Address != "" {
		dc.SetFontFace(e.fonts.face(e.fonts.regular, 24))
		dc.DrawStringAnchored(profile.Address, cx, y, 0.5, 0.5)
		y += 38
	}

	setRGB(dc, palette.ink)
	dc.SetFontFace(e.fonts.face(e.fonts.bold, 30))
	dc.DrawStringAnchored("FEE RECEIPT", cx, y+14, 0.5, 0.5)
	y += 50

	dc.SetLineWidth(3)
	dc.DrawLine(cardPad, y, cardWidth-cardPad, y)
	dc.Stroke()

	return y + 16
}

func (e *Engine) drawMetaBar(dc *gg.Context, r models.Receipt, y float64) float64 {
	const h = 58.0

	setRGB(dc, palette.ink)
	dc.DrawRectangle(cardPad, y, 420, h)
	dc.Fill()
	setRGB(dc, palette.paper)
	dc.SetFontFace(e.fonts.face(e.fonts.bold, 26))
	dc.DrawStringAnchored("REC NO: "+r.ReceiptNo, cardPad+210, y+h/2, 0.5, 0.5)

	setRGB(dc, palette.ink)
	dc.SetFontFace(e.fonts.face(e.fonts.regular, 24))
	dc.DrawStringAnchored("Date: "+r.PaymentDate().Format("02 Jan 2006"), cardWidth-cardPad, y+h/2, 1, 0.5)

	return y + h + 24
}

func (e *Engine) drawStudentBlock(dc *gg.Context, r models.Receipt, y float64) float64 {
	left := cardPad
	right := float64(cardWidth)/2 + 20

	rows := [][2][2]string{
		{{"Student", r.StudentName}, {"Class", classLabel(r)}},
		{{"Roll No", r.RollNo}, {"Month", r.MonthYear}},
		{{"Guardian", r.GuardianName}, {"Mobile", r.MobileNumber}},
	}

	labelFace := e.fonts.face(e.fonts.regular, 22)
	valueFace := e.fonts.face(e.fonts.bold, 25)

	for _, row := range rows {
		for i, cell := range row {
			x := left
			if i == 1 {
				x = right
			}
			setRGB(dc, palette.faint)
			dc.SetFontFace(labelFace)
			dc.DrawString(cell[0]+":", x, y)
			setRGB(dc, palette.ink)
			dc.SetFontFace(valueFace)
			dc.DrawString(truncate(dc, cell[1], float64(cardWidth)/2-160), x+150, y)
		}
		y += 42
	}

	return y + 8
}

func classLabel(r models.Receipt) string {
	if r.Section != "" {
		return r.Class + " - " + r.Section
	}
	return r.Class
}

func (e *Engine) drawFeeTable(dc *gg.Context, r models.Receipt, categories []models.FeeCategory, y float64) float64 {
	const rowH = 52.0
	tableW := float64(cardWidth) - 2*cardPad
	colFee := cardPad + 24
	colAmount := cardPad + tableW*0.55
	colPaid := cardPad + tableW*0.72
	colDue := cardPad + tableW*0.89

	// Header strip.
	setRGB(dc, palette.accent)
	dc.DrawRectangle(cardPad, y, tableW, rowH)
	dc.Fill()
	setRGB(dc, palette.paper)
	dc.SetFontFace(e.fonts.face(e.fonts.bold, 24))
	dc.DrawStringAnchored("PARTICULARS", colFee, y+rowH/2, 0, 0.5)
	dc.DrawStringAnchored("AMOUNT", colAmount+40, y+rowH/2, 1, 0.5)
	dc.DrawStringAnchored("PAID", colPaid+40, y+rowH/2, 1, 0.5)
	dc.DrawStringAnchored("DUE", colDue+40, y+rowH/2, 1, 0.5)
	y += rowH

	regular := e.fonts.face(e.fonts.regular, 24)
	for i := 0; i < max(len(r.Fees), feeTableRows); i++ {
		if i%2 == 1 {
			setRGB(dc, palette.panel)
			dc.DrawRectangle(cardPad, y, tableW, rowH)
			dc.Fill()
		}
		if i < len(r.Fees) {
			fee := r.Fees[i]
			setRGB(dc, palette.ink)
			dc.SetFontFace(regular)
			dc.DrawStringAnchored(models.CategoryName(categories, fee.CategoryID), colFee, y+rowH/2, 0, 0.5)
			dc.DrawStringAnchored(formatAmount(fee.Amount), colAmount+40, y+rowH/2, 1, 0.5)
			dc.DrawStringAnchored(formatAmount(fee.Paid), colPaid+40, y+rowH/2, 1, 0.5)
			dc.DrawStringAnchored(formatAmount(fee.Due), colDue+40, y+rowH/2, 1, 0.5)
		}
		y += rowH
	}

	setRGB(dc, palette.ink)
	dc.SetLineWidth(2)
	dc.DrawRectangle(cardPad, y-rowH*float64(max(len(r.Fees), feeTableRows)+1), tableW, rowH*float64(max(len(r.Fees), feeTableRows)+1))
	dc.Stroke()

	return y + 20
}

func (e *Engine) drawTotals(dc *gg.Context, r models.Receipt, y float64) float64 {
	const h = 64.0
	tableW := float64(cardWidth) - 2*cardPad

	setRGB(dc, palette.panel)
	dc.DrawRectangle(cardPad, y, tableW, h)
	dc.Fill()

	setRGB(dc, palette.ink)
	dc.SetFontFace(e.fonts.face(e.fonts.bold, 27))
	dc.DrawStringAnchored("Total: "+formatAmount(r.TotalAmount), cardPad+20, y+h/2, 0, 0.5)
	dc.DrawStringAnchored("Paid: "+formatAmount(r.TotalPaid), cardPad+tableW*0.45, y+h/2, 0, 0.5)

	if r.HasBalance() {
		dc.SetRGB(0.72, 0.11, 0.11)
	} else {
		dc.SetRGB(0.09, 0.47, 0.21)
	}
	dc.DrawStringAnchored("Due: "+formatAmount(r.TotalDue), cardWidth-cardPad-20, y+h/2, 1, 0.5)

	y += h + 18

	badge := "PAID IN FULL"
	if r.HasBalance() {
		badge = "BALANCE DUE"
	} else if r.TotalDue.LessThan(decimal.Zero) {
		badge = "OVERPAID"
	}
	dc.SetFontFace(e.fonts.face(e.fonts.bold, 24))
	dc.DrawStringAnchored(badge, float64(cardWidth)/2, y, 0.5, 0.5)

	return y + 34
}

func (e *Engine) drawFooter(dc *gg.Context, r models.Receipt, profile models.SchoolProfile, y float64) {
	baseline := float64(cardHeight) - cardPad - 10

	if profile.IncludeQRCode {
		if raw, err := qrPNG(qrPayload(r)); err == nil {
			if img, err := png.Decode(bytes.NewReader(raw)); err == nil {
				const box = 150.0
				b := img.Bounds()
				scale := box / float64(max(b.Dx(), b.Dy()))
				dc.Push()
				dc.Translate(cardPad, baseline-box)
				dc.Scale(scale, scale)
				dc.DrawImage(img, 0, 0)
				dc.Pop()
			}
		}
	}

	setRGB(dc, palette.ink)
	dc.SetLineWidth(2)
	dc.DrawLine(cardWidth-cardPad-320, baseline-46, cardWidth-cardPad, baseline-46)
	dc.Stroke()
	setRGB(dc, palette.faint)
	dc.SetFontFace(e.fonts.face(e.fonts.regular, 22))
	dc.DrawStringAnchored("Authorised Signatory", cardWidth-cardPad-160, baseline-16, 0.5, 0.5)

	dc.SetFontFace(e.fonts.face(e.fonts.italic, 20))
	dc.DrawStringAnchored("This is a computer generated receipt.", float64(cardWidth)/2, float64(cardHeight)-cardPad+14, 0.5, 0.5)
}

func qrPayload(r models.Receipt) string {
	return fmt.Sprintf("%s|%s|%s|%s", r.ReceiptNo, r.StudentName, r.MonthYear, formatAmount(r.TotalPaid))
}

// truncate shortens a string so it fits within maxW using the current face.
// Trims whole runes so multibyte script is never cut mid-character.
func truncate(dc *gg.Context, s string, maxW float64) string {
	if w, _ := dc.MeasureString(s); w <= maxW {
		return s
	}
	runes := []rune(s)
	for len(runes) > 1 {
		runes = runes[:len(runes)-1]
		if w, _ := dc.MeasureString(string(runes) + "…"); w <= maxW {
			return string(runes) + "…"
		}
	}
	return string(runes)
}
