package render

import (
	"bytes"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/models"
)

// Half the printable A4 height per card row; two rows tile a portrait page.
const batchRowHeight = 148

// Engine renders receipt cards with gg and composes A4 sheets with maroto.
type Engine struct {
	fonts *fontSet
}

// NewEngine prepares the rendering engine. A failure here is not fatal to
// the app; callers fall back to the Unavailable renderer.
func NewEngine() (*Engine, error) {
	fonts, err := loadFonts()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &Engine{fonts: fonts}, nil
}

func (e *Engine) ReceiptPNG(r models.Receipt, profile models.SchoolProfile, categories []models.FeeCategory) ([]byte, error) {
	dc, err := e.drawCard(r, profile, categories)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode receipt png: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Engine) ReceiptPDF(r models.Receipt, profile models.SchoolProfile, categories []models.FeeCategory) ([]byte, error) {
	return e.BatchPDF([][]models.Receipt{{r}}, profile, categories)
}

func (e *Engine) BatchPDF(pages [][]models.Receipt, profile models.SchoolProfile, categories []models.FeeCategory) ([]byte, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("no receipts to render")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Vertical).
		WithLeftMargin(0).
		WithTopMargin(0).
		WithRightMargin(0).
		WithBottomMargin(0).
		Build()
	m := maroto.New(cfg)

	for _, group := range pages {
		cards := make([][]byte, 0, len(group))
		for _, r := range group {
			png, err := e.ReceiptPNG(r, profile, categories)
			if err != nil {
				return nil, err
			}
			cards = append(cards, png)
		}

		p := page.New()
		p.Add(
			e.cardRow(cards, 0),
			e.cardRow(cards, 2),
		)
		m.AddPages(p)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate batch pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

// cardRow lays out two card slots side by side, starting at the given
// offset into the rendered cards; missing cards leave the slot blank.
func (e *Engine) cardRow(cards [][]byte, offset int) core.Row {
	cols := make([]core.Col, 0, 2)
	for i := offset; i < offset+2; i++ {
		if i < len(cards) {
			cols = append(cols, col.New(6).Add(
				image.NewFromBytes(cards[i], extension.Png, props.Rect{
					Center:  true,
					Percent: 97,
				}),
			))
		} else {
			cols = append(cols, col.New(6))
		}
	}
	return row.New(batchRowHeight).Add(cols...)
}
