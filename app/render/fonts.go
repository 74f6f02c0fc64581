package render

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

type fontSet struct {
	regular *truetype.Font
	bold    *truetype.Font
	italic  *truetype.Font
}

func loadFonts() (*fontSet, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	italic, err := truetype.Parse(goitalic.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse italic font: %w", err)
	}
	return &fontSet{regular: regular, bold: bold, italic: italic}, nil
}

// face sizes are in pixels; the card is drawn at a fixed pixel resolution.
func (f *fontSet) face(ttf *truetype.Font, px float64) font.Face {
	return truetype.NewFace(ttf, &truetype.Options{Size: px})
}
