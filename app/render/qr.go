package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"
)

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// qrPNG encodes content into a small QR image for the receipt footer.
func qrPNG(content string) ([]byte, error) {
	qrc, err := qrcode.New(content)
	if err != nil {
		return nil, fmt.Errorf("build qr code: %w", err)
	}

	var buf bytes.Buffer
	w := standard.NewWithWriter(nopWriteCloser{&buf},
		standard.WithQRWidth(6),
		standard.WithBorderWidth(2),
	)
	if err := qrc.Save(w); err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return buf.Bytes(), nil
}
