package renderer

import (
	"fmt"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/skip2/go-qrcode"
)

// drawFooterCode renders a machine-readable copy of the receipt number in
// the footer corner, as a QR code or a Code 128 barcode depending on the
// configured style.
func (p *page) drawFooterCode(number string) error {
	switch p.opts.FooterCode {
	case FooterCodeQR:
		return p.drawQRCode(number)
	case FooterCodeBarcode:
		return p.drawBarcode(number)
	case FooterCodeNone:
		return nil
	default:
		return fmt.Errorf("unsupported footer code style: %s", p.opts.FooterCode)
	}
}

func (p *page) drawQRCode(number string) error {
	qr, err := qrcode.New(number, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	const size = 140
	img := qr.Image(size)
	p.ctx.DrawImage(img, pageWidth-int(margin)-size, int(footerY)+8)

	return nil
}

func (p *page) drawBarcode(number string) error {
	code, err := code128.Encode(number)
	if err != nil {
		return fmt.Errorf("failed to generate barcode: %w", err)
	}

	const (
		codeWidth  = 340
		codeHeight = 80
	)

	scaled, err := barcode.Scale(code, codeWidth, codeHeight)
	if err != nil {
		return fmt.Errorf("failed to scale barcode: %w", err)
	}

	p.ctx.DrawImage(scaled, pageWidth-int(margin)-codeWidth, int(footerY)+30)

	return nil
}
