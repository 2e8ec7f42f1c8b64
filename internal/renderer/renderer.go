// Package renderer draws canonical receipt data onto a fixed single-page document
package renderer

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/quaydome/receipt-engine/pkg/receipt"
)

// Page dimensions, A4 proportions at 150 dpi
const (
	pageWidth  = 1240
	pageHeight = 1754
	margin     = 70.0
)

// Fixed vertical anchors of the layout. The items table is the only
// section that grows; everything below it flows from the table's end,
// except the footer which is pinned to the bottom of the page.
const (
	mastheadRuleY = 230.0
	metadataY     = 290.0
	itemsY        = 560.0
	footerY       = 1600.0
)

// Organization is the issuing organization's identity, printed on the
// masthead and footer of every receipt.
type Organization struct {
	Name    string
	Address string
	Phone   string
	Email   string
	TaxPIN  string
}

// Footer code styles
const (
	FooterCodeQR      = "qr"
	FooterCodeBarcode = "barcode"
	FooterCodeNone    = "none"
)

// Options configures a Renderer. The currency and locale are fixed per
// renderer, not per call.
type Options struct {
	Organization Organization
	CurrencyCode string // defaults to KES
	LogoPath     string // optional masthead logo
	FooterCode   string // qr, barcode or none; defaults to qr
}

// Renderer renders receipts. It holds only immutable options; every Render
// call draws on a fresh canvas, so a single Renderer is safe for
// concurrent use.
type Renderer struct {
	opts    Options
	amounts *message.Printer
}

// New creates a Renderer
func New(opts Options) *Renderer {
	if opts.CurrencyCode == "" {
		opts.CurrencyCode = "KES"
	}
	if opts.FooterCode == "" {
		opts.FooterCode = FooterCodeQR
	}
	if opts.Organization.Name == "" {
		opts.Organization.Name = "QuayDome Sports Complex"
	}

	return &Renderer{
		opts:    opts,
		amounts: message.NewPrinter(language.English),
	}
}

// Render draws the receipt and returns the finished PNG document. The
// operation is all-or-nothing: any drawing or encoding fault returns an
// error and no partial output.
func (r *Renderer) Render(data *receipt.ReceiptData) ([]byte, error) {
	p := r.newPage()

	p.drawMasthead()
	p.drawMetadata(data)

	y := p.drawItems(data)
	y = p.drawTotals(data, y)
	p.drawPayment(data, y)

	if err := p.drawFooter(data); err != nil {
		return nil, fmt.Errorf("failed to render footer: %w", err)
	}

	var buf bytes.Buffer
	if err := p.ctx.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode receipt document: %w", err)
	}

	return buf.Bytes(), nil
}

// page is the per-render drawing state
type page struct {
	ctx  *gg.Context
	opts Options
	fmt  *formatter
}

func (r *Renderer) newPage() *page {
	ctx := gg.NewContext(pageWidth, pageHeight)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()

	return &page{
		ctx:  ctx,
		opts: r.opts,
		fmt:  &formatter{currency: r.opts.CurrencyCode, printer: r.amounts},
	}
}

// Palette
func (p *page) setInk()      { p.ctx.SetRGB(0.12, 0.13, 0.18) }
func (p *page) setMuted()    { p.ctx.SetRGB(0.45, 0.47, 0.52) }
func (p *page) setRule()     { p.ctx.SetRGB(0.80, 0.81, 0.84) }
func (p *page) setDiscount() { p.ctx.SetRGB(0.05, 0.52, 0.28) }

// setStatus picks the payment-status color from the free-text status token
func (p *page) setStatus(status string) {
	switch normalizeStatus(status) {
	case statusGood:
		p.ctx.SetRGB(0.05, 0.52, 0.28)
	case statusPending:
		p.ctx.SetRGB(0.80, 0.52, 0.04)
	case statusBad:
		p.ctx.SetRGB(0.78, 0.16, 0.16)
	default:
		p.setInk()
	}
}
