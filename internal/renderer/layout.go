package renderer

import (
	"time"

	"github.com/quaydome/receipt-engine/pkg/receipt"
)

// Table column anchors. Description is left-aligned; the numeric columns
// are right-aligned against their anchor.
const (
	colDescription = margin
	colQuantity    = 770.0
	colUnitPrice   = 970.0
	colAmount      = pageWidth - margin
)

func (p *page) drawMasthead() {
	org := p.opts.Organization

	x := margin
	if logoWidth := p.drawLogo(); logoWidth > 0 {
		x += logoWidth + 30
	}

	p.setInk()
	p.setFont(46, true)
	p.text(org.Name, x, 120)

	p.setMuted()
	p.setFont(22, false)
	y := 156.0
	for _, line := range []string{org.Address, org.Phone, org.Email} {
		if line == "" {
			continue
		}
		p.text(line, x, y)
		y += 28
	}

	p.setInk()
	p.setFont(40, true)
	p.textRight("RECEIPT", pageWidth-margin, 120)

	p.rule(mastheadRuleY)
}

func (p *page) drawMetadata(data *receipt.ReceiptData) {
	leftX := margin
	rightX := 700.0

	p.setInk()
	p.setFont(26, true)
	p.text("Receipt Details", leftX, metadataY)
	p.text("Billed To", rightX, metadataY)

	y := metadataY + 42
	p.label("Receipt No.", data.ReceiptNumber, leftX, y)
	p.label("Date", p.fmt.date(data.Date), leftX, y+36)
	if data.TransactionCategory != "" {
		p.label("Category", data.TransactionCategory, leftX, y+72)
	}
	if data.TransactionID != "" {
		p.label("Transaction", truncateID(data.TransactionID, 14), leftX, y+108)
	}

	p.setInk()
	p.setFont(24, true)
	p.text(data.CustomerName, rightX, y)

	p.setMuted()
	p.setFont(22, false)
	contactY := y + 36
	for _, line := range []string{data.CustomerEmail, data.CustomerPhone} {
		if line == "" {
			continue
		}
		p.text(line, rightX, contactY)
		contactY += 32
	}
}

// drawItems renders the itemized table and returns the y position just
// below it.
func (p *page) drawItems(data *receipt.ReceiptData) float64 {
	p.setMuted()
	p.setFont(22, true)
	p.text("DESCRIPTION", colDescription, itemsY)
	p.textRight("QTY", colQuantity, itemsY)
	p.textRight("UNIT PRICE", colUnitPrice, itemsY)
	p.textRight("AMOUNT", colAmount, itemsY)

	p.rule(itemsY + 16)

	y := itemsY + 58
	for _, item := range data.Items {
		p.setInk()
		p.setFont(23, false)
		p.text(item.Description, colDescription, y)

		if item.Quantity > 0 {
			p.textRight(p.fmt.printer.Sprintf("%d", item.Quantity), colQuantity, y)
		}
		if item.UnitPrice > 0 {
			p.textRight(p.fmt.amount(item.UnitPrice), colUnitPrice, y)
		}
		p.textRight(p.fmt.amount(item.Amount), colAmount, y)

		y += 40
	}

	p.rule(y - 14)

	return y + 16
}

// drawTotals renders the totals block right-aligned under the table and
// returns the y position below it.
func (p *page) drawTotals(data *receipt.ReceiptData, y float64) float64 {
	labelX := 860.0

	p.setMuted()
	p.setFont(23, false)
	p.text("Subtotal", labelX, y)
	p.setInk()
	p.textRight(p.fmt.amount(data.Subtotal), colAmount, y)
	y += 38

	if data.Discount > 0 {
		label := "Discount"
		if data.DiscountDescription != "" {
			label = data.DiscountDescription
		}

		p.setDiscount()
		p.setFont(23, false)
		p.text(label, labelX, y)
		p.textRight("-"+p.fmt.amount(data.Discount), colAmount, y)
		y += 38
	}

	p.setRule()
	p.ctx.SetLineWidth(2)
	p.ctx.DrawLine(labelX, y-24, colAmount, y-24)
	p.ctx.Stroke()

	y += 8
	p.setInk()
	p.setFont(28, true)
	p.text("Total", labelX, y)
	p.textRight(p.fmt.amount(data.Total), colAmount, y)

	return y + 70
}

func (p *page) drawPayment(data *receipt.ReceiptData, y float64) {
	p.setInk()
	p.setFont(26, true)
	p.text("Payment Information", margin, y)
	y += 42

	if data.PaymentMethodLabel != "" || data.PaymentMethod != "" {
		method := data.PaymentMethodLabel
		if method == "" {
			method = data.PaymentMethod
		}
		p.label("Method", method, margin, y)
		y += 36
	}

	if data.PaymentStatus != "" {
		p.setMuted()
		p.setFont(22, false)
		p.text("Status", margin, y)

		p.setStatus(data.PaymentStatus)
		p.setFont(22, true)
		p.text(data.PaymentStatus, margin+220, y)
		y += 36
	}

	p.label("Paid by", paidByLabel(string(data.PaidBy)), margin, y)
	y += 36

	if data.PayerDetails != "" {
		p.label("Payer", data.PayerDetails, margin, y)
		y += 36
	}

	if data.PaymentReference != "" {
		p.label("Reference", data.PaymentReference, margin, y)
		y += 36
	}

	if data.Notes != "" {
		p.label("Notes", data.Notes, margin, y)
	}
}

func (p *page) drawFooter(data *receipt.ReceiptData) error {
	if err := p.drawFooterCode(data.ReceiptNumber); err != nil {
		return err
	}

	p.rule(footerY)

	org := p.opts.Organization

	p.setInk()
	p.setFont(22, true)
	p.text(org.Name, margin, footerY+40)

	p.setMuted()
	p.setFont(20, false)
	y := footerY + 70
	if org.TaxPIN != "" {
		p.text("Tax PIN: "+org.TaxPIN, margin, y)
		y += 28
	}
	p.text("This is a computer-generated receipt and requires no signature.", margin, y)
	p.text("Generated on "+p.fmt.datetime(time.Now()), margin, y+28)

	return nil
}
