package assembler

import (
	"fmt"
	"strings"

	"github.com/quaydome/receipt-engine/internal/identifier"
	"github.com/quaydome/receipt-engine/pkg/receipt"
)

const creditsPayerDetails = "Paid from member credit balance"

// AssembleBooking maps a facility booking into canonical receipt data.
// The facility lookup may be nil; payerName is only meaningful when the
// booking was paid by a delegate member. Bookings keep the receipt number
// persisted on the record; a fresh one is generated only as a fallback.
func AssembleBooking(b *Booking, facility *Facility, customer Customer, payerName string, gen identifier.Generator) *receipt.ReceiptData {
	number := strVal(b.ReceiptNumber)
	if number == "" {
		number = gen.Generate(PrefixBooking)
	}

	facilityName := "Facility"
	if facility != nil && strVal(facility.Name) != "" {
		facilityName = strVal(facility.Name)
	}

	basePrice := int64Val(b.BasePrice)
	addOnTotal := int64Val(b.AddOnTotal)
	discount := int64Val(b.Discount)
	method := strVal(b.PaymentMethod)

	items := []receipt.LineItem{
		{Description: facilityName, Quantity: 1, UnitPrice: basePrice, Amount: basePrice},
	}
	if addOnTotal > 0 {
		items = append(items, receipt.LineItem{Description: "Add-ons", Amount: addOnTotal})
	}

	paidBy := receipt.PaidBySelf
	payerDetails := ""
	switch {
	case receipt.IsCreditsMethod(method):
		paidBy = receipt.PaidByCredits
		payerDetails = creditsPayerDetails
	case strings.EqualFold(strVal(b.PayerType), "other"):
		paidBy = receipt.PaidByOtherMember
		memberNumber := strVal(b.PayerMemberNumber)
		switch {
		case payerName != "" && memberNumber != "":
			payerDetails = fmt.Sprintf("%s (Member %s)", payerName, memberNumber)
		case memberNumber != "":
			payerDetails = fmt.Sprintf("Member %s", memberNumber)
		default:
			payerDetails = payerName
		}
	}

	data := &receipt.ReceiptData{
		ReceiptNumber:       number,
		TransactionType:     receipt.TransactionBooking,
		TransactionCategory: "Facility Booking - " + facilityName,
		TransactionID:       b.ID,
		Date:                timeOrNow(b.CreatedAt),
		CustomerName:        customer.Name,
		CustomerEmail:       customer.Email,
		CustomerPhone:       customer.Phone,
		Items:               items,
		Subtotal:            basePrice + addOnTotal,
		// The booking record is the source of truth for the final charged
		// amount; subtotal and discount are presentational.
		Total:              int64Val(b.TotalPrice),
		PaymentMethod:      method,
		PaymentMethodLabel: receipt.MethodLabel(method),
		PaymentStatus:      strVal(b.PaymentStatus),
		PaymentReference:   strVal(b.PaymentReference),
		PaidBy:             paidBy,
		PayerDetails:       payerDetails,
	}

	if discount > 0 {
		data.Discount = discount
		data.DiscountDescription = "Membership discount"
	}

	if strVal(b.StartTime) != "" && strVal(b.EndTime) != "" {
		data.Notes = fmt.Sprintf("Booked time: %s - %s", strVal(b.StartTime), strVal(b.EndTime))
	}

	return data
}
