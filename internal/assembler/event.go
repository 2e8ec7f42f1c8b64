package assembler

import (
	"fmt"

	"github.com/quaydome/receipt-engine/internal/identifier"
	"github.com/quaydome/receipt-engine/pkg/receipt"
)

// AssembleEventRegistration maps an event sign-up into canonical receipt
// data. The event lookup may be nil. Delegated payment is not modeled for
// events, so paid-by is always self.
func AssembleEventRegistration(reg *EventRegistration, event *Event, gen identifier.Generator) *receipt.ReceiptData {
	eventName := "Event"
	if event != nil && strVal(event.Name) != "" {
		eventName = strVal(event.Name)
	}

	// Unit price resolves from the event's listed price, then the
	// registration's recorded payment amount, then zero.
	var unitPrice int64
	if event != nil && event.Price != nil {
		unitPrice = *event.Price
	} else {
		unitPrice = int64Val(reg.AmountPaid)
	}

	guestCount := intVal(reg.GuestCount)
	total := unitPrice * int64(1+guestCount)
	method := strVal(reg.PaymentMethod)

	items := []receipt.LineItem{
		{Description: eventName, Quantity: 1, UnitPrice: unitPrice, Amount: unitPrice},
	}
	if guestCount > 0 {
		items = append(items, receipt.LineItem{
			Description: "Guests",
			Quantity:    guestCount,
			UnitPrice:   unitPrice,
			Amount:      unitPrice * int64(guestCount),
		})
	}

	data := &receipt.ReceiptData{
		ReceiptNumber:       gen.Generate(PrefixEvent),
		TransactionType:     receipt.TransactionEventRegistration,
		TransactionCategory: "Event Registration - " + eventName,
		TransactionID:       reg.ID,
		Date:                timeOrNow(reg.CreatedAt),
		CustomerName:        strVal(reg.CustomerName),
		CustomerEmail:       strVal(reg.CustomerEmail),
		CustomerPhone:       strVal(reg.CustomerPhone),
		Items:               items,
		Subtotal:            total,
		Total:               total,
		PaymentMethod:       method,
		PaymentMethodLabel:  receipt.MethodLabel(method),
		PaymentStatus:       strVal(reg.PaymentStatus),
		PaymentReference:    strVal(reg.PaymentReference),
		PaidBy:              receipt.PaidBySelf,
	}

	if event != nil {
		data.Notes = scheduleNote(event)
	}

	return data
}

func scheduleNote(event *Event) string {
	day := strVal(event.Day)
	start := strVal(event.StartTime)
	end := strVal(event.EndTime)

	switch {
	case day != "" && start != "" && end != "":
		return fmt.Sprintf("%s, %s - %s", day, start, end)
	case day != "" && start != "":
		return fmt.Sprintf("%s, %s", day, start)
	case day != "":
		return day
	case start != "" && end != "":
		return fmt.Sprintf("%s - %s", start, end)
	default:
		return ""
	}
}
