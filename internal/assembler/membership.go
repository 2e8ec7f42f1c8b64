package assembler

import (
	"github.com/quaydome/receipt-engine/internal/identifier"
	"github.com/quaydome/receipt-engine/pkg/receipt"
)

// AssembleMembership maps a membership application into canonical receipt
// data. The pricing tier lookup may be nil. Membership charges are always
// borne by the applicant.
func AssembleMembership(app *MembershipApplication, tier *PricingTier, customer Customer, gen identifier.Generator) *receipt.ReceiptData {
	// Price resolves from the application's recorded payment amount,
	// then the tier's list price, then zero.
	var price int64
	if app.AmountPaid != nil {
		price = *app.AmountPaid
	} else if tier != nil {
		price = int64Val(tier.Price)
	}

	category := "Membership"
	description := "Membership"
	if tier != nil && strVal(tier.Name) != "" {
		category = "Membership - " + strVal(tier.Name)
		description = strVal(tier.Name) + " membership"
	}

	billingPeriod := "monthly"
	if tier != nil && strVal(tier.BillingPeriod) != "" {
		billingPeriod = strVal(tier.BillingPeriod)
	}

	method := strVal(app.PaymentMethod)

	return &receipt.ReceiptData{
		ReceiptNumber:       gen.Generate(PrefixMembership),
		TransactionType:     receipt.TransactionMembership,
		TransactionCategory: category,
		TransactionID:       app.ID,
		Date:                timeOrNow(app.CreatedAt),
		CustomerName:        customer.Name,
		CustomerEmail:       customer.Email,
		CustomerPhone:       customer.Phone,
		Items: []receipt.LineItem{
			{Description: description, Quantity: 1, UnitPrice: price, Amount: price},
		},
		Subtotal:           price,
		Total:              price,
		PaymentMethod:      method,
		PaymentMethodLabel: receipt.MethodLabel(method),
		PaymentStatus:      strVal(app.PaymentStatus),
		PaymentReference:   strVal(app.PaymentReference),
		PaidBy:             receipt.PaidBySelf,
		Notes:              "Billing period: " + billingPeriod,
	}
}
