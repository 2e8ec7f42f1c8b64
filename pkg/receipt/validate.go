package receipt

import "fmt"

// Validate validates a ReceiptData record before rendering
func Validate(r *ReceiptData) error {
	if r.ReceiptNumber == "" {
		return fmt.Errorf("receipt_number is required")
	}

	switch r.TransactionType {
	case TransactionBooking, TransactionEventRegistration, TransactionMembership, TransactionCreditTopup:
	default:
		return fmt.Errorf("unknown transaction_type: %s", r.TransactionType)
	}

	switch r.PaidBy {
	case PaidBySelf, PaidByOtherMember, PaidByCredits:
	default:
		return fmt.Errorf("unknown paid_by: %s", r.PaidBy)
	}

	if r.CustomerName == "" {
		return fmt.Errorf("customer_name is required")
	}

	if len(r.Items) == 0 {
		return fmt.Errorf("at least one line item is required")
	}

	for i, item := range r.Items {
		if item.Description == "" {
			return fmt.Errorf("item[%d]: description is required", i)
		}
		if item.Quantity < 0 {
			return fmt.Errorf("item[%d]: quantity cannot be negative", i)
		}
		if item.UnitPrice < 0 {
			return fmt.Errorf("item[%d]: unit_price cannot be negative", i)
		}
		if item.Amount < 0 {
			return fmt.Errorf("item[%d]: amount cannot be negative", i)
		}
	}

	if r.Subtotal < 0 {
		return fmt.Errorf("subtotal cannot be negative")
	}
	if r.Discount < 0 {
		return fmt.Errorf("discount cannot be negative")
	}
	if r.Total < 0 {
		return fmt.Errorf("total cannot be negative")
	}

	if r.Total != r.Subtotal-r.Discount {
		return fmt.Errorf("total %d does not equal subtotal %d minus discount %d", r.Total, r.Subtotal, r.Discount)
	}

	return nil
}
