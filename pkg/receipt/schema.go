// Package receipt defines the canonical receipt data model
package receipt

import "time"

// TransactionType discriminates the kind of transaction a receipt covers
type TransactionType string

const (
	TransactionBooking           TransactionType = "BOOKING"
	TransactionEventRegistration TransactionType = "EVENT_REGISTRATION"
	TransactionMembership        TransactionType = "MEMBERSHIP"
	TransactionCreditTopup       TransactionType = "CREDIT_TOPUP" // reserved, no assembler emits it yet
)

// PaidBy classifies who economically bears the charge
type PaidBy string

const (
	PaidBySelf        PaidBy = "self"
	PaidByOtherMember PaidBy = "other_member"
	PaidByCredits     PaidBy = "credits"
)

// LineItem is a single row of the itemized table. Quantity and UnitPrice are
// display-only; Amount is what totals are built from.
type LineItem struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity,omitempty"`
	UnitPrice   int64  `json:"unit_price,omitempty"`
	Amount      int64  `json:"amount"`
}

// ReceiptData is the transaction-kind-agnostic record consumed by the
// renderer. It is built fresh per render request and never mutated after
// assembly. Monetary values are whole units of the complex's local currency.
type ReceiptData struct {
	ReceiptNumber       string          `json:"receipt_number"`
	TransactionType     TransactionType `json:"transaction_type"`
	TransactionCategory string          `json:"transaction_category,omitempty"`
	TransactionID       string          `json:"transaction_id,omitempty"`
	Date                time.Time       `json:"date"`

	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`

	Items []LineItem `json:"items"`

	Subtotal            int64  `json:"subtotal"`
	Discount            int64  `json:"discount,omitempty"`
	DiscountDescription string `json:"discount_description,omitempty"`
	Total               int64  `json:"total"`

	PaymentMethod      string `json:"payment_method,omitempty"`
	PaymentMethodLabel string `json:"payment_method_label,omitempty"`
	PaymentStatus      string `json:"payment_status,omitempty"`
	PaymentReference   string `json:"payment_reference,omitempty"`

	PaidBy       PaidBy `json:"paid_by"`
	PayerDetails string `json:"payer_details,omitempty"`

	Notes string `json:"notes,omitempty"`
}
