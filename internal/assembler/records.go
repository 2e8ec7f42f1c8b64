// Package assembler maps domain transaction records into canonical receipt data
package assembler

import "time"

// Receipt number prefixes per transaction kind
const (
	PrefixBooking    = "QD-BK"
	PrefixEvent      = "QD-EV"
	PrefixMembership = "QD-MB"
)

// Customer carries display identity for transactions whose source record
// does not hold it directly.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Booking is a facility booking record as handed over by the booking
// subsystem. Nullable columns arrive as nil pointers; the assembler treats
// nil money as zero.
type Booking struct {
	ID                string     `json:"id"`
	FacilityID        string     `json:"facility_id,omitempty"`
	BasePrice         *int64     `json:"base_price,omitempty"`
	AddOnTotal        *int64     `json:"add_on_total,omitempty"`
	Discount          *int64     `json:"discount,omitempty"`
	TotalPrice        *int64     `json:"total_price,omitempty"`
	StartTime         *string    `json:"start_time,omitempty"`
	EndTime           *string    `json:"end_time,omitempty"`
	PaymentMethod     *string    `json:"payment_method,omitempty"`
	PaymentStatus     *string    `json:"payment_status,omitempty"`
	PaymentReference  *string    `json:"payment_reference,omitempty"`
	PayerType         *string    `json:"payer_type,omitempty"`
	PayerMemberNumber *string    `json:"payer_member_number,omitempty"`
	ReceiptNumber     *string    `json:"receipt_number,omitempty"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
}

// Facility is the related lookup for a booking
type Facility struct {
	ID    string  `json:"id"`
	Name  *string `json:"name,omitempty"`
	Sport *string `json:"sport,omitempty"`
}

// EventRegistration is an event sign-up record
type EventRegistration struct {
	ID               string     `json:"id"`
	EventID          string     `json:"event_id,omitempty"`
	GuestCount       *int       `json:"guest_count,omitempty"`
	AmountPaid       *int64     `json:"amount_paid,omitempty"`
	PaymentMethod    *string    `json:"payment_method,omitempty"`
	PaymentStatus    *string    `json:"payment_status,omitempty"`
	PaymentReference *string    `json:"payment_reference,omitempty"`
	CustomerName     *string    `json:"customer_name,omitempty"`
	CustomerEmail    *string    `json:"customer_email,omitempty"`
	CustomerPhone    *string    `json:"customer_phone,omitempty"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
}

// Event is the related lookup for a registration
type Event struct {
	ID        string  `json:"id"`
	Name      *string `json:"name,omitempty"`
	Price     *int64  `json:"price,omitempty"`
	Day       *string `json:"day,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}

// MembershipApplication is a membership sign-up record
type MembershipApplication struct {
	ID               string     `json:"id"`
	TierID           string     `json:"tier_id,omitempty"`
	AmountPaid       *int64     `json:"amount_paid,omitempty"`
	PaymentMethod    *string    `json:"payment_method,omitempty"`
	PaymentStatus    *string    `json:"payment_status,omitempty"`
	PaymentReference *string    `json:"payment_reference,omitempty"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
}

// PricingTier is the related lookup for a membership application
type PricingTier struct {
	ID            string  `json:"id"`
	Name          *string `json:"name,omitempty"`
	Price         *int64  `json:"price,omitempty"`
	BillingPeriod *string `json:"billing_period,omitempty"`
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func int64Val(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func intVal(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func timeOrNow(t *time.Time) time.Time {
	if t == nil {
		return time.Now()
	}
	return *t
}
