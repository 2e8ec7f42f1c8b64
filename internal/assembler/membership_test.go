package assembler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/quaydome/receipt-engine/pkg/receipt"
)

func testApplication() *MembershipApplication {
	created := time.Date(2025, 4, 13, 14, 0, 0, 0, time.UTC)
	return &MembershipApplication{
		ID:            "app_77e1b2",
		TierID:        "tier_gold",
		PaymentMethod: ptr("bank_transfer"),
		PaymentStatus: ptr("pending"),
		CreatedAt:     ptr(created),
	}
}

func TestAssembleMembership_TierPriceFallback(t *testing.T) {
	// No recorded payment amount; the tier's list price applies.
	tier := &PricingTier{
		ID:            "tier_gold",
		Name:          ptr("Gold"),
		Price:         ptr(int64(15000)),
		BillingPeriod: ptr("annual"),
	}

	data := AssembleMembership(testApplication(), tier, Customer{Name: "Wanjiku Kamau"}, &fixedGen{})

	assert.Equal(t, receipt.TransactionMembership, data.TransactionType)
	assert.Equal(t, "Membership - Gold", data.TransactionCategory)
	assert.Equal(t, int64(15000), data.Subtotal)
	assert.Equal(t, int64(15000), data.Total)

	if assert.Len(t, data.Items, 1) {
		assert.Equal(t, "Gold membership", data.Items[0].Description)
		assert.Equal(t, int64(15000), data.Items[0].Amount)
	}

	assert.Equal(t, receipt.PaidBySelf, data.PaidBy)
	assert.Equal(t, "Billing period: annual", data.Notes)
	assert.Equal(t, "Bank Transfer", data.PaymentMethodLabel)

	assert.NoError(t, receipt.Validate(data))
}

func TestAssembleMembership_RecordedAmountWins(t *testing.T) {
	app := testApplication()
	app.AmountPaid = ptr(int64(12000)) // e.g. a prorated first charge
	tier := &PricingTier{ID: "tier_gold", Price: ptr(int64(15000))}

	data := AssembleMembership(app, tier, Customer{Name: "Wanjiku"}, &fixedGen{})

	assert.Equal(t, int64(12000), data.Total)
	assert.Equal(t, data.Subtotal, data.Total)
}

func TestAssembleMembership_ZeroWithoutAmountOrTier(t *testing.T) {
	data := AssembleMembership(testApplication(), nil, Customer{Name: "Wanjiku"}, &fixedGen{})

	assert.Zero(t, data.Total)
	assert.Zero(t, data.Subtotal)
	assert.Len(t, data.Items, 1)
}

func TestAssembleMembership_Defaults(t *testing.T) {
	data := AssembleMembership(testApplication(), nil, Customer{Name: "Wanjiku"}, &fixedGen{})

	assert.Equal(t, "Membership", data.TransactionCategory)
	assert.Equal(t, "Membership", data.Items[0].Description)
	assert.Equal(t, "Billing period: monthly", data.Notes)
}

func TestAssembleMembership_FreshNumberEveryTime(t *testing.T) {
	gen := &fixedGen{}

	first := AssembleMembership(testApplication(), nil, Customer{Name: "Wanjiku"}, gen)

	assert.Equal(t, "QD-MB-20250413-TEST1", first.ReceiptNumber)
	assert.Equal(t, 1, gen.calls)
}
