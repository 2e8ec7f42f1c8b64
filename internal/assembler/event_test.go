package assembler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/quaydome/receipt-engine/pkg/receipt"
)

func testRegistration() *EventRegistration {
	created := time.Date(2025, 4, 13, 11, 0, 0, 0, time.UTC)
	return &EventRegistration{
		ID:            "reg_3b7e0c55",
		EventID:       "evt_open_day",
		GuestCount:    ptr(2),
		PaymentMethod: ptr("card"),
		PaymentStatus: ptr("paid"),
		CustomerName:  ptr("Brian Mwangi"),
		CustomerEmail: ptr("brian@example.com"),
		CreatedAt:     ptr(created),
	}
}

func TestAssembleEventRegistration_Scenario(t *testing.T) {
	event := &Event{
		ID:        "evt_open_day",
		Name:      ptr("Padel Open Day"),
		Price:     ptr(int64(2000)),
		Day:       ptr("Saturday"),
		StartTime: ptr("10:00"),
		EndTime:   ptr("12:00"),
	}

	data := AssembleEventRegistration(testRegistration(), event, &fixedGen{})

	assert.Equal(t, receipt.TransactionEventRegistration, data.TransactionType)
	assert.Equal(t, "Event Registration - Padel Open Day", data.TransactionCategory)

	if assert.Len(t, data.Items, 2) {
		assert.Equal(t, "Padel Open Day", data.Items[0].Description)
		assert.Equal(t, int64(2000), data.Items[0].Amount)
		assert.Equal(t, "Guests", data.Items[1].Description)
		assert.Equal(t, 2, data.Items[1].Quantity)
		assert.Equal(t, int64(4000), data.Items[1].Amount)
	}

	assert.Equal(t, int64(6000), data.Subtotal)
	assert.Equal(t, int64(6000), data.Total)
	assert.Equal(t, receipt.PaidBySelf, data.PaidBy)
	assert.Equal(t, "Saturday, 10:00 - 12:00", data.Notes)

	assert.NoError(t, receipt.Validate(data))
}

func TestAssembleEventRegistration_NoGuestLineWithoutGuests(t *testing.T) {
	reg := testRegistration()
	reg.GuestCount = ptr(0)
	event := &Event{ID: "evt_open_day", Price: ptr(int64(2000))}

	data := AssembleEventRegistration(reg, event, &fixedGen{})

	assert.Len(t, data.Items, 1)
	assert.Equal(t, int64(2000), data.Total)
}

func TestAssembleEventRegistration_UnitPriceFallbackChain(t *testing.T) {
	tests := []struct {
		name       string
		event      *Event
		amountPaid *int64
		want       int64
	}{
		{"event price wins", &Event{Price: ptr(int64(2500))}, ptr(int64(2000)), 2500},
		{"recorded amount when event has no price", &Event{}, ptr(int64(2000)), 2000},
		{"recorded amount when no event lookup", nil, ptr(int64(1500)), 1500},
		{"zero when nothing recorded", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := testRegistration()
			reg.GuestCount = nil
			reg.AmountPaid = tt.amountPaid

			data := AssembleEventRegistration(reg, tt.event, &fixedGen{})

			assert.Equal(t, tt.want, data.Items[0].UnitPrice)
			assert.Equal(t, tt.want, data.Total)
		})
	}
}

func TestAssembleEventRegistration_MissingEvent(t *testing.T) {
	data := AssembleEventRegistration(testRegistration(), nil, &fixedGen{})

	assert.Equal(t, "Event", data.Items[0].Description)
	assert.Equal(t, "Event Registration - Event", data.TransactionCategory)
	assert.Empty(t, data.Notes)
}

func TestAssembleEventRegistration_FreshNumberEveryTime(t *testing.T) {
	gen := &fixedGen{}

	AssembleEventRegistration(testRegistration(), nil, gen)
	AssembleEventRegistration(testRegistration(), nil, gen)

	assert.Equal(t, 2, gen.calls)
}

func TestScheduleNote(t *testing.T) {
	tests := []struct {
		name  string
		event *Event
		want  string
	}{
		{"full schedule", &Event{Day: ptr("Saturday"), StartTime: ptr("10:00"), EndTime: ptr("12:00")}, "Saturday, 10:00 - 12:00"},
		{"day and start", &Event{Day: ptr("Saturday"), StartTime: ptr("10:00")}, "Saturday, 10:00"},
		{"day only", &Event{Day: ptr("Saturday")}, "Saturday"},
		{"times only", &Event{StartTime: ptr("10:00"), EndTime: ptr("12:00")}, "10:00 - 12:00"},
		{"nothing", &Event{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scheduleNote(tt.event))
		})
	}
}
