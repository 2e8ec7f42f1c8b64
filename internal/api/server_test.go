package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quaydome/receipt-engine/internal/identifier"
	"github.com/quaydome/receipt-engine/internal/ledger"
	"github.com/quaydome/receipt-engine/internal/renderer"
	"github.com/quaydome/receipt-engine/internal/renderqueue"
	"github.com/quaydome/receipt-engine/pkg/receipt"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	led, err := ledger.New(filepath.Join(t.TempDir(), "ledger.json"))
	require.NoError(t, err)

	rend := renderer.New(renderer.Options{FooterCode: renderer.FooterCodeNone})
	queue := renderqueue.New(rend)
	t.Cleanup(queue.Stop)

	return NewServer(rend, queue, led, identifier.NewRandom())
}

func postJSON(t *testing.T, s *Server, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func get(s *Server, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func bookingPayload() map[string]interface{} {
	base := int64(6000)
	total := int64(6000)
	name := "Padel Court 1"
	return map[string]interface{}{
		"booking": map[string]interface{}{
			"id":          "bk-100",
			"base_price":  base,
			"total_price": total,
		},
		"facility": map[string]interface{}{
			"id":   "fac-1",
			"name": name,
		},
		"customer": map[string]interface{}{
			"name": "Amina Odhiambo",
		},
	}
}

func TestBookingReceipt_ReturnsDocument(t *testing.T) {
	s := newTestServer(t)

	w := postJSON(t, s, "/receipts/booking", bookingPayload())

	require.Equal(t, 200, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), pngMagic))
	assert.NotEmpty(t, w.Header().Get("X-Receipt-Number"))
}

func TestBookingReceipt_NumberIsStable(t *testing.T) {
	s := newTestServer(t)

	first := postJSON(t, s, "/receipts/booking", bookingPayload())
	second := postJSON(t, s, "/receipts/booking", bookingPayload())

	require.Equal(t, 200, first.Code)
	require.Equal(t, 200, second.Code)
	assert.Equal(t,
		first.Header().Get("X-Receipt-Number"),
		second.Header().Get("X-Receipt-Number"))
}

func TestBookingReceipt_MissingBooking(t *testing.T) {
	s := newTestServer(t)

	w := postJSON(t, s, "/receipts/booking", map[string]interface{}{})

	assert.Equal(t, 400, w.Code)
}

func TestBookingReceipt_Async(t *testing.T) {
	s := newTestServer(t)

	w := postJSON(t, s, "/receipts/booking?async=1", bookingPayload())

	require.Equal(t, 202, w.Code)

	var resp struct {
		JobID         string `json:"job_id"`
		ReceiptNumber string `json:"receipt_number"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.JobID)
	assert.NotEmpty(t, resp.ReceiptNumber)

	// The job eventually completes and its document becomes downloadable.
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		doc := get(s, "/job/"+resp.JobID+"/document")
		if doc.Code == 200 {
			assert.True(t, bytes.HasPrefix(doc.Body.Bytes(), pngMagic))
			return
		}
		time.Sleep(25 * time.Millisecond)
	}
	t.Fatal("async job never completed")
}

func TestEventReceipt_ReturnsDocument(t *testing.T) {
	s := newTestServer(t)

	price := int64(2000)
	name := "Karaoke Night"
	w := postJSON(t, s, "/receipts/event-registration", map[string]interface{}{
		"registration": map[string]interface{}{
			"id":            "reg-1",
			"customer_name": "Brian Mwangi",
		},
		"event": map[string]interface{}{
			"id":    "ev-1",
			"name":  name,
			"price": price,
		},
	})

	require.Equal(t, 200, w.Code)
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), pngMagic))
}

func TestMembershipReceipt_ReturnsDocument(t *testing.T) {
	s := newTestServer(t)

	price := int64(15000)
	name := "Gold"
	w := postJSON(t, s, "/receipts/membership", map[string]interface{}{
		"application": map[string]interface{}{
			"id": "app-1",
		},
		"tier": map[string]interface{}{
			"id":    "tier-1",
			"name":  name,
			"price": price,
		},
		"customer": map[string]interface{}{
			"name": "Wanjiru Kamau",
		},
	})

	require.Equal(t, 200, w.Code)
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), pngMagic))
}

func TestRenderEndpoint_RejectsInvalidData(t *testing.T) {
	s := newTestServer(t)

	// Total does not match subtotal minus discount.
	w := postJSON(t, s, "/receipts/render", receipt.ReceiptData{
		ReceiptNumber:   "QD-BK-20250413-7K2XQ",
		TransactionType: receipt.TransactionBooking,
		CustomerName:    "Amina Odhiambo",
		Items:           []receipt.LineItem{{Description: "Padel", Amount: 6000}},
		Subtotal:        6000,
		Total:           9999,
		PaidBy:          receipt.PaidBySelf,
	})

	assert.Equal(t, 400, w.Code)
}

func TestGetJob_NotFound(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, 404, get(s, "/job/nope").Code)
	assert.Equal(t, 404, get(s, "/job/nope/document").Code)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := get(s, "/health")

	require.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
