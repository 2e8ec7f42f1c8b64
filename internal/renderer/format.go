package renderer

import (
	"strings"
	"time"

	"golang.org/x/text/message"
)

// formatter handles the fixed-locale display formatting of the document
type formatter struct {
	currency string
	printer  *message.Printer
}

// amount formats an integer monetary value with thousands grouping and the
// currency-code prefix, e.g. "KES 6,000". Amounts carry no minor units.
func (f *formatter) amount(v int64) string {
	return f.currency + " " + f.printer.Sprintf("%d", v)
}

func (f *formatter) date(t time.Time) string {
	return t.Format("02 Jan 2006")
}

func (f *formatter) datetime(t time.Time) string {
	return t.Format("02 Jan 2006 15:04")
}

// truncateID shortens an opaque transaction id for display. The id is never
// parsed, only abbreviated.
func truncateID(id string, max int) string {
	if len(id) <= max {
		return id
	}
	return id[:max] + "…"
}

// Payment status buckets used for color coding
const (
	statusGood    = "good"
	statusPending = "pending"
	statusBad     = "bad"
	statusOther   = "other"
)

// normalizeStatus buckets the free-text status token from upstream records.
// Unknown tokens keep the default ink color; the raw text is always printed
// verbatim.
func normalizeStatus(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "paid", "completed", "complete", "success", "confirmed":
		return statusGood
	case "pending", "processing", "awaiting_payment", "unpaid":
		return statusPending
	case "failed", "cancelled", "canceled", "refunded", "declined":
		return statusBad
	default:
		return statusOther
	}
}

// paidByLabel maps the paid-by classification to its display form
func paidByLabel(paidBy string) string {
	switch paidBy {
	case "self":
		return "Self"
	case "other_member":
		return "Other member"
	case "credits":
		return "Member credits"
	default:
		return paidBy
	}
}
