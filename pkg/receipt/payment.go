package receipt

import "strings"

// MethodCredits is the payment-method code for the pre-funded credit channel
const MethodCredits = "credits"

// methodLabels maps lower-cased payment-method codes to display labels.
// Codes arrive as mixed-case free text from upstream records.
var methodLabels = map[string]string{
	"cash":          "Cash",
	"bank_transfer": "Bank Transfer",
	"credits":       "Member Credits",
	"card":          "Card",
}

// MethodLabel canonicalizes a raw payment-method code into a display label.
// Unknown codes are echoed back verbatim so no information is lost.
func MethodLabel(raw string) string {
	code := strings.ToLower(strings.TrimSpace(raw))
	if label, ok := methodLabels[code]; ok {
		return label
	}
	return raw
}

// IsCreditsMethod reports whether a raw payment-method code names the
// credits channel, case-insensitively.
func IsCreditsMethod(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), MethodCredits)
}
