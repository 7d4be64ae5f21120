package entities

import "strings"

// MaskedNumber keeps the BIN and last four digits, masking the rest.
// Short or empty numbers come back fully masked.
func (c CardInfo) MaskedNumber() string {
	n := c.Number
	if len(n) < 13 {
		return strings.Repeat("*", len(n))
	}
	return n[:6] + strings.Repeat("*", len(n)-10) + n[len(n)-4:]
}

// Redacted returns a log- and debug-safe projection of the payment request.
// Card number and CVV are never present in clear form.
func (r PaymentRequest) Redacted() map[string]any {
	return map[string]any{
		"returnUrl":    r.ReturnURL,
		"orderId":      r.OrderID,
		"clientIp":     r.ClientIP,
		"installment":  r.Installment,
		"amount":       r.Amount,
		"is3D":         r.Is3D,
		"isAutoCommit": r.IsAutoCommit,
		"card": map[string]any{
			"owner":       r.Card.Owner,
			"number":      r.Card.MaskedNumber(),
			"expiryMonth": r.Card.ExpiryMonth,
			"expiryYear":  r.Card.ExpiryYear,
			"cvv":         "***",
		},
	}
}
