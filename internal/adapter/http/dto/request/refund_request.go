package request

import (
	"encoding/json"
	"strings"

	"payment-proxy/internal/domain/entities"
	"payment-proxy/internal/domain/format"
)

// RefundRequest is the inbound payload of the refund route.
type RefundRequest struct {
	UID         string      `json:"uid"`
	Amount      json.Number `json:"amount"`
	Description string      `json:"description"`
}

func (r RefundRequest) Validate() (entities.RefundRequest, error) {
	var out entities.RefundRequest

	if strings.TrimSpace(r.UID) == "" {
		return out, invalid("uid is required")
	}
	amount, err := r.Amount.Float64()
	if err != nil || amount <= 0 {
		return out, invalid("amount must be a positive number")
	}

	out = entities.RefundRequest{
		UID:         strings.TrimSpace(r.UID),
		Amount:      format.Amount(r.Amount),
		Description: r.Description,
	}
	return out, nil
}

// CompleteRequest is the inbound payload of the pay-complete route. The key's
// shape is intentionally not validated; it is forwarded as received.
type CompleteRequest struct {
	UID string `json:"uid" form:"uid"`
	Key string `json:"key" form:"key"`
}

func (r CompleteRequest) Validate() error {
	if strings.TrimSpace(r.UID) == "" {
		return invalid("uid is required")
	}
	if strings.TrimSpace(r.Key) == "" {
		return invalid("key is required")
	}
	return nil
}

// ResultRequest is the inbound payload of the pay-result route; either uid or
// orderId selects the payment.
type ResultRequest struct {
	UID     string `json:"uid" form:"uid"`
	OrderID string `json:"orderId" form:"orderId"`
}

func (r ResultRequest) Validate() error {
	if strings.TrimSpace(r.UID) == "" && strings.TrimSpace(r.OrderID) == "" {
		return invalid("uid or orderId is required")
	}
	return nil
}
