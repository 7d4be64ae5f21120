package interfaces

import (
	"context"

	"payment-proxy/internal/domain/entities"
)

// IPaymentProvider abstracts the external payment-service-provider API.
//
// Implementations return a ProviderResult for every answered call, including
// non-2xx statuses; a Go error means no usable response was received at all
// (timeout, connection failure).
type IPaymentProvider interface {
	PayRequest3D(ctx context.Context, req entities.PaymentRequest) (entities.ProviderResult, error)
	PayComplete(ctx context.Context, uid, key string) (entities.ProviderResult, error)
	PayResultCheck(ctx context.Context, uid, orderID string) (entities.ProviderResult, error)
	RefundRequest(ctx context.Context, req entities.RefundRequest) (entities.ProviderResult, error)

	// Configured reports whether the merchant credentials are complete.
	Configured() bool
}
