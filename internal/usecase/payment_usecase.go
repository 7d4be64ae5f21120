package usecase

import (
	"context"
	"errors"
	"log"

	"payment-proxy/internal/domain/entities"
	"payment-proxy/internal/usecase/interfaces"
)

var (
	ErrMissingCredentials = errors.New("payment provider credentials missing")
)

// Amount and card of the canned sandbox payment used by the test routes.
var testPaymentRequest = entities.PaymentRequest{
	ReturnURL:    "https://localhost/payment-return",
	OrderID:      "proxy-test",
	ClientIP:     "127.0.0.1",
	Installment:  1,
	Amount:       "1.00",
	Is3D:         true,
	IsAutoCommit: true,
	Card: entities.CardInfo{
		Owner:       "Test User",
		Number:      "4355084355084358",
		ExpiryMonth: "12",
		ExpiryYear:  "26",
		CVV:         "000",
	},
}

// IPaymentUseCase binds validation output to provider calls and normalizes
// the responses into Outcomes.
type IPaymentUseCase interface {
	CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.Outcome, error)
	CompletePayment(ctx context.Context, uid, key string) (entities.ProviderResult, error)
	CheckResult(ctx context.Context, uid, orderID string) (entities.Outcome, error)
	Refund(ctx context.Context, req entities.RefundRequest) (entities.Outcome, error)
	TestPayment(ctx context.Context) (entities.ProviderResult, error)
	TestResult(ctx context.Context, uid string) (entities.ProviderResult, error)
}

type PaymentUseCase struct {
	provider interfaces.IPaymentProvider
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(provider interfaces.IPaymentProvider) *PaymentUseCase {
	return &PaymentUseCase{provider: provider}
}

func (u *PaymentUseCase) CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.Outcome, error) {
	if u.provider == nil || !u.provider.Configured() {
		log.Printf("[payment][usecase] create rejected: provider credentials missing")
		return entities.Outcome{}, ErrMissingCredentials
	}
	log.Printf("[payment][usecase] create start order_id=%s amount=%s is3d=%t", req.OrderID, req.Amount, req.Is3D)

	res, err := u.provider.PayRequest3D(ctx, req)
	o := NormalizeCreate(res, err)
	log.Printf("[payment][usecase] create outcome order_id=%s kind=%s provider_status=%d", req.OrderID, o.Kind, o.HTTPStatus)
	return o, nil
}

// CompletePayment is a deliberate passthrough: the provider's status and body
// are relayed untouched, and key is forwarded exactly as received.
func (u *PaymentUseCase) CompletePayment(ctx context.Context, uid, key string) (entities.ProviderResult, error) {
	if u.provider == nil || !u.provider.Configured() {
		log.Printf("[payment][usecase] complete rejected: provider credentials missing")
		return entities.ProviderResult{}, ErrMissingCredentials
	}
	log.Printf("[payment][usecase] complete start uid=%s", uid)

	res, err := u.provider.PayComplete(ctx, uid, key)
	if err != nil {
		log.Printf("[payment][usecase] complete transport failure uid=%s err=%v", uid, err)
		return entities.ProviderResult{}, err
	}
	log.Printf("[payment][usecase] complete done uid=%s provider_status=%d", uid, res.StatusCode)
	return res, nil
}

func (u *PaymentUseCase) CheckResult(ctx context.Context, uid, orderID string) (entities.Outcome, error) {
	if u.provider == nil || !u.provider.Configured() {
		log.Printf("[payment][usecase] result rejected: provider credentials missing")
		return entities.Outcome{}, ErrMissingCredentials
	}
	log.Printf("[payment][usecase] result start uid=%s order_id=%s", uid, orderID)

	res, err := u.provider.PayResultCheck(ctx, uid, orderID)
	o := NormalizeResult(res, err)
	log.Printf("[payment][usecase] result outcome uid=%s kind=%s payment_successful=%t", uid, o.Kind, o.PaymentSuccessful)
	return o, nil
}

func (u *PaymentUseCase) Refund(ctx context.Context, req entities.RefundRequest) (entities.Outcome, error) {
	if u.provider == nil || !u.provider.Configured() {
		log.Printf("[refund][usecase] rejected: provider credentials missing")
		return entities.Outcome{}, ErrMissingCredentials
	}
	log.Printf("[refund][usecase] start uid=%s amount=%s", req.UID, req.Amount)

	res, err := u.provider.RefundRequest(ctx, req)
	o := NormalizeRefund(res, err)
	log.Printf("[refund][usecase] outcome uid=%s kind=%s provider_status=%d", req.UID, o.Kind, o.HTTPStatus)
	return o, nil
}

// TestPayment issues the canned sandbox payment and echoes the raw result.
func (u *PaymentUseCase) TestPayment(ctx context.Context) (entities.ProviderResult, error) {
	if u.provider == nil || !u.provider.Configured() {
		return entities.ProviderResult{}, ErrMissingCredentials
	}
	log.Printf("[payment][usecase] test payment start")
	return u.provider.PayRequest3D(ctx, testPaymentRequest)
}

// TestResult checks a caller-supplied uid, falling back to the canned order.
func (u *PaymentUseCase) TestResult(ctx context.Context, uid string) (entities.ProviderResult, error) {
	if u.provider == nil || !u.provider.Configured() {
		return entities.ProviderResult{}, ErrMissingCredentials
	}
	if uid == "" {
		return u.provider.PayResultCheck(ctx, "", testPaymentRequest.OrderID)
	}
	return u.provider.PayResultCheck(ctx, uid, "")
}
