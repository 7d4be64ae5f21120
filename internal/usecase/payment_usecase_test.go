package usecase

import (
	"context"
	"errors"
	"net"
	"testing"

	"go.uber.org/mock/gomock"

	"payment-proxy/internal/domain/entities"
	"payment-proxy/internal/usecase/mocks"
)

func providerOK(body string) entities.ProviderResult {
	env, _ := entities.ParseEnvelope([]byte(body))
	return entities.ProviderResult{StatusCode: 200, RawBody: []byte(body), Envelope: env}
}

func TestPaymentUseCase_CreatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("unconfigured provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mocks.NewMockIPaymentProvider(ctrl)
		provider.EXPECT().Configured().Return(false)

		uc := NewPaymentUseCase(provider)
		_, err := uc.CreatePayment(ctx, entities.PaymentRequest{})
		if !errors.Is(err, ErrMissingCredentials) {
			t.Fatalf("expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("accepted payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mocks.NewMockIPaymentProvider(ctrl)
		provider.EXPECT().Configured().Return(true)

		req := entities.PaymentRequest{OrderID: "o-1", Amount: "10.50"}
		provider.EXPECT().PayRequest3D(ctx, req).Return(
			providerOK(`{"IsDone":true,"ErrorCode":0,"Content":{"Uid":"u-1","PaymentLink":"https://pay"}}`), nil)

		uc := NewPaymentUseCase(provider)
		o, err := uc.CreatePayment(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Kind != entities.OutcomeSuccess {
			t.Fatalf("expected success, got %s (%s)", o.Kind, o.Message)
		}
		if o.Created == nil || o.Created.UID != "u-1" || o.Created.PaymentLink != "https://pay" {
			t.Fatalf("unexpected created payment: %+v", o.Created)
		}
	})

	t.Run("transport timeout becomes outcome, not error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mocks.NewMockIPaymentProvider(ctrl)
		provider.EXPECT().Configured().Return(true)
		provider.EXPECT().PayRequest3D(ctx, gomock.Any()).Return(
			entities.ProviderResult{}, &net.OpError{Op: "dial", Err: errors.New("timeout")})

		uc := NewPaymentUseCase(provider)
		o, err := uc.CreatePayment(ctx, entities.PaymentRequest{})
		if err != nil {
			t.Fatalf("transport failures must be normalized: %v", err)
		}
		if o.Kind != entities.OutcomeTimeout {
			t.Fatalf("expected timeout outcome, got %s", o.Kind)
		}
	})
}

func TestPaymentUseCase_CheckResult(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	provider := mocks.NewMockIPaymentProvider(ctrl)
	provider.EXPECT().Configured().Return(true)
	provider.EXPECT().PayResultCheck(ctx, "u-1", "").Return(
		providerOK(`{"IsDone":true,"ErrorCode":0,"Content":{"Uid":"u-1","Status":4,"Amount":1050}}`), nil)

	uc := NewPaymentUseCase(provider)
	o, err := uc.CheckResult(ctx, "u-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !o.PaymentSuccessful {
		t.Fatalf("status 4 must mark the payment successful")
	}
	if o.PaymentData == nil || o.PaymentData.UID != "u-1" {
		t.Fatalf("unexpected payment data: %+v", o.PaymentData)
	}
}

func TestPaymentUseCase_Refund(t *testing.T) {
	ctx := context.Background()

	t.Run("refund success code is 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mocks.NewMockIPaymentProvider(ctrl)
		provider.EXPECT().Configured().Return(true)

		req := entities.RefundRequest{UID: "u-1", Amount: "2.50"}
		provider.EXPECT().RefundRequest(ctx, req).Return(
			providerOK(`{"IsDone":true,"ErrorCode":200,"Message":"Refunded"}`), nil)

		uc := NewPaymentUseCase(provider)
		o, err := uc.Refund(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Kind != entities.OutcomeSuccess {
			t.Fatalf("expected success, got %s (%s)", o.Kind, o.Message)
		}
	})

	t.Run("payment success code rejects a refund", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mocks.NewMockIPaymentProvider(ctrl)
		provider.EXPECT().Configured().Return(true)
		provider.EXPECT().RefundRequest(ctx, gomock.Any()).Return(
			providerOK(`{"IsDone":true,"ErrorCode":0,"Message":"done"}`), nil)

		uc := NewPaymentUseCase(provider)
		o, _ := uc.Refund(ctx, entities.RefundRequest{UID: "u-1", Amount: "2.50"})
		if o.Kind != entities.OutcomeProviderRejected {
			t.Fatalf("expected rejection, got %s", o.Kind)
		}
	})
}

func TestPaymentUseCase_CompletePayment(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	provider := mocks.NewMockIPaymentProvider(ctrl)
	provider.EXPECT().Configured().Return(true)
	provider.EXPECT().PayComplete(ctx, "u-1", "k-raw").Return(
		entities.ProviderResult{StatusCode: 418, RawBody: []byte("teapot")}, nil)

	uc := NewPaymentUseCase(provider)
	res, err := uc.CompletePayment(ctx, "u-1", "k-raw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StatusCode != 418 || string(res.RawBody) != "teapot" {
		t.Fatalf("complete must relay the provider response untouched: %+v", res)
	}
}

func TestPaymentUseCase_TestEndpoints(t *testing.T) {
	ctx := context.Background()

	t.Run("test payment uses the canned card", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mocks.NewMockIPaymentProvider(ctrl)
		provider.EXPECT().Configured().Return(true)
		provider.EXPECT().PayRequest3D(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.PaymentRequest) (entities.ProviderResult, error) {
				if req.OrderID != "proxy-test" || req.Amount != "1.00" {
					t.Fatalf("unexpected canned request: %+v", req)
				}
				return providerOK(`{"IsDone":true,"ErrorCode":0}`), nil
			})

		uc := NewPaymentUseCase(provider)
		if _, err := uc.TestPayment(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("test result falls back to the canned order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mocks.NewMockIPaymentProvider(ctrl)
		provider.EXPECT().Configured().Return(true)
		provider.EXPECT().PayResultCheck(ctx, "", "proxy-test").Return(
			providerOK(`{"IsDone":true,"ErrorCode":0}`), nil)

		uc := NewPaymentUseCase(provider)
		if _, err := uc.TestResult(ctx, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
