package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"payment-proxy/internal/adapter/http/handlers/mocks"
	"payment-proxy/internal/adapter/http/middleware"
	"payment-proxy/internal/domain/entities"
	"payment-proxy/internal/usecase"
)

const validPaymentBody = `{
	"returnUrl": "https://shop.example/return",
	"orderId": "order-1",
	"clientIp": "203.0.113.7",
	"installment": 1,
	"amount": 1050,
	"is3D": true,
	"isAutoCommit": true,
	"card": {
		"owner": "john doe",
		"number": "4111111111111111",
		"expiryMonth": "09",
		"expiryYear": "28",
		"cvv": "123"
	}
}`

func newPaymentRouter(h *PaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/api/pay-request", h.PayRequest)
	r.POST("/api/pay-complete", h.PayComplete)
	r.POST("/api/pay-result", h.PayResult)
	r.POST("/api/refund-request", h.Refund)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPaymentHandler_PayRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newPaymentRouter(h)

		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.Outcome{
			Kind:    entities.OutcomeSuccess,
			Created: &entities.PaymentCreated{UID: "abc", PaymentLink: "https://pay"},
		}, nil)

		w := postJSON(r, "/api/pay-request", validPaymentBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true || body["uid"] != "abc" || body["paymentLink"] != "https://pay" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("validation error names field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newPaymentRouter(h)

		var payload map[string]any
		_ = json.Unmarshal([]byte(validPaymentBody), &payload)
		delete(payload["card"].(map[string]any), "cvv")
		b, _ := json.Marshal(payload)

		w := postJSON(r, "/api/pay-request", string(b))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != "card.cvv must be exactly 3 digits" {
			t.Fatalf("validation message must name the field: %s", w.Body.String())
		}
	})

	t.Run("missing credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newPaymentRouter(h)

		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.Outcome{}, usecase.ErrMissingCredentials)

		w := postJSON(r, "/api/pay-request", validPaymentBody)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("provider rejected passes message through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newPaymentRouter(h)

		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.Outcome{
			Kind:    entities.OutcomeProviderRejected,
			Message: "Insufficient funds",
			RawBody: []byte(`{"IsDone":false,"ErrorCode":77,"Message":"Insufficient funds"}`),
		}, nil)

		w := postJSON(r, "/api/pay-request", validPaymentBody)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != "Insufficient funds" {
			t.Fatalf("provider message must pass through: %s", w.Body.String())
		}
	})

	t.Run("provider http error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newPaymentRouter(h)

		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.Outcome{
			Kind:       entities.OutcomeProviderError,
			HTTPStatus: 500,
			Message:    "backend down",
		}, nil)

		w := postJSON(r, "/api/pay-request", validPaymentBody)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("4111111111111111")) {
			t.Fatalf("debug echo must never contain the raw card number")
		}
	})

	t.Run("timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newPaymentRouter(h)

		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.Outcome{
			Kind:    entities.OutcomeTimeout,
			Message: "no response received from payment provider",
		}, nil)

		w := postJSON(r, "/api/pay-request", validPaymentBody)
		if w.Code != http.StatusGatewayTimeout {
			t.Fatalf("expected 504, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_APIKeyGuard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)

	r := gin.New()
	api := r.Group("/api", middleware.APIKeyAuth("secret-1"))
	api.POST("/pay-request", h.PayRequest)

	// Valid body, missing key: 401 before any validation or provider call.
	w := postJSON(r, "/api/pay-request", validPaymentBody)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestPaymentHandler_PayResult(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("payment successful on status 4", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newPaymentRouter(h)

		status := 4
		uc.EXPECT().CheckResult(gomock.Any(), "u1", "").Return(entities.Outcome{
			Kind:              entities.OutcomeSuccess,
			PaymentSuccessful: true,
			PaymentData:       &entities.PaymentData{UID: "u1", Status: &status},
			RawBody:           []byte(`{"IsDone":true,"ErrorCode":0,"Content":{"Status":4,"Uid":"u1"}}`),
		}, nil)

		w := postJSON(r, "/api/pay-result", `{"uid":"u1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true || body["paymentSuccessful"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		data := body["paymentData"].(map[string]any)
		if data["uid"] != "u1" || data["status"] != float64(4) {
			t.Fatalf("unexpected payment data: %s", w.Body.String())
		}
	})

	t.Run("rejected still 200 with flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newPaymentRouter(h)

		uc.EXPECT().CheckResult(gomock.Any(), "u1", "").Return(entities.Outcome{
			Kind:    entities.OutcomeProviderRejected,
			Message: "Payment not found",
		}, nil)

		w := postJSON(r, "/api/pay-result", `{"uid":"u1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != false {
			t.Fatalf("expected success:false, got %s", w.Body.String())
		}
	})

	t.Run("provider http error is 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newPaymentRouter(h)

		uc.EXPECT().CheckResult(gomock.Any(), "u1", "").Return(entities.Outcome{
			Kind:       entities.OutcomeProviderError,
			HTTPStatus: 500,
			Message:    "backend down",
		}, nil)

		w := postJSON(r, "/api/pay-result", `{"uid":"u1"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("malformed body is 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newPaymentRouter(h)

		uc.EXPECT().CheckResult(gomock.Any(), "u1", "").Return(entities.Outcome{
			Kind:    entities.OutcomeMalformedResponse,
			RawBody: []byte("<html/>"),
		}, nil)

		w := postJSON(r, "/api/pay-result", `{"uid":"u1"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("missing selector", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newPaymentRouter(h)

		w := postJSON(r, "/api/pay-result", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_PayComplete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passthrough of provider status and body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newPaymentRouter(h)

		uc.EXPECT().CompletePayment(gomock.Any(), "u1", "k1").Return(entities.ProviderResult{
			StatusCode: 207,
			RawBody:    []byte(`{"IsDone":true,"ErrorCode":0}`),
		}, nil)

		w := postJSON(r, "/api/pay-complete", `{"uid":"u1","key":"k1"}`)
		if w.Code != 207 {
			t.Fatalf("expected passthrough 207, got %d", w.Code)
		}
		if w.Body.String() != `{"IsDone":true,"ErrorCode":0}` {
			t.Fatalf("body must pass through untouched: %s", w.Body.String())
		}
	})

	t.Run("missing key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newPaymentRouter(h)

		w := postJSON(r, "/api/pay-complete", `{"uid":"u1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newPaymentRouter(h)

		uc.EXPECT().CompletePayment(gomock.Any(), "u1", "k1").Return(entities.ProviderResult{}, usecase.ErrMissingCredentials)

		w := postJSON(r, "/api/pay-complete", `{"uid":"u1","key":"k1"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newPaymentRouter(h)

		uc.EXPECT().CompletePayment(gomock.Any(), "u1", "k1").Return(entities.ProviderResult{}, errTransport)

		w := postJSON(r, "/api/pay-complete", `{"uid":"u1","key":"k1"}`)
		if w.Code != http.StatusGatewayTimeout {
			t.Fatalf("expected 504, got %d", w.Code)
		}
	})
}

var errTransport = errors.New("connection reset")

func TestPaymentHandler_Refund(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newPaymentRouter(h)

		env, _ := entities.ParseEnvelope([]byte(`{"IsDone":true,"ErrorCode":200,"Message":"Refunded","Content":{"Uid":"u-9"}}`))
		uc.EXPECT().Refund(gomock.Any(), gomock.Any()).Return(entities.Outcome{
			Kind:     entities.OutcomeSuccess,
			Message:  "Refunded",
			Envelope: env,
		}, nil)

		w := postJSON(r, "/api/refund-request", `{"uid":"u-9","amount":250}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true || body["message"] != "Refunded" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("provider rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newPaymentRouter(h)

		env, _ := entities.ParseEnvelope([]byte(`{"IsDone":true,"ErrorCode":0,"Message":"Already refunded"}`))
		uc.EXPECT().Refund(gomock.Any(), gomock.Any()).Return(entities.Outcome{
			Kind:     entities.OutcomeProviderRejected,
			Message:  "Already refunded",
			Envelope: env,
		}, nil)

		w := postJSON(r, "/api/refund-request", `{"uid":"u-9","amount":250}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["errorCode"] != float64(0) || body["error"] != "Already refunded" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("provider http error passes status through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newPaymentRouter(h)

		uc.EXPECT().Refund(gomock.Any(), gomock.Any()).Return(entities.Outcome{
			Kind:       entities.OutcomeProviderError,
			HTTPStatus: 503,
			Message:    "unavailable",
		}, nil)

		w := postJSON(r, "/api/refund-request", `{"uid":"u-9","amount":250}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected passthrough 503, got %d", w.Code)
		}
	})

	t.Run("validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newPaymentRouter(h)

		w := postJSON(r, "/api/refund-request", `{"amount":250}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
