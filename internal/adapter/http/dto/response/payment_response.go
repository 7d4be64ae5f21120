package response

import (
	"encoding/json"

	"payment-proxy/internal/domain/entities"
)

// PaymentCreatedResponse is the success body of the pay-request route.
type PaymentCreatedResponse struct {
	Success      bool   `json:"success"`
	UID          string `json:"uid,omitempty"`
	PaymentLink  string `json:"paymentLink,omitempty"`
	ResponseHTML string `json:"responseHtml,omitempty"`
}

func FromPaymentCreated(c entities.PaymentCreated) PaymentCreatedResponse {
	return PaymentCreatedResponse{
		Success:      true,
		UID:          c.UID,
		PaymentLink:  c.PaymentLink,
		ResponseHTML: c.ResponseAsHTML,
	}
}

// ResultResponse is the body of the pay-result route (HTTP 200 regardless of
// the payment's own disposition; the flag carries it).
type ResultResponse struct {
	Success           bool                  `json:"success"`
	PaymentSuccessful bool                  `json:"paymentSuccessful"`
	PaymentData       *entities.PaymentData `json:"paymentData,omitempty"`
	Message           string                `json:"message,omitempty"`
	RawResponse       json.RawMessage       `json:"rawResponse,omitempty"`
}

func FromResultOutcome(o entities.Outcome) ResultResponse {
	return ResultResponse{
		Success:           o.Kind == entities.OutcomeSuccess,
		PaymentSuccessful: o.PaymentSuccessful,
		PaymentData:       o.PaymentData,
		Message:           o.Message,
		RawResponse:       o.RawBody,
	}
}

// RefundResponse is the success body of the refund route.
type RefundResponse struct {
	Success bool                      `json:"success"`
	Message string                    `json:"message,omitempty"`
	Data    *entities.ProviderContent `json:"data,omitempty"`
}

// RefundRejectedResponse passes the provider's refusal through to the caller.
type RefundRejectedResponse struct {
	Success   bool              `json:"success"`
	Error     string            `json:"error,omitempty"`
	ErrorCode int               `json:"errorCode"`
	Errors    []json.RawMessage `json:"errors,omitempty"`
}

// ErrorResponse is the generic failure body. Debug never contains unmasked
// card data; callers populate it from the redacted payload only.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
	Debug   any    `json:"debug,omitempty"`
}

func NewError(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}

// Raw wraps a provider body for embedding: passed through as JSON when valid,
// as a string otherwise.
func Raw(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}

// OTPResponse is the body of the send-otp route.
type OTPResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	OTP        string `json:"otp,omitempty"`
	CampaignID string `json:"campaignId,omitempty"`
}

// HealthResponse is the body of the health route.
type HealthResponse struct {
	Status string `json:"status"`
}
