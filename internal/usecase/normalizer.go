package usecase

import (
	"encoding/json"
	"strings"

	"payment-proxy/internal/domain/entities"
)

// The normalizer turns the provider's inconsistent success/error envelope
// into exactly one Outcome per call. Stateless, single pass, no retries:
// a transport failure surfaces immediately as its own Outcome and retrying
// is the caller's decision.

// normalizeCall applies the steps shared by every route: transport error,
// provider HTTP error, envelope parse, then the per-endpoint success
// predicate (0 for payment/result calls, 200 for refunds; the provider's
// inconsistency is deliberate and preserved).
func normalizeCall(res entities.ProviderResult, callErr error, successCode int) entities.Outcome {
	if callErr != nil {
		return entities.Outcome{
			Kind:    entities.OutcomeTimeout,
			Message: "no response received from payment provider",
		}
	}
	if res.StatusCode >= 400 {
		return entities.Outcome{
			Kind:       entities.OutcomeProviderError,
			HTTPStatus: res.StatusCode,
			Message:    extractMessage(res.RawBody),
			RawBody:    res.RawBody,
		}
	}
	if res.Envelope == nil {
		return entities.Outcome{
			Kind:       entities.OutcomeMalformedResponse,
			HTTPStatus: res.StatusCode,
			Message:    "provider returned an unparseable response",
			RawBody:    res.RawBody,
		}
	}
	if !res.Envelope.IsDone || res.Envelope.ErrorCode != successCode {
		return entities.Outcome{
			Kind:       entities.OutcomeProviderRejected,
			HTTPStatus: res.StatusCode,
			Message:    res.Envelope.Message,
			RawBody:    res.RawBody,
			Envelope:   res.Envelope,
		}
	}
	return entities.Outcome{
		Kind:       entities.OutcomeSuccess,
		HTTPStatus: res.StatusCode,
		Message:    res.Envelope.Message,
		RawBody:    res.RawBody,
		Envelope:   res.Envelope,
	}
}

// NormalizeCreate classifies a payment-creation response. A success envelope
// without a usable Content (PaymentLink or ResponseAsHtml) is malformed even
// though the provider reported success; acting on it downstream would strand
// the payer without a challenge page.
func NormalizeCreate(res entities.ProviderResult, callErr error) entities.Outcome {
	o := normalizeCall(res, callErr, entities.SuccessCodePayment)
	if o.Kind != entities.OutcomeSuccess {
		return o
	}
	c := o.Envelope.Content
	if c == nil || (c.PaymentLink == "" && c.ResponseAsHTML == "") {
		return entities.Outcome{
			Kind:       entities.OutcomeMalformedResponse,
			HTTPStatus: res.StatusCode,
			Message:    "provider reported success without payment content",
			RawBody:    res.RawBody,
			Envelope:   o.Envelope,
		}
	}
	o.Created = &entities.PaymentCreated{
		UID:            c.UID,
		PaymentLink:    c.PaymentLink,
		ResponseAsHTML: c.ResponseAsHTML,
	}
	return o
}

// NormalizeResult classifies a result-check response and, on success, derives
// paymentSuccessful from the provider's completed status code and flattens
// the payment data projection.
func NormalizeResult(res entities.ProviderResult, callErr error) entities.Outcome {
	o := normalizeCall(res, callErr, entities.SuccessCodePayment)
	if o.Kind != entities.OutcomeSuccess {
		return o
	}
	c := o.Envelope.Content
	if c == nil {
		return o
	}
	o.PaymentSuccessful = c.Status != nil && *c.Status == entities.ProviderStatusCompleted
	o.PaymentData = &entities.PaymentData{
		UID:             c.UID,
		OrderID:         c.OrderID,
		Status:          c.Status,
		AuthCode:        c.AuthCode,
		Amount:          c.Amount,
		NetAmount:       c.NetAmount,
		WithdrawnAmount: c.WithdrawnAmount,
		FmCostAmount:    c.FmCostAmount,
		CreationTime:    c.CreationTime,
		ValorDate:       c.ValorDate,
		Installment:     c.Installment,
		CardInfo:        c.CardInfo,
		CustomerInfo:    c.CustomerInfo,
	}
	return o
}

// NormalizeRefund classifies a refund response with the refund success code.
func NormalizeRefund(res entities.ProviderResult, callErr error) entities.Outcome {
	return normalizeCall(res, callErr, entities.SuccessCodeRefund)
}

// extractMessage pulls a human-readable message out of an error body by
// trying a small ordered list of known shapes, falling back to the raw text.
func extractMessage(body []byte) string {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(body, &m); err == nil {
		for _, key := range []string{"Message", "message", "Error", "error"} {
			raw, ok := m[key]
			if !ok {
				continue
			}
			var s string
			if err := json.Unmarshal(raw, &s); err == nil && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	if s := strings.TrimSpace(string(body)); s != "" {
		return s
	}
	return "payment provider returned an error"
}
