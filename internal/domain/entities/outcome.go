package entities

import "encoding/json"

// OutcomeKind classifies the disposition of one provider call.
type OutcomeKind string

const (
	OutcomeSuccess           OutcomeKind = "success"
	OutcomeProviderRejected  OutcomeKind = "provider_rejected"
	OutcomeProviderError     OutcomeKind = "provider_error"
	OutcomeTimeout           OutcomeKind = "timeout"
	OutcomeMalformedResponse OutcomeKind = "malformed_response"
)

// PaymentCreated is the Success payload of the payment-creation route.
type PaymentCreated struct {
	UID            string
	PaymentLink    string
	ResponseAsHTML string
}

// PaymentData is the flattened projection returned by the result-check route.
type PaymentData struct {
	UID             string          `json:"uid"`
	OrderID         string          `json:"orderId"`
	Status          *int            `json:"status"`
	AuthCode        string          `json:"authCode,omitempty"`
	Amount          json.Number     `json:"amount,omitempty"`
	NetAmount       json.Number     `json:"netAmount,omitempty"`
	WithdrawnAmount json.Number     `json:"withdrawnAmount,omitempty"`
	FmCostAmount    json.Number     `json:"fmCostAmount,omitempty"`
	CreationTime    string          `json:"creationTime,omitempty"`
	ValorDate       string          `json:"valorDate,omitempty"`
	Installment     *int            `json:"installment,omitempty"`
	CardInfo        json.RawMessage `json:"cardInfo,omitempty"`
	CustomerInfo    json.RawMessage `json:"customerInfo,omitempty"`
}

// Outcome is the normalizer's single-pass classification of a provider call.
// Created per request and consumed immediately by the handler; never stored.
type Outcome struct {
	Kind OutcomeKind

	// Provider HTTP status, when a response was received.
	HTTPStatus int

	// Best-effort human-readable message (provider passthrough when present).
	Message string

	// Raw response body as received, for diagnostic echo-back.
	RawBody json.RawMessage

	// Parsed envelope, when the body matched the known shape.
	Envelope *ProviderEnvelope

	// Route-specific projections, populated on success only.
	Created           *PaymentCreated
	PaymentData       *PaymentData
	PaymentSuccessful bool
}
