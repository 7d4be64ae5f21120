package entities

import "encoding/json"

// Provider status code meaning "payment completed" on result-check responses.
const ProviderStatusCompleted = 4

// Per-endpoint success codes. The provider genuinely uses 0 for payment and
// result-check calls but 200 for refunds; both are preserved, never unified.
const (
	SuccessCodePayment = 0
	SuccessCodeRefund  = 200
)

// ProviderContent is the inner payload of a successful provider envelope.
type ProviderContent struct {
	UID             string          `json:"Uid"`
	OrderID         string          `json:"OrderId"`
	PaymentLink     string          `json:"PaymentLink"`
	ResponseAsHTML  string          `json:"ResponseAsHtml"`
	Status          *int            `json:"Status"`
	AuthCode        string          `json:"AuthCode"`
	Amount          json.Number     `json:"Amount"`
	NetAmount       json.Number     `json:"NetAmount"`
	WithdrawnAmount json.Number     `json:"WithdrawnAmount"`
	FmCostAmount    json.Number     `json:"FmCostAmount"`
	CreationTime    string          `json:"CreationTime"`
	ValorDate       string          `json:"ValorDate"`
	Installment     *int            `json:"Installment"`
	CardInfo        json.RawMessage `json:"CardInfo"`
	CustomerInfo    json.RawMessage `json:"CustomerInfo"`
}

// ProviderEnvelope is the provider's standard response wrapper.
type ProviderEnvelope struct {
	IsDone    bool              `json:"IsDone"`
	ErrorCode int               `json:"ErrorCode"`
	Message   string            `json:"Message"`
	Errors    []json.RawMessage `json:"Errors"`
	Content   *ProviderContent  `json:"Content"`
}

// ProviderResult carries one provider call's transport-level outcome.
// A non-2xx status is data here, never a Go error; Envelope is nil when the
// body did not parse as the known envelope shape.
type ProviderResult struct {
	StatusCode int
	RawBody    []byte
	Envelope   *ProviderEnvelope
}

// ParseEnvelope attempts the known envelope shape against a raw body.
func ParseEnvelope(body []byte) (*ProviderEnvelope, bool) {
	if len(body) == 0 || !json.Valid(body) {
		return nil, false
	}
	var env ProviderEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, false
	}
	return &env, true
}
