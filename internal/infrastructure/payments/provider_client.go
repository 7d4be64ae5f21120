package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"payment-proxy/internal/config"
	"payment-proxy/internal/domain/entities"
	"payment-proxy/internal/usecase/interfaces"
)

const (
	endpointPayRequest3D   = "/payRequest3d"
	endpointPayComplete    = "/payComplete"
	endpointPayResultCheck = "/payResultCheck"
	endpointRefundRequest  = "/refundRequest"

	requestTimeout = 30 * time.Second
	maxRedirects   = 5
)

// ProviderClient talks to the payment provider's REST API. Non-2xx statuses
// are returned as data in the ProviderResult; a Go error means no usable
// response arrived (timeout, connection refused).
type ProviderClient struct {
	cfg config.Provider

	// payClient follows redirects (capped) for the initial payment call;
	// apiClient never follows for completion/lookup/refund calls.
	payClient *http.Client
	apiClient *http.Client
}

var _ interfaces.IPaymentProvider = (*ProviderClient)(nil)

func NewProviderClient(cfg config.Provider) *ProviderClient {
	return &ProviderClient{
		cfg: cfg,
		payClient: &http.Client{
			Timeout: requestTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return errors.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		apiClient: &http.Client{
			Timeout: requestTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (c *ProviderClient) Configured() bool {
	return c != nil && c.cfg.Complete()
}

func (c *ProviderClient) PayRequest3D(ctx context.Context, req entities.PaymentRequest) (entities.ProviderResult, error) {
	payload := buildPaymentPayload(req)
	return c.post(ctx, c.payClient, endpointPayRequest3D, payload, maskPaymentPayload(payload))
}

func (c *ProviderClient) PayComplete(ctx context.Context, uid, key string) (entities.ProviderResult, error) {
	payload := completePayload{UID: uid, Key: key}
	return c.post(ctx, c.apiClient, endpointPayComplete, payload, payload)
}

func (c *ProviderClient) PayResultCheck(ctx context.Context, uid, orderID string) (entities.ProviderResult, error) {
	payload := resultPayload{UID: uid, OrderID: orderID}
	return c.post(ctx, c.apiClient, endpointPayResultCheck, payload, payload)
}

func (c *ProviderClient) RefundRequest(ctx context.Context, req entities.RefundRequest) (entities.ProviderResult, error) {
	payload := refundPayload{UID: req.UID, Amount: req.Amount, Description: req.Description}
	return c.post(ctx, c.apiClient, endpointRefundRequest, payload, payload)
}

// post sends one provider call. loggable is the secret-redacted payload used
// for operational logs; the real payload never reaches a log line.
func (c *ProviderClient) post(ctx context.Context, client *http.Client, path string, payload, loggable any) (entities.ProviderResult, error) {
	callID := uuid.NewString()[:8]
	url := c.cfg.BaseURL + path

	body, err := json.Marshal(payload)
	if err != nil {
		return entities.ProviderResult{}, errors.Wrap(err, "marshal provider payload")
	}
	if masked, err := json.Marshal(loggable); err == nil {
		log.Printf("[provider][client] call=%s POST %s payload=%s", callID, url, masked)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return entities.ProviderResult{}, errors.Wrap(err, "build provider request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("MerchantId", c.cfg.MerchantID)
	req.Header.Set("UserId", c.cfg.UserID)
	req.Header.Set("ApiKey", c.cfg.APIKey)

	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[provider][client] call=%s no response err=%v", callID, err)
		return entities.ProviderResult{}, errors.Wrap(err, "provider call failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[provider][client] call=%s body read failed err=%v", callID, err)
		return entities.ProviderResult{}, errors.Wrap(err, "read provider response")
	}

	env, _ := entities.ParseEnvelope(raw)
	log.Printf("[provider][client] call=%s done status=%d body_len=%d parsed=%t", callID, resp.StatusCode, len(raw), env != nil)

	return entities.ProviderResult{StatusCode: resp.StatusCode, RawBody: raw, Envelope: env}, nil
}
