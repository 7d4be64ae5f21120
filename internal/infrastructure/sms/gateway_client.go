package sms

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
	"payment-proxy/internal/usecase/interfaces"
)

const (
	endpointSend   = "/sms/send"
	requestTimeout = 30 * time.Second
)

// GatewayClient forwards one-time-code messages to the SMS gateway.
type GatewayClient struct {
	cfg        config.SMS
	httpClient *http.Client
}

var _ interfaces.ISMSGateway = (*GatewayClient)(nil)

func NewGatewayClient(cfg config.SMS) *GatewayClient {
	return &GatewayClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

func (c *GatewayClient) Configured() bool {
	return c != nil && c.cfg.Complete()
}

type sendPayload struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Header   string   `json:"header,omitempty"`
	Message  string   `json:"message"`
	Numbers  []string `json:"numbers"`
}

type sendResponse struct {
	Status     string `json:"status"`
	CampaignID string `json:"campaignId"`
	Message    string `json:"message"`
}

// SendSMS delivers one message. The gateway's campaign id is returned when it
// provides one; otherwise a generated id keeps the response shape stable.
func (c *GatewayClient) SendSMS(ctx context.Context, phoneNumber, message string) (string, error) {
	payload := sendPayload{
		Username: c.cfg.Username,
		Password: c.cfg.Password,
		Header:   c.cfg.Header,
		Message:  message,
		Numbers:  []string{phoneNumber},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "marshal sms payload")
	}

	url := c.cfg.BaseURL + endpointSend
	// Credentials and message text stay out of the logs.
	log.Printf("[sms][client] POST %s numbers=1", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "build sms request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[sms][client] no response err=%v", err)
		return "", errors.Wrap(err, "sms gateway call failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read sms gateway response")
	}
	if resp.StatusCode >= 400 {
		log.Printf("[sms][client] gateway error status=%d body_len=%d", resp.StatusCode, len(raw))
		return "", errors.Errorf("sms gateway returned status %d", resp.StatusCode)
	}

	var parsed sendResponse
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.CampaignID != "" {
		log.Printf("[sms][client] sent campaign_id=%s", parsed.CampaignID)
		return parsed.CampaignID, nil
	}

	generated := uuid.NewString()
	log.Printf("[sms][client] sent without campaign id; generated=%s", generated)
	return generated, nil
}
