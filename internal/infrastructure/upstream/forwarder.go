package upstream

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/pkg/errors"

	"payment-proxy/internal/config"
)

const requestTimeout = 30 * time.Second

// panPattern matches card-number-length digit runs in a JSON body.
var panPattern = regexp.MustCompile(`\d{13,19}`)

// Forwarder relays edge requests to the core proxy, attaching the proxy API
// key. Bodies are relayed verbatim; logs only ever see the masked form.
type Forwarder struct {
	cfg        config.Edge
	httpClient *http.Client
}

func NewForwarder(cfg config.Edge) *Forwarder {
	return &Forwarder{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

func (f *Forwarder) Configured() bool {
	return f != nil && f.cfg.Complete()
}

// ForwardResult is the upstream's answer, relayed unchanged to the caller.
type ForwardResult struct {
	StatusCode  int
	Body        []byte
	ContentType string
}

func (f *Forwarder) Forward(ctx context.Context, path string, body []byte) (ForwardResult, error) {
	url := f.cfg.UpstreamURL + path
	log.Printf("[edge][forwarder] POST %s body=%s", url, MaskBody(body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return ForwardResult{}, errors.Wrap(err, "build upstream request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", f.cfg.ProxyAPIKey)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		log.Printf("[edge][forwarder] no response err=%v", err)
		return ForwardResult{}, errors.Wrap(err, "upstream call failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return ForwardResult{}, errors.Wrap(err, "read upstream response")
	}
	log.Printf("[edge][forwarder] done status=%d body_len=%d", resp.StatusCode, len(respBody))

	return ForwardResult{
		StatusCode:  resp.StatusCode,
		Body:        respBody,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

// MaskBody blanks card-number-length digit runs, keeping the last four.
func MaskBody(body []byte) []byte {
	return panPattern.ReplaceAllFunc(body, func(m []byte) []byte {
		masked := bytes.Repeat([]byte("*"), len(m)-4)
		return append(masked, m[len(m)-4:]...)
	})
}
