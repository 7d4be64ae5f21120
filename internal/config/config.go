package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Provider holds the payment-service-provider credentials and endpoint.
type Provider struct {
	BaseURL    string `mapstructure:"PAYMENT_PROVIDER_BASE_URL"`
	MerchantID string `mapstructure:"PAYMENT_MERCHANT_ID"`
	UserID     string `mapstructure:"PAYMENT_USER_ID"`
	APIKey     string `mapstructure:"PAYMENT_API_KEY"`
}

// Complete reports whether every credential needed for a provider call is set.
func (p Provider) Complete() bool {
	return p.BaseURL != "" && p.MerchantID != "" && p.UserID != "" && p.APIKey != ""
}

// SMS holds the SMS gateway endpoint and credentials for the OTP proxy.
type SMS struct {
	BaseURL  string `mapstructure:"SMS_GATEWAY_BASE_URL"`
	Username string `mapstructure:"SMS_GATEWAY_USERNAME"`
	Password string `mapstructure:"SMS_GATEWAY_PASSWORD"`
	Header   string `mapstructure:"SMS_GATEWAY_HEADER"`
}

func (s SMS) Complete() bool {
	return s.BaseURL != "" && s.Username != "" && s.Password != ""
}

// Server holds the inbound HTTP surface configuration.
type Server struct {
	Port            string `mapstructure:"PORT"`
	APISecretKey    string `mapstructure:"API_SECRET_KEY"`
	AllowedOrigins  string `mapstructure:"ALLOWED_ORIGINS"`
	RateLimitWindow int    `mapstructure:"RATE_LIMIT_WINDOW_SECONDS"`
	RateLimitMax    int64  `mapstructure:"RATE_LIMIT_MAX"`
}

// Origins splits the comma-separated ALLOWED_ORIGINS value.
func (s Server) Origins() []string {
	if strings.TrimSpace(s.AllowedOrigins) == "" {
		return nil
	}
	parts := strings.Split(s.AllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// RateLimitPeriod returns the fixed rate-limit window as a duration.
func (s Server) RateLimitPeriod() time.Duration {
	return time.Duration(s.RateLimitWindow) * time.Second
}

// Edge holds the edge-proxy forwarding configuration.
type Edge struct {
	Port        string `mapstructure:"EDGE_PORT"`
	UpstreamURL string `mapstructure:"PROXY_UPSTREAM_URL"`
	ProxyAPIKey string `mapstructure:"PROXY_API_KEY"`
}

func (e Edge) Complete() bool {
	return e.UpstreamURL != "" && e.ProxyAPIKey != ""
}

// Config is the immutable process configuration, constructed once at startup
// and injected into handlers. No business logic reads the environment.
type Config struct {
	Provider Provider
	SMS      SMS
	Server   Server
	Edge     Edge
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3001")
	v.SetDefault("EDGE_PORT", "3002")
	v.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)
	v.SetDefault("RATE_LIMIT_MAX", 30)

	// AutomaticEnv alone does not surface env vars through Unmarshal; bind the
	// known keys explicitly.
	for _, key := range []string{
		"PAYMENT_PROVIDER_BASE_URL", "PAYMENT_MERCHANT_ID", "PAYMENT_USER_ID", "PAYMENT_API_KEY",
		"SMS_GATEWAY_BASE_URL", "SMS_GATEWAY_USERNAME", "SMS_GATEWAY_PASSWORD", "SMS_GATEWAY_HEADER",
		"PORT", "API_SECRET_KEY", "ALLOWED_ORIGINS", "RATE_LIMIT_WINDOW_SECONDS", "RATE_LIMIT_MAX",
		"EDGE_PORT", "PROXY_UPSTREAM_URL", "PROXY_API_KEY",
	} {
		_ = v.BindEnv(key)
	}

	cfg := &Config{}
	if err := v.Unmarshal(&cfg.Provider); err != nil {
		return nil, err
	}
	if err := v.Unmarshal(&cfg.SMS); err != nil {
		return nil, err
	}
	if err := v.Unmarshal(&cfg.Server); err != nil {
		return nil, err
	}
	if err := v.Unmarshal(&cfg.Edge); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad loads the configuration and logs (but does not fail on) incomplete
// provider credentials; routes answer 500 for calls that need them. A missing
// inbound API secret is fatal: without it every caller would be rejected.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("[config] failed to load configuration: %v", err)
	}
	if cfg.Server.APISecretKey == "" {
		log.Fatalf("[config] API_SECRET_KEY is not set")
	}
	if !cfg.Provider.Complete() {
		log.Printf("[config] payment provider credentials incomplete; payment routes will answer 500")
	}
	if !cfg.SMS.Complete() {
		log.Printf("[config] sms gateway credentials incomplete; otp route will answer 500")
	}
	return cfg
}

// MustLoadEdge loads the configuration for the edge proxy. The edge forwards
// blindly, so only the upstream address and key matter; missing values are
// logged and surface as 500s on the relay routes.
func MustLoadEdge() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("[config] failed to load configuration: %v", err)
	}
	if !cfg.Edge.Complete() {
		log.Printf("[config] edge upstream configuration incomplete; relay routes will answer 500")
	}
	return cfg
}
