package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// GatewayVariant selects the single PIX gateway integration of a deployment.
type GatewayVariant string

const (
	GatewayMarchabb    GatewayVariant = "marchabb"
	GatewayBlackCat    GatewayVariant = "blackcat"
	GatewayMercadoPago GatewayVariant = "mercadopago"
	GatewayMock        GatewayVariant = "mock"
)

const (
	DefaultMarchabbBaseURL = "https://api.marchabb.com/v1"
	DefaultBlackCatBaseURL = "https://api.blackcatpagamentos.online/api"
	DefaultTitle           = "Taxa de Adesão"
	DefaultCustomerEmail   = "cliente@cnhpopularbrasil.site"
	DefaultCustomerPhone   = "11999999999"
)

type Config struct {
	Server        ServerConfig
	Gateway       GatewayConfig
	Charge        ChargeDefaults
	RateLimit     RateLimitConfig
	Observability ObservabilityConfig
}

type ServerConfig struct {
	Port int
}

// GatewayConfig holds the credentials of every variant; only the fields of
// the selected Variant are validated.
type GatewayConfig struct {
	Variant          GatewayVariant
	MarchabbBaseURL  string
	MarchabbPublic   string
	MarchabbSecret   string
	BlackCatBaseURL  string
	BlackCatAPIKey   string
	MPAccessToken    string
	Dialect          string
	Timeout          time.Duration
	PixExpiresIn     int
	PixExpiresInDays int
}

// ChargeDefaults are the fallbacks applied when the frontend omits a field.
type ChargeDefaults struct {
	FixedAmount string
	FixedTitle  string
	Email       string
	Phone       string
}

type RateLimitConfig struct {
	RedisURL string
	Requests int
	Window   time.Duration
}

type ObservabilityConfig struct {
	Enabled     bool
	ServiceName string
}

// MissingKeysError names the environment variables a variant needs.
type MissingKeysError struct {
	Variant GatewayVariant
	Keys    []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("%s gateway not configured: missing %s", e.Variant, strings.Join(e.Keys, ", "))
}

// Load reads the process environment once.
func Load() Config {
	cfg := Config{
		Server: ServerConfig{Port: getenvInt("PORT", 8080)},
		Gateway: GatewayConfig{
			MarchabbBaseURL:  getenvDefault("MARCHABB_BASE_URL", DefaultMarchabbBaseURL),
			MarchabbPublic:   strings.TrimSpace(os.Getenv("MARCHABB_PUBLIC_KEY")),
			MarchabbSecret:   strings.TrimSpace(os.Getenv("MARCHABB_SECRET_KEY")),
			BlackCatBaseURL:  getenvDefault("BLACKCAT_BASE_URL", DefaultBlackCatBaseURL),
			BlackCatAPIKey:   strings.TrimSpace(os.Getenv("BLACKCAT_SK")),
			MPAccessToken:    strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
			Dialect:          strings.TrimSpace(os.Getenv("PIX_RESPONSE_DIALECT")),
			Timeout:          getenvDuration("GATEWAY_TIMEOUT", 0),
			PixExpiresIn:     getenvInt("PIX_EXPIRES_IN_SECONDS", 3600),
			PixExpiresInDays: getenvInt("PIX_EXPIRES_IN_DAYS", 1),
		},
		Charge: ChargeDefaults{
			FixedAmount: strings.TrimSpace(os.Getenv("FIXED_AMOUNT")),
			FixedTitle:  getenvDefault("FIXED_TITLE", DefaultTitle),
			Email:       getenvDefault("DEFAULT_CUSTOMER_EMAIL", DefaultCustomerEmail),
			Phone:       getenvDefault("DEFAULT_CUSTOMER_PHONE", DefaultCustomerPhone),
		},
		RateLimit: RateLimitConfig{
			RedisURL: strings.TrimSpace(os.Getenv("REDIS_URL")),
			Requests: getenvInt("RATE_LIMIT_REQUESTS", 60),
			Window:   getenvDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		Observability: ObservabilityConfig{
			Enabled:     isTruthy(os.Getenv("OTEL_ENABLED")),
			ServiceName: getenvDefault("OTEL_SERVICE_NAME", "pix-checkout"),
		},
	}
	cfg.Gateway.Variant = resolveVariant(cfg.Gateway)
	log.Printf("[config] loaded gateway=%s dialect=%q port=%d rate_limit=%t otel=%t",
		cfg.Gateway.Variant, cfg.Gateway.Dialect, cfg.Server.Port, cfg.RateLimit.RedisURL != "", cfg.Observability.Enabled)
	return cfg
}

// Validate reports the keys the selected variant is missing.
func (g GatewayConfig) Validate() error {
	var missing []string
	switch g.Variant {
	case GatewayMarchabb:
		if g.MarchabbPublic == "" {
			missing = append(missing, "MARCHABB_PUBLIC_KEY")
		}
		if g.MarchabbSecret == "" {
			missing = append(missing, "MARCHABB_SECRET_KEY")
		}
	case GatewayBlackCat:
		if g.BlackCatAPIKey == "" {
			missing = append(missing, "BLACKCAT_SK")
		}
	case GatewayMercadoPago:
		if g.MPAccessToken == "" {
			missing = append(missing, "MERCADOPAGO_ACCESS_TOKEN")
		}
	case GatewayMock:
	case "":
		missing = append(missing, "PAYMENT_GATEWAY")
	default:
		return fmt.Errorf("unknown payment gateway %q", g.Variant)
	}
	if len(missing) > 0 {
		return &MissingKeysError{Variant: g.Variant, Keys: missing}
	}
	return nil
}

// resolveVariant honours the mock toggles, then PAYMENT_GATEWAY, then infers
// the variant from whichever credentials are present.
func resolveVariant(g GatewayConfig) GatewayVariant {
	if isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")) {
		return GatewayMock
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY"))); v != "" {
		return GatewayVariant(v)
	}
	switch {
	case g.MarchabbPublic != "" || g.MarchabbSecret != "":
		return GatewayMarchabb
	case g.BlackCatAPIKey != "":
		return GatewayBlackCat
	case g.MPAccessToken != "":
		return GatewayMercadoPago
	}
	return ""
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}
