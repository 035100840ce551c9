package payments

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pix_checkout/internal/config"
	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/domain/normalizer"
	"pix_checkout/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// HTTPGateway talks JSON over HTTP to a PIX provider. The two REST providers
// differ only in authentication, endpoint paths and response dialect.
type HTTPGateway struct {
	name       string
	baseURL    string
	createPath string
	authMode   string
	dialect    normalizer.Dialect
	candidates func(baseURL, id string) []string
	client     *resty.Client
}

var _ interfaces.IPaymentGateway = (*HTTPGateway)(nil)

// NewMarchabbGateway authenticates with HTTP Basic built from the public and
// secret keys.
func NewMarchabbGateway(cfg config.GatewayConfig) (*HTTPGateway, error) {
	var missing []string
	if cfg.MarchabbPublic == "" {
		missing = append(missing, "MARCHABB_PUBLIC_KEY")
	}
	if cfg.MarchabbSecret == "" {
		missing = append(missing, "MARCHABB_SECRET_KEY")
	}
	if len(missing) > 0 {
		log.Printf("[payment][gateway] marchabb keys missing keys=%v", missing)
		return nil, &config.MissingKeysError{Variant: config.GatewayMarchabb, Keys: missing}
	}

	client := newRestyClient(cfg.Timeout).SetBasicAuth(cfg.MarchabbPublic, cfg.MarchabbSecret)
	log.Printf("[payment][gateway] marchabb client initialized base_url=%s", cfg.MarchabbBaseURL)
	return &HTTPGateway{
		name:       string(config.GatewayMarchabb),
		baseURL:    trimBase(cfg.MarchabbBaseURL),
		createPath: "/transactions",
		authMode:   "basic",
		dialect:    normalizer.TopLevel,
		candidates: marchabbStatusCandidates,
		client:     client,
	}, nil
}

// NewBlackCatGateway authenticates with a static X-API-Key header.
func NewBlackCatGateway(cfg config.GatewayConfig) (*HTTPGateway, error) {
	if cfg.BlackCatAPIKey == "" {
		log.Printf("[payment][gateway] blackcat key missing")
		return nil, &config.MissingKeysError{Variant: config.GatewayBlackCat, Keys: []string{"BLACKCAT_SK"}}
	}

	client := newRestyClient(cfg.Timeout).SetHeader("X-API-Key", cfg.BlackCatAPIKey)
	log.Printf("[payment][gateway] blackcat client initialized base_url=%s", cfg.BlackCatBaseURL)
	return &HTTPGateway{
		name:       string(config.GatewayBlackCat),
		baseURL:    trimBase(cfg.BlackCatBaseURL),
		createPath: "/sales/create-sale",
		authMode:   "api-key",
		dialect:    normalizer.DataEnvelope,
		candidates: blackCatStatusCandidates,
		client:     client,
	}, nil
}

func (g *HTTPGateway) Name() string {
	return g.name
}

func (g *HTTPGateway) Dialect() normalizer.Dialect {
	return g.dialect
}

func (g *HTTPGateway) CreateTransaction(ctx context.Context, payload entities.GatewayPayload) (entities.GatewayReply, error) {
	endpoint := g.baseURL + g.createPath
	log.Printf("[payment][gateway] create start gateway=%s url=%s auth=%s external_ref=%s", g.name, endpoint, g.authMode, payload.ExternalRef)

	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post(endpoint)
	if err != nil {
		log.Printf("[payment][gateway] create failed gateway=%s err=%v", g.name, err)
		return entities.GatewayReply{}, fmt.Errorf("%s create transaction: %w", g.name, err)
	}
	log.Printf("[payment][gateway] create done gateway=%s status=%d body_len=%d", g.name, resp.StatusCode(), len(resp.Body()))
	return toReply(resp), nil
}

func (g *HTTPGateway) StatusCandidates(transactionID string) []string {
	return g.candidates(g.baseURL, transactionID)
}

func (g *HTTPGateway) QueryStatus(ctx context.Context, candidate string) (entities.GatewayReply, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		Get(candidate)
	if err != nil {
		log.Printf("[payment][gateway] status failed gateway=%s url=%s err=%v", g.name, candidate, err)
		return entities.GatewayReply{}, fmt.Errorf("%s query status: %w", g.name, err)
	}
	log.Printf("[payment][gateway] status done gateway=%s url=%s status=%d", g.name, candidate, resp.StatusCode())
	return toReply(resp), nil
}

// The provider does not document which parameter name the lookup expects,
// so every known variant is probed in this order.
func blackCatStatusCandidates(baseURL, id string) []string {
	q := url.QueryEscape(id)
	return []string{
		baseURL + "/sales/get-sale/" + url.PathEscape(id),
		baseURL + "/sales/get-sale?transactionId=" + q,
		baseURL + "/sales/get-sale?transaction_id=" + q,
		baseURL + "/sales/get-sale?id=" + q,
	}
}

func marchabbStatusCandidates(baseURL, id string) []string {
	return []string{baseURL + "/transactions/" + url.PathEscape(id)}
}

func newRestyClient(timeout time.Duration) *resty.Client {
	client := resty.New().
		SetTransport(otelhttp.NewTransport(http.DefaultTransport)).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return client
}

func toReply(resp *resty.Response) entities.GatewayReply {
	return entities.GatewayReply{
		HTTPStatus: resp.StatusCode(),
		OK:         resp.IsSuccess(),
		Body:       normalizer.DecodeBody(resp.Body()),
	}
}

func trimBase(base string) string {
	return strings.TrimRight(strings.TrimSpace(base), "/")
}
