package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pix_checkout/internal/config"
	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/domain/normalizer"
	"pix_checkout/internal/usecase/interfaces"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"
)

var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway creates PIX payments through the Mercado Pago SDK. The
// SDK response is re-encoded to JSON so it goes through the same normalizer
// as the REST providers.
type MercadoPagoGateway struct {
	client payment.Client
	now    func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, &config.MissingKeysError{Variant: config.GatewayMercadoPago, Keys: []string{"MERCADOPAGO_ACCESS_TOKEN"}}
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return newMercadoPagoGatewayWithClient(payment.NewClient(cfg)), nil
}

func newMercadoPagoGatewayWithClient(client payment.Client) *MercadoPagoGateway {
	return &MercadoPagoGateway{client: client, now: time.Now}
}

func (g *MercadoPagoGateway) Name() string {
	return string(config.GatewayMercadoPago)
}

func (g *MercadoPagoGateway) Dialect() normalizer.Dialect {
	return normalizer.MercadoPago
}

func (g *MercadoPagoGateway) CreateTransaction(ctx context.Context, payload entities.GatewayPayload) (entities.GatewayReply, error) {
	if g == nil || g.client == nil {
		return entities.GatewayReply{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] mercadopago create start external_ref=%s amount=%d", payload.ExternalRef, payload.Amount)

	req, err := g.buildRequest(payload)
	if err != nil {
		log.Printf("[payment][gateway] mercadopago request build failed err=%v", err)
		return entities.GatewayReply{}, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] mercadopago create failed err=%v", err)
		return replyFromSDKError(err)
	}
	log.Printf("[payment][gateway] mercadopago create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)
	return replyFromSDKResponse(http.StatusCreated, resp)
}

func (g *MercadoPagoGateway) StatusCandidates(transactionID string) []string {
	return []string{transactionID}
}

func (g *MercadoPagoGateway) QueryStatus(ctx context.Context, candidate string) (entities.GatewayReply, error) {
	if g == nil || g.client == nil {
		return entities.GatewayReply{}, ErrMercadoPagoGatewayNotConfigured
	}
	id, err := strconv.Atoi(strings.TrimSpace(candidate))
	if err != nil {
		return entities.GatewayReply{
			HTTPStatus: http.StatusBadRequest,
			Body:       map[string]any{"message": "payment id must be numeric", "id": candidate},
		}, nil
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] mercadopago get failed id=%d err=%v", id, err)
		return replyFromSDKError(err)
	}
	log.Printf("[payment][gateway] mercadopago get success id=%d status=%s", resp.ID, resp.Status)
	return replyFromSDKResponse(http.StatusOK, resp)
}

// buildRequest goes through JSON so the SDK request type keeps owning the
// field layout.
func (g *MercadoPagoGateway) buildRequest(payload entities.GatewayPayload) (payment.Request, error) {
	title := ""
	if len(payload.Items) > 0 {
		title = payload.Items[0].Title
	}
	body := map[string]any{
		"transaction_amount": decimal.New(payload.Amount, -2).InexactFloat64(),
		"description":        title,
		"payment_method_id":  payload.PaymentMethod,
		"external_reference": payload.ExternalRef,
		"payer": map[string]any{
			"email":      payload.Customer.Email,
			"first_name": payload.Customer.Name,
			"identification": map[string]any{
				"type":   strings.ToUpper(payload.Customer.Document.Type),
				"number": payload.Customer.Document.Number,
			},
		},
	}
	if ttl := expiryDuration(payload.Pix); ttl > 0 {
		body["date_of_expiration"] = g.now().Add(ttl).UTC().Format(time.RFC3339)
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return payment.Request{}, err
	}
	var req payment.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return payment.Request{}, err
	}
	return req, nil
}

func expiryDuration(pix entities.GatewayPix) time.Duration {
	switch {
	case pix.ExpiresIn > 0:
		return time.Duration(pix.ExpiresIn) * time.Second
	case pix.ExpiresInDays > 0:
		return time.Duration(pix.ExpiresInDays) * 24 * time.Hour
	}
	return 0
}

func replyFromSDKResponse(status int, resp *payment.Response) (entities.GatewayReply, error) {
	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] mercadopago response marshal failed err=%v", err)
		return entities.GatewayReply{}, err
	}
	return entities.GatewayReply{HTTPStatus: status, OK: true, Body: normalizer.DecodeBody(b)}, nil
}

// replyFromSDKError turns an API rejection carried in the SDK error message
// (`{"message":...,"status":400,...}`) into a non-OK reply so the caller can
// echo it. Errors without an API status stay errors.
func replyFromSDKError(err error) (entities.GatewayReply, error) {
	msg := err.Error()
	idx := strings.Index(msg, "{")
	if idx < 0 {
		return entities.GatewayReply{}, fmt.Errorf("mercadopago: %w", err)
	}
	body := normalizer.DecodeBody([]byte(msg[idx:]))
	status, ok := normalizer.FirstInt(body, []normalizer.Path{normalizer.P("status")})
	if !ok || status < 400 {
		return entities.GatewayReply{}, fmt.Errorf("mercadopago: %w", err)
	}
	return entities.GatewayReply{HTTPStatus: int(status), OK: false, Body: body}, nil
}
