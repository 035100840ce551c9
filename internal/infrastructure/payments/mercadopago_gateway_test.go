package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"pix_checkout/internal/config"
	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/domain/normalizer"

	"github.com/mercadopago/sdk-go/pkg/payment"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	_, err := NewMercadoPagoGateway("")
	var mk *config.MissingKeysError
	if !errors.As(err, &mk) || mk.Keys[0] != "MERCADOPAGO_ACCESS_TOKEN" {
		t.Fatalf("expected missing token error, got %v", err)
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	g := newMercadoPagoGatewayWithClient(nil)
	if _, err := g.CreateTransaction(context.Background(), samplePayload()); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected not configured, got %v", err)
	}
	if _, err := g.QueryStatus(context.Background(), "1"); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected not configured, got %v", err)
	}
}

func TestMercadoPagoGateway_BuildRequest(t *testing.T) {
	g := newMercadoPagoGatewayWithClient(nil)
	fixed := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	req, err := g.buildRequest(samplePayload())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var sent map[string]any
	if err := json.Unmarshal(raw, &sent); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if sent["transaction_amount"] != 64.73 {
		t.Fatalf("expected 64.73, got %v", sent["transaction_amount"])
	}
	if sent["payment_method_id"] != "pix" || sent["external_reference"] != "order_1" || sent["description"] != "Taxa de Adesão" {
		t.Fatalf("unexpected request: %s", raw)
	}
	payer, ok := sent["payer"].(map[string]any)
	if !ok || payer["email"] != "m@x.com" {
		t.Fatalf("unexpected payer: %s", raw)
	}
	ident, ok := payer["identification"].(map[string]any)
	if !ok || ident["type"] != "CPF" || ident["number"] != "12345678909" {
		t.Fatalf("unexpected identification: %s", raw)
	}
	exp, ok := sent["date_of_expiration"].(string)
	if !ok {
		t.Fatalf("expected date_of_expiration, got %s", raw)
	}
	parsed, err := time.Parse(time.RFC3339, exp)
	if err != nil || !parsed.Equal(fixed.Add(time.Hour)) {
		t.Fatalf("expected expiry one hour ahead, got %s err=%v", exp, err)
	}
}

func TestExpiryDuration(t *testing.T) {
	cases := []struct {
		name string
		pix  entities.GatewayPix
		want time.Duration
	}{
		{"seconds", entities.GatewayPix{ExpiresIn: 90}, 90 * time.Second},
		{"days", entities.GatewayPix{ExpiresInDays: 2}, 48 * time.Hour},
		{"none", entities.GatewayPix{}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := expiryDuration(tc.pix); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestReplyFromSDKError(t *testing.T) {
	t.Run("api rejection becomes reply", func(t *testing.T) {
		reply, err := replyFromSDKError(errors.New(`error response: {"message":"invalid payer","error":"bad_request","status":400}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.OK || reply.HTTPStatus != http.StatusBadRequest || reply.Body["message"] != "invalid payer" {
			t.Fatalf("unexpected reply: %+v", reply)
		}
	})

	t.Run("plain error stays error", func(t *testing.T) {
		if _, err := replyFromSDKError(errors.New("dial tcp: connection refused")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("non error status stays error", func(t *testing.T) {
		if _, err := replyFromSDKError(errors.New(`{"status":200}`)); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestReplyFromSDKResponse(t *testing.T) {
	reply, err := replyFromSDKResponse(http.StatusCreated, &payment.Response{ID: 123, Status: "pending"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reply.OK || reply.HTTPStatus != http.StatusCreated {
		t.Fatalf("unexpected reply: %+v", reply)
	}
	fields := normalizer.MercadoPago.ExtractCharge(reply.Body)
	if fields.TransactionID != "123" || fields.Status != "pending" {
		t.Fatalf("unexpected fields: %+v", fields)
	}
}

func TestMercadoPagoGateway_QueryStatus_NonNumericID(t *testing.T) {
	g, err := NewMercadoPagoGateway("TEST-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := g.StatusCandidates("abc"); len(got) != 1 || got[0] != "abc" {
		t.Fatalf("unexpected candidates: %v", got)
	}
	reply, err := g.QueryStatus(context.Background(), "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.OK || reply.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("unexpected reply: %+v", reply)
	}
}
