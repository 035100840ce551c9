package payments

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"pix_checkout/internal/config"
	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/domain/normalizer"
	"pix_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// MockGateway answers locally so the checkout can be exercised without
// gateway credentials (PAYMENT_GATEWAY_MOCK=true).
type MockGateway struct{}

var _ interfaces.IPaymentGateway = (*MockGateway)(nil)

func NewMockGateway() *MockGateway {
	log.Printf("[payment][gateway] mock mode enabled")
	return &MockGateway{}
}

func (g *MockGateway) Name() string {
	return string(config.GatewayMock)
}

func (g *MockGateway) Dialect() normalizer.Dialect {
	return normalizer.Auto
}

func (g *MockGateway) CreateTransaction(_ context.Context, payload entities.GatewayPayload) (entities.GatewayReply, error) {
	id := uuid.NewString()
	log.Printf("[payment][gateway] mock create success transaction_id=%s amount=%d", id, payload.Amount)
	code := mockPixCode(id, payload.Amount)
	return entities.GatewayReply{
		HTTPStatus: http.StatusOK,
		OK:         true,
		Body: map[string]any{
			"id":          id,
			"amount":      payload.Amount,
			"status":      entities.ChargeStatusPending,
			"externalRef": payload.ExternalRef,
			"pix":         map[string]any{"qrcode": code},
		},
	}, nil
}

func (g *MockGateway) StatusCandidates(transactionID string) []string {
	return []string{transactionID}
}

func (g *MockGateway) QueryStatus(_ context.Context, candidate string) (entities.GatewayReply, error) {
	log.Printf("[payment][gateway] mock status transaction_id=%s", candidate)
	return entities.GatewayReply{
		HTTPStatus: http.StatusOK,
		OK:         true,
		Body: map[string]any{
			"success": true,
			"data":    map[string]any{"transactionId": candidate, "status": entities.ChargeStatusPending},
		},
	}, nil
}

// mockPixCode looks like a BR Code but is not payable.
func mockPixCode(id string, cents int64) string {
	txid := strings.ReplaceAll(id, "-", "")[:25]
	amount := fmt.Sprintf("%d.%02d", cents/100, cents%100)
	return fmt.Sprintf("00020126360014br.gov.bcb.pix0114mock%s54%02d%s5802BR5912PIX CHECKOUT6009SAO PAULO62290525%s6304MOCK",
		txid[:10], len(amount), amount, txid)
}
