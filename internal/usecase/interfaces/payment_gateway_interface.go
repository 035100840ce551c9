package interfaces

import (
	"context"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/domain/normalizer"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway_interface.go -package=mock_interfaces

// IPaymentGateway abstracts the external PIX providers (Marchabb, BlackCat,
// Mercado Pago).
//
// Implementations only move bytes: they never judge a reply. Non-2xx answers
// come back as a GatewayReply with OK=false; an error means the call itself
// could not be made.
type IPaymentGateway interface {
	Name() string
	// Dialect is the response shape the provider speaks by default.
	Dialect() normalizer.Dialect
	CreateTransaction(ctx context.Context, payload entities.GatewayPayload) (entities.GatewayReply, error)
	// StatusCandidates lists, in probing order, the lookups that may answer
	// for a transaction id.
	StatusCandidates(transactionID string) []string
	QueryStatus(ctx context.Context, candidate string) (entities.GatewayReply, error)
}
