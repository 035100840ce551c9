package payments

import (
	"fmt"

	"pix_checkout/internal/config"
	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"
)

// NewGateway builds the configured variant. Missing credentials come back as
// a *config.MissingKeysError.
func NewGateway(cfg config.GatewayConfig) (interfaces.IPaymentGateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var (
		gw  interfaces.IPaymentGateway
		err error
	)
	switch cfg.Variant {
	case config.GatewayMarchabb:
		var g *HTTPGateway
		if g, err = NewMarchabbGateway(cfg); err == nil {
			gw = g
		}
	case config.GatewayBlackCat:
		var g *HTTPGateway
		if g, err = NewBlackCatGateway(cfg); err == nil {
			gw = g
		}
	case config.GatewayMercadoPago:
		var g *MercadoPagoGateway
		if g, err = NewMercadoPagoGateway(cfg.MPAccessToken); err == nil {
			gw = g
		}
	case config.GatewayMock:
		gw = NewMockGateway()
	default:
		err = fmt.Errorf("unknown payment gateway %q", cfg.Variant)
	}
	if err != nil {
		return nil, err
	}
	return gw, nil
}

// ExpiryFor returns the pix expiry block the variant expects: the Basic-auth
// provider takes seconds, the API-key provider takes days.
func ExpiryFor(cfg config.GatewayConfig) entities.GatewayPix {
	if cfg.Variant == config.GatewayBlackCat {
		return entities.GatewayPix{ExpiresInDays: cfg.PixExpiresInDays}
	}
	return entities.GatewayPix{ExpiresIn: cfg.PixExpiresIn}
}
