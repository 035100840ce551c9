package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/domain/normalizer"
	"pix_checkout/internal/usecase/interfaces"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("pix_checkout/usecase")

const (
	currencyBRL      = "BRL"
	paymentMethodPix = "pix"
	documentTypeCPF  = "cpf"
)

//go:generate mockgen -source=charge_usecase.go -destination=../adapter/http/handlers/mocks/mock_charge_usecase.go -package=mocks

// IChargeUseCase creates a PIX charge and returns it in the frontend shape.
type IChargeUseCase interface {
	CreateCharge(ctx context.Context, in entities.ChargeInput) (entities.Charge, error)
}

// ChargeSettings are the deployment-wide fallbacks of the charge creator.
type ChargeSettings struct {
	FixedAmount  string
	FixedTitle   string
	DefaultEmail string
	DefaultPhone string
	// Expiry is gateway specific: seconds for one provider, days for another.
	Expiry entities.GatewayPix
}

type ChargeUseCase struct {
	gateway  interfaces.IPaymentGateway
	dialect  normalizer.Dialect
	settings ChargeSettings
	now      func() time.Time
}

var _ IChargeUseCase = (*ChargeUseCase)(nil)

// NewChargeUseCase wires the creator to one gateway. A zero dialect means
// "use the gateway's own dialect".
func NewChargeUseCase(gateway interfaces.IPaymentGateway, dialect normalizer.Dialect, settings ChargeSettings) *ChargeUseCase {
	if dialect.Name == "" && gateway != nil {
		dialect = gateway.Dialect()
	}
	return &ChargeUseCase{gateway: gateway, dialect: dialect, settings: settings, now: time.Now}
}

func (u *ChargeUseCase) CreateCharge(ctx context.Context, in entities.ChargeInput) (entities.Charge, error) {
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured")
		return entities.Charge{}, ErrGatewayNotConfigured
	}

	document := strings.TrimSpace(in.Document)
	name := strings.TrimSpace(in.Name)
	if document == "" || name == "" {
		log.Printf("[payment][usecase] missing customer data has_cpf=%t has_nome=%t", document != "", name != "")
		return entities.Charge{}, ErrMissingCustomerData
	}

	rawAmount := firstNonEmpty(in.Amount, u.settings.FixedAmount)
	if rawAmount == "" {
		log.Printf("[payment][usecase] amount not resolved")
		return entities.Charge{}, ErrAmountNotConfigured
	}
	cents, err := ParseAmountCents(rawAmount)
	if err != nil {
		log.Printf("[payment][usecase] invalid amount raw=%q err=%v", rawAmount, err)
		return entities.Charge{}, err
	}

	payload := u.buildPayload(document, name, in, cents)
	log.Printf("[payment][usecase] create start gateway=%s amount=%d title=%q external_ref=%s",
		u.gateway.Name(), payload.Amount, payload.Items[0].Title, payload.ExternalRef)

	ctx, span := tracer.Start(ctx, "charge.create")
	defer span.End()
	span.SetAttributes(attribute.String("pix.gateway", u.gateway.Name()), attribute.Int64("pix.amount_cents", cents))

	reply, err := u.gateway.CreateTransaction(ctx, payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "gateway call failed")
		log.Printf("[payment][usecase] gateway call failed gateway=%s err=%v", u.gateway.Name(), err)
		return entities.Charge{}, fmt.Errorf("create transaction: %w", err)
	}
	log.Printf("[payment][usecase] gateway replied status=%d ok=%t", reply.HTTPStatus, reply.OK)

	span.SetAttributes(attribute.Int("http.upstream_status", reply.HTTPStatus))
	if !reply.OK {
		span.SetStatus(codes.Error, ReasonTransportStatus)
		return entities.Charge{}, &GatewayError{Kind: ErrGatewayTransport, Reason: ReasonTransportStatus, HTTPStatus: reply.HTTPStatus, Body: reply.Body}
	}
	if !u.dialect.Accepts(reply.Body) {
		span.SetStatus(codes.Error, ReasonSuccessFlag)
		return entities.Charge{}, &GatewayError{Kind: ErrGatewayContract, Reason: ReasonSuccessFlag, HTTPStatus: reply.HTTPStatus, Body: reply.Body}
	}

	fields := u.dialect.ExtractCharge(reply.Body)
	log.Printf("[payment][usecase] extracted dialect=%s transaction_id=%q has_pix_code=%t", u.dialect.Name, fields.TransactionID, fields.PixCode != "")
	if fields.TransactionID == "" || fields.PixCode == "" {
		span.SetStatus(codes.Error, ReasonMissingFields)
		return entities.Charge{}, &GatewayError{Kind: ErrGatewayContract, Reason: ReasonMissingFields, HTTPStatus: reply.HTTPStatus, Body: reply.Body}
	}

	charge := entities.Charge{
		TransactionID: fields.TransactionID,
		PixCode:       fields.PixCode,
		AmountCents:   cents,
		Status:        entities.ChargeStatusPending,
		QRCode:        fields.QRCode,
		InvoiceURL:    fields.InvoiceURL,
	}
	if fields.HasAmount {
		charge.AmountCents = fields.Amount
	}
	if fields.Status != "" {
		charge.Status = fields.Status
	}
	log.Printf("[payment][usecase] create success transaction_id=%s status=%s", charge.TransactionID, charge.Status)
	return charge, nil
}

func (u *ChargeUseCase) buildPayload(document, name string, in entities.ChargeInput, cents int64) entities.GatewayPayload {
	title := firstNonEmpty(in.Title, u.settings.FixedTitle)
	email := firstNonEmpty(in.Email, u.settings.DefaultEmail)
	phone := firstNonEmpty(in.Phone, u.settings.DefaultPhone)

	return entities.GatewayPayload{
		Amount:        cents,
		Currency:      currencyBRL,
		PaymentMethod: paymentMethodPix,
		Items: []entities.GatewayItem{
			{Title: title, UnitPrice: cents, Quantity: 1, Tangible: false},
		},
		Customer: entities.GatewayCustomer{
			Name:  name,
			Email: email,
			Phone: OnlyDigits(phone),
			Document: entities.GatewayDocument{
				Number: OnlyDigits(document),
				Type:   documentTypeCPF,
			},
		},
		Pix:         u.settings.Expiry,
		ExternalRef: fmt.Sprintf("order_%d", u.now().UnixMilli()),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
