package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/domain/normalizer"
	"pix_checkout/internal/usecase/interfaces"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=status_usecase.go -destination=../adapter/http/handlers/mocks/mock_status_usecase.go -package=mocks

// IStatusUseCase polls the gateway for a transaction status.
type IStatusUseCase interface {
	GetStatus(ctx context.Context, transactionID string) (entities.PaymentStatus, error)
}

type StatusUseCase struct {
	gateway interfaces.IPaymentGateway
	dialect normalizer.Dialect
}

var _ IStatusUseCase = (*StatusUseCase)(nil)

func NewStatusUseCase(gateway interfaces.IPaymentGateway, dialect normalizer.Dialect) *StatusUseCase {
	if dialect.Name == "" && gateway != nil {
		dialect = gateway.Dialect()
	}
	return &StatusUseCase{gateway: gateway, dialect: dialect}
}

// GetStatus walks the gateway's candidates one at a time and stops at the
// first 2xx answer the dialect accepts. Remaining candidates are not called.
func (u *StatusUseCase) GetStatus(ctx context.Context, transactionID string) (entities.PaymentStatus, error) {
	if u.gateway == nil {
		log.Printf("[status][usecase] gateway not configured")
		return entities.PaymentStatus{}, ErrGatewayNotConfigured
	}
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return entities.PaymentStatus{}, ErrMissingTransactionID
	}

	ctx, span := tracer.Start(ctx, "status.sweep")
	defer span.End()

	candidates := u.gateway.StatusCandidates(transactionID)
	span.SetAttributes(attribute.String("pix.gateway", u.gateway.Name()), attribute.Int("pix.candidates", len(candidates)))
	var last StatusAttempt
	for i, candidate := range candidates {
		reply, err := u.gateway.QueryStatus(ctx, candidate)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "status query failed")
			log.Printf("[status][usecase] candidate %d/%d call failed transaction_id=%s err=%v", i+1, len(candidates), transactionID, err)
			return entities.PaymentStatus{}, fmt.Errorf("query status: %w", err)
		}
		last = StatusAttempt{Candidate: candidate, OK: reply.OK, HTTPStatus: reply.HTTPStatus, Body: reply.Body}

		if reply.OK && u.dialect.Accepts(reply.Body) {
			status := u.dialect.ExtractStatus(reply.Body)
			span.SetAttributes(attribute.Int("pix.candidate", i+1), attribute.String("pix.status", status))
			log.Printf("[status][usecase] resolved transaction_id=%s candidate=%d/%d status=%s", transactionID, i+1, len(candidates), status)
			return entities.PaymentStatus{TransactionID: transactionID, Status: status}, nil
		}
		log.Printf("[status][usecase] candidate %d/%d rejected transaction_id=%s http_status=%d", i+1, len(candidates), transactionID, reply.HTTPStatus)
	}

	span.SetStatus(codes.Error, "candidates exhausted")
	log.Printf("[status][usecase] candidates exhausted transaction_id=%s attempts=%d", transactionID, len(candidates))
	return entities.PaymentStatus{}, &StatusUnavailableError{TransactionID: transactionID, Attempts: len(candidates), Last: last}
}
