package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"pix_checkout/internal/adapter/http/dto/request"
	"pix_checkout/internal/adapter/http/dto/response"
	"pix_checkout/internal/usecase"
	"pix_checkout/pkg"

	"github.com/gin-gonic/gin"
)

// ChargeHandler handles PIX charge creation.
type ChargeHandler struct {
	usecase usecase.IChargeUseCase
}

func NewChargeHandler(uc usecase.IChargeUseCase) *ChargeHandler {
	return &ChargeHandler{usecase: uc}
}

// CreateCharge godoc
// @Summary      Create a PIX charge
// @Description  Forwards the customer data to the configured gateway and returns the PIX copy-and-paste code.
// @Tags         payment
// @Accept       json
// @Produce      json
// @Param        body  body      request.ChargeRequest  true  "Customer and amount"
// @Success      200   {object}  response.ChargeResponse
// @Failure      400   {object}  response.ErrorResponse
// @Failure      500   {object}  response.ErrorResponse
// @Failure      502   {object}  response.ErrorResponse
// @Router       /api/payment [post]
func (h *ChargeHandler) CreateCharge(c *gin.Context) {
	req, err := readChargeRequest(c)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida", http.StatusBadRequest)
		var fieldErr *request.FieldError
		if errors.As(err, &fieldErr) {
			log.Printf("[payment][handler] invalid payload field=%s err=%v", fieldErr.Field, fieldErr.Err)
			appErr.WithDetail("field", fieldErr.Field)
		} else {
			log.Printf("[payment][handler] invalid payload err=%v", err)
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create start has_cpf=%t has_nome=%t has_email=%t has_phone=%t has_amount=%t",
		req.CPF.String() != "", req.Nome.String() != "", req.Email.String() != "", req.Phone.String() != "", req.Amount.String() != "")

	charge, err := h.usecase.CreateCharge(c.Request.Context(), req.ToInput())
	if err != nil {
		log.Printf("[payment][handler] create failed err=%v", err)
		appErr := mapChargeError(err, req)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success transaction_id=%s status=%s", charge.TransactionID, charge.Status)

	c.JSON(http.StatusOK, response.FromCharge(charge))
}

// readChargeRequest treats an empty body as an empty request so the use case
// reports the missing fields.
func readChargeRequest(c *gin.Context) (request.ChargeRequest, error) {
	var req request.ChargeRequest
	raw, err := c.GetRawData()
	if err != nil {
		return req, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return req, nil
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return req, err
	}
	return req, nil
}

func mapChargeError(err error, req request.ChargeRequest) *pkg.AppError {
	var gwErr *usecase.GatewayError
	switch {
	case errors.Is(err, usecase.ErrMissingCustomerData):
		return pkg.NewDomainErrorSimple("MISSING_CUSTOMER_DATA", "Dados obrigatórios não fornecidos: cpf e nome são obrigatórios", http.StatusBadRequest).
			WithDetail("received", req.Received())
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount inválido", http.StatusBadRequest).
			WithDetail("received", map[string]any{"amount": string(req.Amount)})
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Gateway de pagamento não configurado", http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrAmountNotConfigured):
		return pkg.NewDomainErrorSimple("AMOUNT_NOT_CONFIGURED", "Amount é obrigatório", http.StatusInternalServerError)
	case errors.As(err, &gwErr):
		return mapGatewayError(gwErr)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}

func mapGatewayError(gwErr *usecase.GatewayError) *pkg.AppError {
	body := gwErr.Body
	if body == nil {
		body = map[string]any{}
	}
	if gwErr.Reason == usecase.ReasonMissingFields {
		return pkg.NewDomainErrorSimple("GATEWAY_CONTRACT_ERROR", "Gateway não retornou transactionId/pixCode", http.StatusBadGateway).
			WithDetail("gateway", body)
	}
	code := "GATEWAY_ERROR"
	if errors.Is(gwErr, usecase.ErrGatewayContract) {
		code = "GATEWAY_CONTRACT_ERROR"
	}
	return pkg.NewDomainErrorSimple(code, "Falha ao criar PIX", http.StatusBadGateway).
		WithDetail("status", gwErr.HTTPStatus).
		WithDetail("gateway", body)
}
