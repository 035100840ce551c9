package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"pix_checkout/internal/adapter/http/dto/response"
	"pix_checkout/internal/usecase"
	"pix_checkout/pkg"

	"github.com/gin-gonic/gin"
)

// StatusHandler handles PIX status polling.
type StatusHandler struct {
	usecase usecase.IStatusUseCase
}

func NewStatusHandler(uc usecase.IStatusUseCase) *StatusHandler {
	return &StatusHandler{usecase: uc}
}

// GetStatus godoc
// @Summary      Poll a PIX charge status
// @Tags         payment
// @Produce      json
// @Param        id              query     string  false  "Transaction id"
// @Param        transaction_id  query     string  false  "Transaction id (alias)"
// @Success      200  {object}  response.StatusResponse
// @Failure      400  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Failure      502  {object}  response.ErrorResponse
// @Router       /api/payment/status [get]
func (h *StatusHandler) GetStatus(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		id = strings.TrimSpace(c.Query("transaction_id"))
	}
	log.Printf("[status][handler] start transaction_id=%s", id)

	status, err := h.usecase.GetStatus(c.Request.Context(), id)
	if err != nil {
		log.Printf("[status][handler] failed transaction_id=%s err=%v", id, err)
		appErr := mapStatusError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[status][handler] success transaction_id=%s status=%s", id, status.Status)

	c.JSON(http.StatusOK, response.FromStatus(status))
}

func mapStatusError(err error) *pkg.AppError {
	var unavailable *usecase.StatusUnavailableError
	switch {
	case errors.Is(err, usecase.ErrMissingTransactionID):
		return pkg.NewDomainErrorSimple("MISSING_TRANSACTION_ID", "id é obrigatório", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Gateway de pagamento não configurado", http.StatusInternalServerError)
	case errors.As(err, &unavailable):
		body := unavailable.Last.Body
		if body == nil {
			body = map[string]any{}
		}
		return pkg.NewDomainErrorSimple("STATUS_UNAVAILABLE", "Não foi possível consultar status", http.StatusBadGateway).
			WithDetail("last", map[string]any{
				"ok":     unavailable.Last.OK,
				"status": unavailable.Last.HTTPStatus,
				"body":   body,
			})
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}
