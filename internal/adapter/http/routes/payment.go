package routes

import (
	"pix_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayment       = "/api/payment"
	PathPaymentStatus = "/api/payment/status"
	PathPayments      = "/payments"
)

// addPaymentRoutes mounts the frontend paths at the root.
func addPaymentRoutes(r *gin.Engine, chargeHandler *handlers.ChargeHandler, statusHandler *handlers.StatusHandler) {
	r.POST(PathPayment, chargeHandler.CreateCharge)
	r.GET(PathPaymentStatus, statusHandler.GetStatus)
}

func addPaymentV1Routes(rg *gin.RouterGroup, chargeHandler *handlers.ChargeHandler, statusHandler *handlers.StatusHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", chargeHandler.CreateCharge)
		payments.GET("/status", statusHandler.GetStatus)
	}
}
