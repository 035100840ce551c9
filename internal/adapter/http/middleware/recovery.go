package middleware

import (
	"fmt"
	"log"
	"net/http"

	"pix_checkout/pkg"

	"github.com/gin-gonic/gin"
)

// Recovery answers a panic with the internal error body instead of an empty
// 500.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", fmt.Errorf("%v", recovered), http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
}
