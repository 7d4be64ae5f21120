package routes

import (
	"github.com/gin-gonic/gin"

	"payment-proxy/internal/adapter/http/handlers"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	rg.POST("/pay-request", paymentHandler.PayRequest)
	rg.POST("/pay-complete", paymentHandler.PayComplete)
	rg.POST("/pay-result", paymentHandler.PayResult)
	rg.POST("/refund-request", paymentHandler.Refund)

	// Sandbox checks against the live provider.
	rg.POST("/test-pay-request", paymentHandler.TestPayRequest)
	rg.POST("/test-pay-result", paymentHandler.TestPayResult)
}

func addSMSRoutes(rg *gin.RouterGroup, smsHandler *handlers.SMSHandler) {
	rg.POST("/send-otp", smsHandler.SendOTP)
}
