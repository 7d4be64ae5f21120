package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"payment-proxy/internal/adapter/http/dto/request"
	"payment-proxy/internal/adapter/http/dto/response"
	"payment-proxy/internal/usecase"
)

// SMSHandler handles the one-time-code proxy route.
type SMSHandler struct {
	usecase usecase.ISMSUseCase
}

func NewSMSHandler(uc usecase.ISMSUseCase) *SMSHandler {
	return &SMSHandler{usecase: uc}
}

// SendOTP generates and delivers a verification code.
// @Summary      Send one-time code
// @Accept       json
// @Produce      json
// @Param        payload body request.OTPRequest true "otp request"
// @Success      200 {object} response.OTPResponse
// @Router       /api/send-otp [post]
func (h *SMSHandler) SendOTP(c *gin.Context) {
	var req request.OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.NewError("request body is not valid JSON"))
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, response.NewError(validationMessage(err)))
		return
	}

	result, err := h.usecase.SendOTP(c.Request.Context(), req.Phone(), req.Message)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingSMSCredentials) {
			appErr := mapPaymentError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusBadGateway, response.NewError("failed to send verification code"))
		return
	}

	c.JSON(http.StatusOK, response.OTPResponse{
		Success:    true,
		Message:    "verification code sent",
		OTP:        result.OTP,
		CampaignID: result.CampaignID,
	})
}

// Health reports liveness.
// @Summary      Health check
// @Success      200 {object} response.HealthResponse
// @Router       /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{Status: "ok"})
}
