package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"payment-proxy/internal/adapter/http/dto/request"
	"payment-proxy/internal/adapter/http/dto/response"
	"payment-proxy/internal/domain/entities"
	"payment-proxy/internal/usecase"
	"payment-proxy/pkg"
)

// PaymentHandler binds validation, the provider call and the normalizer to
// the payment routes.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// PayRequest creates a 3-D Secure payment.
// @Summary      Create payment
// @Accept       json
// @Produce      json
// @Param        payload body request.PaymentRequest true "payment request"
// @Success      200 {object} response.PaymentCreatedResponse
// @Router       /api/pay-request [post]
func (h *PaymentHandler) PayRequest(c *gin.Context) {
	var req request.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] pay-request invalid body err=%v", err)
		c.JSON(http.StatusBadRequest, response.NewError("request body is not valid JSON"))
		return
	}

	normalized, err := req.Validate()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.NewError(validationMessage(err)))
		return
	}

	o, err := h.usecase.CreatePayment(c.Request.Context(), normalized)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	switch o.Kind {
	case entities.OutcomeSuccess:
		c.JSON(http.StatusOK, response.FromPaymentCreated(*o.Created))
	case entities.OutcomeProviderRejected:
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Error:   o.Message,
			Details: response.Raw(o.RawBody),
		})
	case entities.OutcomeProviderError:
		c.JSON(http.StatusBadGateway, response.ErrorResponse{
			Error:   o.Message,
			Details: response.Raw(o.RawBody),
			Debug:   gin.H{"providerStatus": o.HTTPStatus, "payload": normalized.Redacted()},
		})
	case entities.OutcomeTimeout:
		c.JSON(http.StatusGatewayTimeout, response.NewError(o.Message))
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Error:   o.Message,
			Details: response.Raw(o.RawBody),
		})
	}
}

// PayComplete finalizes a 3-D payment. Provider status and body are passed
// through untouched.
// @Summary      Complete payment
// @Router       /api/pay-complete [post]
func (h *PaymentHandler) PayComplete(c *gin.Context) {
	var req request.CompleteRequest
	_ = c.ShouldBindJSON(&req)
	if v := c.Query("uid"); v != "" {
		req.UID = v
	}
	if v := c.Query("key"); v != "" {
		req.Key = v
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, response.NewError(validationMessage(err)))
		return
	}

	res, err := h.usecase.CompletePayment(c.Request.Context(), req.UID, req.Key)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingCredentials) {
			appErr := mapPaymentError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusGatewayTimeout, response.NewError("no response received from payment provider"))
		return
	}

	c.Data(res.StatusCode, passthroughContentType(res.RawBody), res.RawBody)
}

// PayResult checks a payment's disposition. Always 200 once the provider
// answered with a well-formed envelope; the success flag lives in the body.
// @Summary      Check payment result
// @Router       /api/pay-result [post]
func (h *PaymentHandler) PayResult(c *gin.Context) {
	var req request.ResultRequest
	_ = c.ShouldBindJSON(&req)
	if v := c.Query("uid"); v != "" {
		req.UID = v
	}
	if v := c.Query("orderId"); v != "" {
		req.OrderID = v
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, response.NewError(validationMessage(err)))
		return
	}

	o, err := h.usecase.CheckResult(c.Request.Context(), req.UID, req.OrderID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	switch o.Kind {
	case entities.OutcomeProviderError:
		c.JSON(http.StatusBadGateway, response.ErrorResponse{Error: o.Message, Details: response.Raw(o.RawBody)})
	case entities.OutcomeMalformedResponse:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: o.Message, Details: response.Raw(o.RawBody)})
	case entities.OutcomeTimeout:
		c.JSON(http.StatusGatewayTimeout, response.NewError(o.Message))
	default:
		c.JSON(http.StatusOK, response.FromResultOutcome(o))
	}
}

// Refund requests a full or partial refund.
// @Summary      Refund payment
// @Router       /api/refund-request [post]
func (h *PaymentHandler) Refund(c *gin.Context) {
	var req request.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.NewError("request body is not valid JSON"))
		return
	}

	normalized, err := req.Validate()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.NewError(validationMessage(err)))
		return
	}

	o, err := h.usecase.Refund(c.Request.Context(), normalized)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	switch o.Kind {
	case entities.OutcomeSuccess:
		var data *entities.ProviderContent
		if o.Envelope != nil {
			data = o.Envelope.Content
		}
		c.JSON(http.StatusOK, response.RefundResponse{Success: true, Message: o.Message, Data: data})
	case entities.OutcomeProviderRejected:
		c.JSON(http.StatusBadRequest, response.RefundRejectedResponse{
			Error:     o.Message,
			ErrorCode: o.Envelope.ErrorCode,
			Errors:    o.Envelope.Errors,
		})
	case entities.OutcomeProviderError:
		c.JSON(o.HTTPStatus, response.ErrorResponse{Error: o.Message, Details: response.Raw(o.RawBody)})
	case entities.OutcomeTimeout:
		c.JSON(http.StatusGatewayTimeout, response.NewError(o.Message))
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: o.Message, Details: response.Raw(o.RawBody)})
	}
}

// TestPayRequest runs the canned sandbox payment and echoes the raw result.
// @Summary      Sandbox payment echo
// @Router       /api/test-pay-request [post]
func (h *PaymentHandler) TestPayRequest(c *gin.Context) {
	res, err := h.usecase.TestPayment(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.NewError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"providerStatus": res.StatusCode, "raw": response.Raw(res.RawBody)})
}

// TestPayResult checks a caller-supplied uid, echoing the raw result.
// @Summary      Sandbox result echo
// @Router       /api/test-pay-result [post]
func (h *PaymentHandler) TestPayResult(c *gin.Context) {
	res, err := h.usecase.TestResult(c.Request.Context(), c.Query("uid"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.NewError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"providerStatus": res.StatusCode, "raw": response.Raw(res.RawBody)})
}

func validationMessage(err error) string {
	var verr *request.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return "invalid request"
}

func passthroughContentType(body []byte) string {
	if json.Valid(body) {
		return gin.MIMEJSON
	}
	return gin.MIMEHTML
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCredentials):
		return pkg.NewDomainErrorSimple("MISSING_CREDENTIALS", "Payment provider credentials are not configured", http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrMissingSMSCredentials):
		return pkg.NewDomainErrorSimple("MISSING_SMS_CREDENTIALS", "SMS gateway credentials are not configured", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
