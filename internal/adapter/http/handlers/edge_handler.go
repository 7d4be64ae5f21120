package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"payment-proxy/internal/adapter/http/dto/response"
	"payment-proxy/internal/infrastructure/upstream"
)

// EdgeHandler relays requests from the public edge to the core proxy without
// inspecting them. Validation, auth against the provider and normalization
// all happen upstream.
type EdgeHandler struct {
	forwarder *upstream.Forwarder
}

func NewEdgeHandler(forwarder *upstream.Forwarder) *EdgeHandler {
	return &EdgeHandler{forwarder: forwarder}
}

// Relay forwards the request body to the same path on the upstream proxy and
// echoes the upstream's status, content type and body.
func (h *EdgeHandler) Relay(c *gin.Context) {
	if !h.forwarder.Configured() {
		c.JSON(http.StatusInternalServerError, response.NewError("edge proxy upstream is not configured"))
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.NewError("failed to read request body"))
		return
	}

	res, err := h.forwarder.Forward(c.Request.Context(), c.Request.URL.Path, body)
	if err != nil {
		c.JSON(http.StatusBadGateway, response.NewError("upstream proxy is unreachable"))
		return
	}

	contentType := res.ContentType
	if contentType == "" {
		contentType = "application/json; charset=utf-8"
	}
	c.Data(res.StatusCode, contentType, res.Body)
}
