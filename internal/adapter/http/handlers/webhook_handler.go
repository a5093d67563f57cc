package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	response "festival_backend/internal/adapter/http/dto/response"
	"festival_backend/internal/usecase"
	"festival_backend/pkg"

	"github.com/gin-gonic/gin"
)

const (
	stripeSignatureHeader = "Stripe-Signature"
	maxWebhookBodyBytes   = int64(65536)
)

var errInvalidWebhookPayload = pkg.NewDomainErrorSimple("INVALID_WEBHOOK_PAYLOAD", "Invalid webhook payload", http.StatusBadRequest)

// WebhookHandler receives payment provider notifications.
type WebhookHandler struct {
	usecase usecase.IOrderFulfillmentUseCase
}

func NewWebhookHandler(uc usecase.IOrderFulfillmentUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandleStripe verifies the signature over the raw body before anything is
// decoded. Events that reference unknown orders are still acknowledged.
func (h *WebhookHandler) HandleStripe(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}

	if err := h.usecase.HandleStripeEvent(c.Request.Context(), payload, c.GetHeader(stripeSignatureHeader)); err != nil {
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.WebhookAck{Received: true})
}

// HandleMercadoPago accepts both IPN style (?topic=payment&id=) and webhook
// style ({"type":"payment","data":{"id":...}}) notifications.
func (h *WebhookHandler) HandleMercadoPago(c *gin.Context) {
	topic := firstQuery(c, "topic", "type")
	paymentID := firstQuery(c, "id", "data.id")

	if topic == "" || paymentID == "" {
		body, err := readMercadoPagoBody(c)
		if err != nil {
			c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
			return
		}
		if topic == "" {
			topic = body.topic()
		}
		if paymentID == "" {
			paymentID = body.dataID()
		}
	}

	if err := h.usecase.HandleMercadoPagoNotification(c.Request.Context(), topic, paymentID); err != nil {
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.WebhookAck{Received: true})
}

type mercadoPagoNotification struct {
	Type  string `json:"type"`
	Topic string `json:"topic"`
	Data  struct {
		ID any `json:"id"`
	} `json:"data"`
}

func (n mercadoPagoNotification) topic() string {
	if n.Type != "" {
		return strings.TrimSpace(n.Type)
	}
	return strings.TrimSpace(n.Topic)
}

func (n mercadoPagoNotification) dataID() string {
	if n.Data.ID == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(n.Data.ID))
}

func readMercadoPagoBody(c *gin.Context) (mercadoPagoNotification, error) {
	var n mercadoPagoNotification
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		return n, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return n, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return n, err
	}
	return n, nil
}

func firstQuery(c *gin.Context, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(c.Query(k)); v != "" {
			return v
		}
	}
	return ""
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWebhookSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Payment id not provided", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWebhookUnavailable):
		return pkg.NewDomainErrorSimple("WEBHOOK_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
