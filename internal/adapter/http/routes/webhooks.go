package routes

import (
	"festival_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathWebhooks = "/webhooks"

func addWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/stripe", webhookHandler.HandleStripe)
		webhooks.POST("/mercadopago", webhookHandler.HandleMercadoPago)
	}
}
