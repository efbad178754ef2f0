package router

import (
	"github.com/gin-gonic/gin"

	"givebase.app/crm/internal/http/handler/webhook"
)

func WebhookRouter(rg *gin.RouterGroup, stripe *webhook.StripeWebhookHandler) {
	rg.POST("/stripe", stripe.HandleEvent)
}
