package webhook

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"givebase.app/crm/internal/payment"
	"givebase.app/crm/internal/service"
)

// Stripe rejects webhook payloads larger than this.
const maxStripePayload = 65536

type EventParser interface {
	Parse(payload []byte, signatureHeader string) (*payment.Event, error)
}

type StripeWebhookHandler struct {
	parser EventParser
	events service.PaymentEventService
}

func NewStripeWebhookHandler(parser EventParser, events service.PaymentEventService) *StripeWebhookHandler {
	return &StripeWebhookHandler{parser: parser, events: events}
}

func (h *StripeWebhookHandler) HandleEvent(c *gin.Context) {
	ctx := c.Request.Context()

	signature := c.GetHeader("Stripe-Signature")
	if signature == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing signature"})
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxStripePayload))
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "failed to read request body"})
		return
	}

	evt, err := h.parser.Parse(body, signature)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidSignature) {
			slog.WarnContext(ctx, "rejected stripe webhook", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	scheduled, err := h.events.HandleEvent(ctx, evt)
	if err != nil {
		// A non-2xx response makes Stripe retry the delivery.
		slog.ErrorContext(ctx, "failed to handle stripe event", "error", err, "event_id", evt.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to handle event"})
		return
	}

	slog.InfoContext(ctx, "stripe webhook handled",
		"event_id", evt.ID,
		"event_type", evt.Type,
		"recheck_scheduled", scheduled)
	c.JSON(http.StatusOK, gin.H{"received": true, "recheck_scheduled": scheduled})
}
