package http

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wayfare-app/wayfare/internal/pkg/logger"
	"github.com/wayfare-app/wayfare/internal/pkg/models"
	"github.com/wayfare-app/wayfare/internal/utils"
)

// SignatureHeader carries the gateway's HMAC of the webhook body
const SignatureHeader = "X-Wayfare-Signature"

// HandleWebhook validates and enqueues a gateway-pushed payment event.
// The embedded status is a hint only; the consumer re-verifies against the
// gateway before any state changes. The gateway gets a 200 as soon as the
// event is durably enqueued.
func (h *PaymentHandler) HandleWebhook(c echo.Context) error {
	rawBody, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return utils.BadRequestResponse(c, "Failed to read request body")
	}

	signature := c.Request().Header.Get(SignatureHeader)
	if !h.gw.ValidateWebhookSignature(rawBody, signature) {
		logger.Warn("Discarding webhook with invalid signature",
			logger.String("client_ip", c.RealIP()))
		return utils.UnauthorizedResponse(c, "Invalid webhook signature")
	}

	var event models.WebhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		return utils.BadRequestResponse(c, "Invalid webhook payload")
	}
	if event.Reference == "" {
		return utils.BadRequestResponse(c, "Webhook payload missing tx_ref")
	}
	event.ReceivedAt = time.Now().Unix()

	if err := h.events.PublishWebhookEvent(&event); err != nil {
		logger.ErrorLog("Failed to enqueue webhook event",
			logger.String("reference", event.Reference),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to enqueue webhook")
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "accepted"})
}
