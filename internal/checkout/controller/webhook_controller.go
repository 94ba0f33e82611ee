package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	apperrors "themesjet/internal/errors"
	"themesjet/internal/payment"
)

type EventHandler interface {
	HandleEvent(ctx context.Context, event payment.Event) error
}

type WebhookController struct {
	handler EventHandler
	secret  string
	logger  *zap.Logger
}

func NewWebhookController(handler EventHandler, secret string, logger *zap.Logger) *WebhookController {
	return &WebhookController{
		handler: handler,
		secret:  secret,
		logger:  logger,
	}
}

// HandleWebhook verifies the processor's signature over the raw payload
// before anything is decoded.
func (c *WebhookController) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		c.logger.Warn("failed to read webhook payload", zap.Error(err))
		writeError(w, c.logger, apperrors.NewValidationError("unreadable payload"))
		return
	}

	signature := r.Header.Get(payment.SignatureHeader)
	if !payment.VerifySignature(payload, signature, c.secret) {
		c.logger.Warn("webhook signature verification failed")
		writeError(w, c.logger, apperrors.NewUnauthorizedError("invalid signature"))
		return
	}

	var event payment.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		writeError(w, c.logger, apperrors.NewValidationError("invalid event payload"))
		return
	}

	if err := c.handler.HandleEvent(r.Context(), event); err != nil {
		writeError(w, c.logger, err)
		return
	}

	writeJSON(w, c.logger, http.StatusOK, map[string]bool{"received": true})
}
