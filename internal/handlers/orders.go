package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/artisanbay/sellerhub/internal/domain"
	"github.com/labstack/echo/v4"
)

// OrderMessageHandler handles the per-order message slot endpoints.
type OrderMessageHandler struct {
	orders domain.OrderMessageRepository
}

// NewOrderMessageHandler creates a new OrderMessageHandler.
func NewOrderMessageHandler(orders domain.OrderMessageRepository) *OrderMessageHandler {
	return &OrderMessageHandler{orders: orders}
}

// SaveBuyerMessage handles POST /api/orders/:id/message.
func (h *OrderMessageHandler) SaveBuyerMessage(c echo.Context) error {
	var req BuyerMessageRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid JSON body")
	}
	msg, errMsg := validateMessage(req.BuyerLatestMessage)
	if errMsg != "" {
		return fail(c, http.StatusBadRequest, errMsg)
	}

	orderID := c.Param("id")
	if err := h.orders.SaveBuyerMessage(c.Request().Context(), orderID, msg); err != nil {
		slog.Error("Failed to save buyer message", "order", orderID, "error", err)
		return fail(c, http.StatusInternalServerError, "failed to save message")
	}
	return ok(c)
}

// SaveSellerMessage handles POST /api/orders/:id/savesellermsg.
func (h *OrderMessageHandler) SaveSellerMessage(c echo.Context) error {
	var req SellerMessageRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid JSON body")
	}
	msg, errMsg := validateMessage(req.SellerLatestMessage)
	if errMsg != "" {
		return fail(c, http.StatusBadRequest, errMsg)
	}

	orderID := c.Param("id")
	if err := h.orders.SaveSellerMessage(c.Request().Context(), orderID, msg); err != nil {
		slog.Error("Failed to save seller message", "order", orderID, "error", err)
		return fail(c, http.StatusInternalServerError, "failed to save message")
	}
	return ok(c)
}

// validateMessage checks the message slot payload. Text must be non-empty
// after trimming and createdAt must be present.
func validateMessage(payload *MessagePayload) (domain.OrderMessage, string) {
	if payload == nil {
		return domain.OrderMessage{}, "message body is required"
	}
	text := strings.TrimSpace(payload.Text)
	if text == "" {
		return domain.OrderMessage{}, "message text is required"
	}
	if payload.CreatedAt == "" {
		return domain.OrderMessage{}, "createdAt is required"
	}
	return domain.OrderMessage{Text: text, CreatedAt: payload.CreatedAt}, ""
}
