package handler

import (
	"ai-docqa-client/internal/pkg/logger"
	internalWS "ai-docqa-client/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// StateHandler streams state-change envelopes to browser shells.
type StateHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewStateHandler(hub *internalWS.Hub, log logger.ILogger) *StateHandler {
	return &StateHandler{hub: hub, logger: log}
}

func (h *StateHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/ws", h.ServeWs)
}

func (h *StateHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	remote := c.IP()
	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("StateHandler", "Starting WebSocket session", map[string]interface{}{"remote": remote})
		internalWS.ServeWs(h.hub, conn)
		h.logger.Info("StateHandler", "WebSocket session ended", map[string]interface{}{"remote": remote})
	})(c)
}
