package handlers

import (
	"context"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/latestcomment/interview-cards/internal/services"
	"go.uber.org/zap"
)

const wsUserLocal = "ws_user_id"

// lockedWriter serializes writes; the hub and the handler both write to the
// same connection.
type lockedWriter struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (w *lockedWriter) WriteJSON(v interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteJSON(v)
}

type WebSocketHandler struct {
	Interviews *services.InterviewService
	Hub        *services.CardHub

	logger *zap.Logger
}

func NewWebSocketHandler(interviews *services.InterviewService, hub *services.CardHub, logger *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{Interviews: interviews, Hub: hub, logger: logger}
}

// WebSocketMiddleware admits upgrade requests from signed-in users only.
func (h *WebSocketHandler) WebSocketMiddleware(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	user := currentUser(c)
	if user == nil {
		return toFiberError(services.ErrUserRequired)
	}
	c.Locals(wsUserLocal, user.ID)
	return c.Next()
}

// HandleWebSocket sends the user's current cards, then stays subscribed until
// the client goes away. Incoming frames are ignored.
func (h *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	defer func() {
		_ = c.Close()
	}()

	uid, _ := c.Locals(wsUserLocal).(string)
	if uid == "" {
		return
	}

	w := &lockedWriter{conn: c}
	sub := h.Hub.Subscribe(uid, w)
	defer h.Hub.Unsubscribe(sub)

	for _, card := range h.Interviews.Cards(context.Background(), h.Interviews.ListByUser(uid), uid) {
		if err := w.WriteJSON(card); err != nil {
			h.logger.Debug("initial card write failed", zap.String("user_id", uid), zap.Error(err))
			return
		}
	}

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
