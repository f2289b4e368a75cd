package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"lerian-claude-advisor/internal/analysis"
	"lerian-claude-advisor/internal/logging"
)

// WSQuickHandler streams quick analysis back to a client as it types a task
// description. Each text message received is treated as the full current
// task text; the reply is the quick-analysis shape for that text.
type WSQuickHandler struct {
	analyzer *analysis.Analyzer
	upgrader websocket.Upgrader
	logger   logging.Logger
}

// wsQuickReply wraps a quick result with the echo of the analyzed text so
// clients can discard replies for stale input.
type wsQuickReply struct {
	Task   string                `json:"task"`
	Result *analysis.QuickResult `json:"result"`
}

const (
	wsWriteTimeout   = 10 * time.Second
	wsMaxMessageSize = 8 * 1024
)

// NewWSQuickHandler creates the websocket quick-analysis handler.
func NewWSQuickHandler(analyzer *analysis.Analyzer, logger logging.Logger) *WSQuickHandler {
	return &WSQuickHandler{
		analyzer: analyzer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The advisor runs on localhost for a local UI; origin checking
			// is the deployment proxy's concern.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger.WithComponent("ws"),
	}
}

// Handle upgrades the connection and serves quick analyses until the client
// disconnects. Input below the minimum task length yields an empty result
// rather than an error: a typing stream should not fail on every keystroke.
func (h *WSQuickHandler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(wsMaxMessageSize)
	h.logger.InfoContext(r.Context(), "websocket client connected", "remote", r.RemoteAddr)

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Error("websocket read failed", "error", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		task := string(data)
		reply := wsQuickReply{Task: task, Result: &analysis.QuickResult{
			Keywords:      []string{},
			TopCategories: []string{},
			Complexity:    analysis.ComplexitySimple,
		}}
		if analysis.ValidateTask(task) == nil {
			reply.Result = h.analyzer.Quick(task)
		}

		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteJSON(reply); err != nil {
			h.logger.Error("websocket write failed", "error", err)
			return
		}
	}
}
