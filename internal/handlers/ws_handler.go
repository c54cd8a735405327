// internal/handlers/ws_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"go_5_fit_keep/internal/middleware"
	"go_5_fit_keep/internal/store"
	"go_5_fit_keep/internal/webutil"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = (wsPongWait * 9) / 10
)

type WSHandler struct {
	hub      *store.Hub
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(hub *store.Hub, logger *slog.Logger) *WSHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WSHandler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// CORSはルーター側のミドルウェアで制御するためここでは許可する
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Stream は認証済みユーザーのドキュメント変更をWebSocketで配信するハンドラ
func (h *WSHandler) Stream(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Stream"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade は失敗時に自身でレスポンスを書き込む
		logger.Warn("Failed to upgrade websocket connection", slog.Any("error", err))
		return
	}

	sub := h.hub.Subscribe(store.UserDocumentPrefix(userID.String()))
	logger.Info("WebSocket subscription started", slog.String("user_id", userID.String()))

	go h.writePump(conn, sub, logger)
	h.readPump(conn, sub, logger)
}

// readPump はクライアントからの切断・Pongを監視する。受信メッセージ自体は破棄する
func (h *WSHandler) readPump(conn *websocket.Conn, sub *store.Subscription, logger *slog.Logger) {
	defer func() {
		sub.Close()
		conn.Close()
	}()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("WebSocket closed unexpectedly", slog.Any("error", err))
			}
			return
		}
	}
}

// writePump は購読イベントをJSONで書き出し、定期的にPingを送る
func (h *WSHandler) writePump(conn *websocket.Conn, sub *store.Subscription, logger *slog.Logger) {
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case ev, ok := <-sub.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				logger.Debug("Failed to write websocket event", slog.Any("error", err))
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
