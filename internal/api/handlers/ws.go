package handlers

import (
	"fmt"
	"net/http"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"stockroom/internal/api/ws"
	"stockroom/internal/config"
)

type WebSocketHandler struct {
	cfg      *config.Config
	upgrader websocket.Upgrader
	hub      *ws.Hub
}

func NewWebSocketHandler(cfg *config.Config) *WebSocketHandler {
	return &WebSocketHandler{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		hub: ws.GetHub(),
	}
}

// HandleConnection upgrades the request and keeps the connection registered
// in the hub until the client goes away. The JWT comes in as a query param
// because browsers cannot set headers on websocket dials.
func (h *WebSocketHandler) HandleConnection(c echo.Context) error {
	userID, err := h.authenticate(c.QueryParam("token"))
	if err != nil {
		return ErrUnauthorized(c)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	h.hub.Register(userID, conn)
	defer h.hub.Unregister(userID)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}

func (h *WebSocketHandler) authenticate(tokenStr string) (uuid.UUID, error) {
	if tokenStr == "" {
		return uuid.Nil, fmt.Errorf("missing token")
	}

	token, err := jwtv5.Parse(tokenStr, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(h.cfg.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwtv5.MapClaims)
	if !ok {
		return uuid.Nil, fmt.Errorf("invalid claims")
	}

	idStr, ok := claims["id"].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("missing id claim")
	}

	return uuid.Parse(idStr)
}
