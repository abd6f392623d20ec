// Package socket is the websocket transport for the chat engine: one JSON
// envelope per event, dispatched by its "type" field.
package socket

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Banter/internal/chat"
	"github.com/dkeye/Banter/internal/config"
	"github.com/dkeye/Banter/internal/domain"
)

var ErrBackpressure = errors.New("backpressure")

type Controller struct {
	engine   *chat.Engine
	table    *Table
	limiter  *connRateLimiter
	cfg      *config.Config
	upgrader websocket.Upgrader
}

func NewController(engine *chat.Engine, table *Table, cfg *config.Config) *Controller {
	origin := cfg.AllowedOrigin
	return &Controller{
		engine:  engine,
		table:   table,
		limiter: newConnRateLimiter(cfg.RateLimit, cfg.RateInterval),
		cfg:     cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return origin == "*" || r.Header.Get("Origin") == origin
			},
		},
	}
}

type wsConn struct {
	conn *websocket.Conn
	send chan []byte

	mu     sync.RWMutex
	closed bool
}

func (c *wsConn) TrySend(data []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- data:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *wsConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

// Handle upgrades the request and runs the connection's pumps. Each
// connection gets a fresh id; the same browser opening two tabs is two
// connections.
func (ctl *Controller) Handle(ctx context.Context, c *gin.Context) {
	id := domain.ConnID(uuid.NewString())
	log.Info().Str("module", "socket").Str("conn", string(id)).Str("client", c.GetString("client_token")).Msg("new WS connection")

	ws, err := ctl.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "socket").Msg("ws upgrade")
		return
	}
	ws.SetReadLimit(ctl.cfg.ReadLimit)

	conn := &wsConn{
		conn: ws,
		send: make(chan []byte, 32),
	}
	ctl.table.Add(id, conn)

	ctx, cancel := context.WithCancel(ctx)
	go ctl.writePump(ctx, conn)
	go ctl.readPump(ctx, cancel, id, conn)
}
