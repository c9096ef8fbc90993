// Package ws serves the interactive chart over a WebSocket. Each connection
// owns one chart and one layout observer, driven by a single read loop.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"stock_chart/internal/api"
	"stock_chart/internal/feature/chart/domain/entity"
	"stock_chart/internal/feature/chart/transport/http/dto"
	"stock_chart/internal/feature/chart/usecase"
	seriesusecase "stock_chart/internal/feature/series/usecase"
	"stock_chart/internal/platform/id"
	"stock_chart/internal/shared/ratelimiter"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	maxMessageSize = 1024
	writeWait      = 5 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
)

var errRateLimited = errors.New("too many messages")

// ChartOpener opens the chart of a symbol.
type ChartOpener interface {
	Open(ctx context.Context, symbol string) (*usecase.Chart, error)
}

// SceneRenderer serialises a scene.
type SceneRenderer interface {
	Render(sc entity.Scene) []byte
}

// Config tunes per-connection limits.
type Config struct {
	// MessagesPerSecond caps client messages; 0 disables the cap.
	MessagesPerSecond int
	// CheckOrigin overrides the upgrader's same-origin check.
	CheckOrigin func(r *http.Request) bool
}

// SessionHandler upgrades requests and runs chart sessions.
type SessionHandler struct {
	charts   ChartOpener
	render   SceneRenderer
	cfg      Config
	upgrader websocket.Upgrader
}

// NewSessionHandler returns a SessionHandler.
func NewSessionHandler(charts ChartOpener, render SceneRenderer, cfg Config) *SessionHandler {
	return &SessionHandler{
		charts: charts,
		render: render,
		cfg:    cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     cfg.CheckOrigin,
		},
	}
}

// Serve opens the chart, then upgrades the connection. Lookup failures are
// answered with a plain JSON error before the upgrade.
//
// GET /charts/:code/ws
func (h *SessionHandler) Serve(c *gin.Context) {
	code := c.Param("code")
	chart, err := h.charts.Open(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, seriesusecase.ErrSeriesNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("open chart failed", "symbol", code, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		slog.Warn("websocket upgrade failed", "symbol", code, "error", err)
		return
	}

	s := &session{
		id:       id.New(),
		symbol:   code,
		conn:     conn,
		chart:    chart,
		observer: usecase.NewObserver(),
		render:   h.render,
		limiter:  ratelimiter.NewRateLimiter(h.cfg.MessagesPerSecond, time.Second),
	}
	s.run(c.Request.Context())
}

type session struct {
	id       string
	symbol   string
	conn     *websocket.Conn
	chart    *usecase.Chart
	observer *usecase.Observer
	render   SceneRenderer
	limiter  ratelimiter.RateLimiterInterface
}

func (s *session) run(ctx context.Context) {
	log := slog.With("session", s.id, "symbol", s.symbol)
	log.Info("chart session opened")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.conn.Close()

	s.chart.Attach(s.observer)
	defer s.chart.Detach()

	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	go s.ping(ctx)

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("chart session read failed", "error", err)
			}
			break
		}

		if err := s.handle(raw); err != nil {
			if werr := s.write(dto.ErrorMessage{Type: dto.TypeError, Error: err.Error()}); werr != nil {
				log.Warn("chart session write failed", "error", werr)
				break
			}
			continue
		}
		if err := s.write(s.scene()); err != nil {
			log.Warn("chart session write failed", "error", err)
			break
		}
	}
	log.Info("chart session closed", "hover", entity.HoverName(s.chart.Hover()))
}

// handle applies one client message to the chart.
func (s *session) handle(raw []byte) error {
	if !s.limiter.Allow() {
		return errRateLimited
	}

	var msg dto.ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return fmt.Errorf("decode message: %w", err)
	}

	switch msg.Type {
	case dto.TypeResize:
		return s.observer.Measure(entity.Dimensions{Width: msg.Width, Height: msg.Height})
	case dto.TypeEnter:
		if msg.Index == nil {
			return errors.New("enter requires an index")
		}
		return s.chart.Enter(*msg.Index)
	case dto.TypeLeave:
		s.chart.Leave()
		return nil
	default:
		return fmt.Errorf("unknown message type %q", msg.Type)
	}
}

func (s *session) scene() dto.SceneMessage {
	sc := s.chart.Scene()
	out := dto.SceneMessage{
		Type:  dto.TypeScene,
		Hover: entity.HoverName(sc.Hover),
		SVG:   string(s.render.Render(sc)),
	}
	if hv, ok := sc.Hover.(entity.Hovering); ok {
		i := hv.Index
		out.Index = &i
	}
	return out
}

func (s *session) write(v any) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(v)
}

// ping keeps the connection alive. WriteControl may run alongside the read loop's writes.
func (s *session) ping(ctx context.Context) {
	t := time.NewTicker(pingPeriod)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
