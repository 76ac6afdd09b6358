package signal

import (
	"context"
	"errors"
	"time"

	"github.com/dkeye/voicehub/internal/domain"
	"github.com/dkeye/voicehub/internal/protocol"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) writePump(ctx context.Context, c *WsSignalConn) {
	ticker := time.NewTicker(ctl.opts.PingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Str("module", "signal").Msg("writePump ctx done")
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(ctl.opts.WriteWait))
			return
		case data, ok := <-c.send:
			if !ok {
				log.Debug().Str("module", "signal").Msg("writePump channel closed")
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(ctl.opts.WriteWait)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(ctl.opts.WriteWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Debug().Err(err).Str("module", "signal").Msg("writePump ping failed")
				return
			}
		}
	}
}

// readPump owns the read side. When it returns, the connection is gone
// and the orchestrator reconciles the rooms.
func (ctl *SignalWSController) readPump(ctx context.Context, cancel context.CancelFunc, sid domain.ConnID, c *WsSignalConn) {
	defer func() {
		log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("readPump closing")
		cancel()
		ctl.Orch.Disconnect(sid)
		if ctl.limiter != nil {
			ctl.limiter.Forget(sid)
		}
		c.Close()
	}()

	c.conn.SetReadLimit(ctl.opts.ReadLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(ctl.opts.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(ctl.opts.PongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) && ctx.Err() == nil {
				log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("readPump read error")
			}
			return
		}
		ctl.dispatch(sid, c, data)
	}
}

// dispatch routes one inbound frame. Malformed or unknown frames are
// dropped without a reply.
func (ctl *SignalWSController) dispatch(sid domain.ConnID, c *WsSignalConn, raw []byte) {
	env, err := protocol.Parse(raw)
	if err != nil {
		if errors.Is(err, protocol.ErrUnknownEvent) {
			log.Warn().Str("module", "signal").Str("sid", string(sid)).Str("type", env.Type).Msg("unknown signal")
		} else {
			log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("bad json")
		}
		return
	}
	ctl.Orch.Metrics.Events.WithLabelValues(env.Type).Inc()

	switch env.Type {
	case protocol.EventCreateRoom:
		ctl.handleCreateRoom(sid)
	case protocol.EventJoinRoom:
		ctl.handleJoinRoom(sid, env.Data)
	case protocol.EventSendSignal:
		ctl.handleSendSignal(sid, env.Data)
	case protocol.EventReturnSignal:
		ctl.handleReturnSignal(sid, env.Data)
	case protocol.EventWhisper:
		ctl.handleWhisper(sid, env.Data)
	case protocol.EventMuteUser, protocol.EventUnmuteUser, protocol.EventRemoveUser:
		ctl.handleAdmin(sid, env.Type, env.Data)
	case protocol.EventPing:
		ctl.handlePing(c)
	}
}

func (ctl *SignalWSController) sendEvent(c *WsSignalConn, event string, data any) {
	f, err := protocol.Encode(event, data)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("sendEvent encode")
		return
	}
	_ = c.TrySend(f)
}
