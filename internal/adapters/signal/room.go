package signal

import (
	"encoding/json"

	"github.com/dkeye/voicehub/internal/domain"
	"github.com/dkeye/voicehub/internal/protocol"
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) handleCreateRoom(sid domain.ConnID) {
	if ctl.limiter != nil && !ctl.limiter.Allow(sid) {
		log.Warn().Str("module", "signal").Str("sid", string(sid)).Msg("create-room rate limited")
		return
	}
	ctl.Orch.CreateRoom(sid)
}

func (ctl *SignalWSController) handleJoinRoom(sid domain.ConnID, data json.RawMessage) {
	var p protocol.JoinRoom
	if err := protocol.Decode(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("bad join payload")
		return
	}
	ctl.Orch.JoinRoom(sid, p.RoomID, p.IsAdmin)
}
