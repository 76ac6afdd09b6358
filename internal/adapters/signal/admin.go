package signal

import (
	"encoding/json"

	"github.com/dkeye/voicehub/internal/domain"
	"github.com/dkeye/voicehub/internal/protocol"
	"github.com/rs/zerolog/log"
)

// handleAdmin decodes mute-user, unmute-user and remove-user. Whether the
// sender may moderate is decided by the orchestrator.
func (ctl *SignalWSController) handleAdmin(sid domain.ConnID, event string, data json.RawMessage) {
	var p protocol.AdminCommand
	if err := protocol.Decode(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Str("event", event).Msg("bad admin payload")
		return
	}

	switch event {
	case protocol.EventMuteUser:
		ctl.Orch.MuteUser(sid, p.RoomID, p.UserID)
	case protocol.EventUnmuteUser:
		ctl.Orch.UnmuteUser(sid, p.RoomID, p.UserID)
	case protocol.EventRemoveUser:
		ctl.Orch.RemoveUser(sid, p.RoomID, p.UserID)
	}
}
