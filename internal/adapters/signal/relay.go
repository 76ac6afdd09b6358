package signal

import (
	"encoding/json"

	"github.com/dkeye/voicehub/internal/domain"
	"github.com/dkeye/voicehub/internal/protocol"
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) handleSendSignal(sid domain.ConnID, data json.RawMessage) {
	var p protocol.SendSignal
	if err := protocol.Decode(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("bad send-signal payload")
		return
	}
	ctl.Orch.RelayOffer(sid, p.UserToSignal, p.Signal)
}

func (ctl *SignalWSController) handleReturnSignal(sid domain.ConnID, data json.RawMessage) {
	var p protocol.ReturnSignal
	if err := protocol.Decode(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("bad return-signal payload")
		return
	}
	ctl.Orch.RelayAnswer(sid, p.CallerID, p.Signal)
}

func (ctl *SignalWSController) handleWhisper(sid domain.ConnID, data json.RawMessage) {
	var p protocol.Whisper
	if err := protocol.Decode(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("bad whisper payload")
		return
	}
	ctl.Orch.Whisper(sid, p.CurrentRoom, p.AudioData, p.WhisperRoomID)
}
