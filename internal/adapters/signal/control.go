package signal

import "github.com/dkeye/voicehub/internal/protocol"

func (ctl *SignalWSController) handlePing(conn *WsSignalConn) {
	ctl.sendEvent(conn, protocol.EventPong, nil)
}
