// Package rtc describes the WebRTC side the browsers need from us. Media
// flows peer to peer, so the server only advertises ICE servers.
package rtc

import (
	"strings"

	"github.com/dkeye/voicehub/internal/config"
	"github.com/pion/webrtc/v4"
)

// ICEServer is one RTCIceServer entry as the browser reads it.
type ICEServer struct {
	URLs       []string `json:"urls"`
	Username   string   `json:"username,omitempty"`
	Credential any      `json:"credential,omitempty"`
}

// ICEConfig is the body of GET /api/ice-servers. The field names match
// what RTCPeerConnection expects.
type ICEConfig struct {
	ICEServers         []ICEServer               `json:"iceServers"`
	ICETransportPolicy webrtc.ICETransportPolicy `json:"iceTransportPolicy"`
}

// ICEFromConfig builds the configuration advertised to clients. TURN
// entries get the configured credentials, STUN entries never do.
func ICEFromConfig(cfg *config.Config) ICEConfig {
	servers := make([]ICEServer, 0, 2)
	for _, s := range pionServers(cfg) {
		out := ICEServer{URLs: s.URLs, Username: s.Username}
		if s.Credential != "" {
			out.Credential = s.Credential
		}
		servers = append(servers, out)
	}
	return ICEConfig{
		ICEServers:         servers,
		ICETransportPolicy: webrtc.NewICETransportPolicy(cfg.ICETransportPolicy),
	}
}

func pionServers(cfg *config.Config) []webrtc.ICEServer {
	var stun, turn []string
	for _, u := range cfg.ICEServers {
		if strings.HasPrefix(u, "turn:") || strings.HasPrefix(u, "turns:") {
			turn = append(turn, u)
			continue
		}
		stun = append(stun, u)
	}

	servers := make([]webrtc.ICEServer, 0, 2)
	if len(stun) > 0 {
		servers = append(servers, webrtc.ICEServer{URLs: stun})
	}
	if len(turn) > 0 {
		server := webrtc.ICEServer{URLs: turn}
		if cfg.ICEUsername != "" {
			server.Username = cfg.ICEUsername
		}
		if cfg.ICECredential != "" {
			server.Credential = cfg.ICECredential
		}
		servers = append(servers, server)
	}
	return servers
}
