// Package stream serves computed RCS products to plotting clients over
// WebSocket. The engine stays presentation-free; this feed just carries the
// numeric arrays downstream consumers plot.
package stream

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/rcsview/rcsview/internal/engine"
	"github.com/rcsview/rcsview/internal/export"
	"github.com/rcsview/rcsview/internal/isar"
	"github.com/rcsview/rcsview/internal/logging"
	"github.com/rcsview/rcsview/internal/preset"
	"github.com/rcsview/rcsview/internal/profile"
)

// Message types sent to clients.
const (
	TypeDatasetInfo  = "dataset:info"
	TypeConfigState  = "config:state"
	TypeConfigResult = "config:result"
	TypeProfileFrame = "profile:frame"
	TypeImageFrame   = "image:frame"
	TypeError        = "error"
)

// Message is the envelope for every frame on the wire.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Request is what clients send: a configure action carrying preset-shaped
// settings, or a request action naming a product.
type Request struct {
	Action   string         `json:"action"`
	Settings *preset.Preset `json:"settings,omitempty"`
	Product  string         `json:"product,omitempty"`
}

// DatasetInfo describes the served dataset to a connecting client.
type DatasetInfo struct {
	Name           string   `json:"name"`
	Solution       string   `json:"solution"`
	FrequencyUnits string   `json:"frequency_units"`
	ModelUnits     string   `json:"model_units"`
	Frequencies    []string `json:"frequencies"`
	Thetas         []string `json:"thetas,omitempty"`
	Phis           []string `json:"phis,omitempty"`
}

// ConfigResult mirrors a setter outcome onto the wire.
type ConfigResult struct {
	OK         bool   `json:"ok"`
	Diagnostic string `json:"diagnostic,omitempty"`
}

// Server owns the engine for all connected clients. Requests are handled
// one at a time: the engine is a single-owner object, so configure and
// compute are serialized behind a mutex.
type Server struct {
	eng      *engine.Engine
	logger   logging.Logger
	upgrader websocket.Upgrader

	mu sync.Mutex
}

// NewServer creates a product feed over eng.
func NewServer(eng *engine.Engine, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.Default()
	}
	return &Server{
		eng:    eng,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Handler returns the HTTP handler exposing the feed at its mount point.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/products", s.handleProducts)
	return mux
}

// ListenAndServe serves the feed on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Infof("serving product feed on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warnf("upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	if err := s.sendDatasetInfo(conn); err != nil {
		return
	}
	if err := s.sendConfigState(conn); err != nil {
		return
	}

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		if err := s.handleRequest(conn, req); err != nil {
			return
		}
	}
}

func (s *Server) handleRequest(conn *websocket.Conn, req Request) error {
	switch req.Action {
	case "configure":
		return s.handleConfigure(conn, req)
	case "request":
		return s.handleProduct(conn, req)
	default:
		return send(conn, TypeError, fmt.Sprintf("unknown action %q", req.Action))
	}
}

func (s *Server) handleConfigure(conn *websocket.Conn, req Request) error {
	if req.Settings == nil {
		return send(conn, TypeError, "configure carries no settings")
	}

	s.mu.Lock()
	results := req.Settings.Apply(s.eng)
	s.mu.Unlock()

	wire := make([]ConfigResult, len(results))
	for i, res := range results {
		wire[i] = ConfigResult{OK: res.OK, Diagnostic: res.Diagnostic}
	}
	if err := send(conn, TypeConfigResult, wire); err != nil {
		return err
	}
	return s.sendConfigState(conn)
}

func (s *Server) handleProduct(conn *websocket.Conn, req Request) error {
	switch req.Product {
	case "profile":
		s.mu.Lock()
		prof := profile.NewProcessor(s.eng).RangeProfile()
		payload := export.NewProfileExport(prof, s.eng.Name(), s.eng.Solution())
		s.mu.Unlock()
		return send(conn, TypeProfileFrame, payload)
	case "image":
		s.mu.Lock()
		img := isar.NewProcessor(s.eng).CrossRangeImage()
		payload := export.NewImageExport(img, s.eng.Name(), s.eng.Solution())
		s.mu.Unlock()
		return send(conn, TypeImageFrame, payload)
	default:
		return send(conn, TypeError, fmt.Sprintf("unknown product %q", req.Product))
	}
}

func (s *Server) sendDatasetInfo(conn *websocket.Conn) error {
	s.mu.Lock()
	info := DatasetInfo{
		Name:           s.eng.Name(),
		Solution:       s.eng.Solution(),
		FrequencyUnits: s.eng.FrequencyUnits(),
		ModelUnits:     s.eng.ModelUnits(),
		Frequencies:    s.eng.Frequencies(),
		Thetas:         s.eng.AvailableIncidentWaveTheta(),
		Phis:           s.eng.AvailableIncidentWavePhi(),
	}
	s.mu.Unlock()
	return send(conn, TypeDatasetInfo, info)
}

func (s *Server) sendConfigState(conn *websocket.Conn) error {
	s.mu.Lock()
	state := preset.FromEngine(s.eng)
	s.mu.Unlock()
	return send(conn, TypeConfigState, state)
}

func send(conn *websocket.Conn, msgType string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return conn.WriteJSON(Message{Type: msgType, Data: data})
}
