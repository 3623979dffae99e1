package server

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	decodeJSON(r, &req)

	stats, err := s.service.RegisterPlayer(req.Name)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, RegisterResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, RegisterResponse{OK: true, Player: &stats})
}

func (s *Server) handleStartMatch(w http.ResponseWriter, r *http.Request) {
	var req StartMatchRequest
	decodeJSON(r, &req)

	summary, err := s.service.StartMatch(req.P1, req.P2)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, StateResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, StateResponse{OK: true, State: &summary})
}

func (s *Server) handlePlayRound(w http.ResponseWriter, r *http.Request) {
	var req PlayRoundRequest
	decodeJSON(r, &req)

	summary, err := s.service.PlayRound(req.P1Move, req.P2Move)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, StateResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, StateResponse{OK: true, State: &summary})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	view := s.service.Leaderboard()
	writeJSON(w, http.StatusOK, LeaderboardResponse{OK: true, Leaderboard: &view})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:        "ok",
		UptimeSeconds: int64(s.service.Uptime().Seconds()),
	})
}

// handleWS subscribes a spectator, seeding it with the current match
// state and leaderboard.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	now := s.service.clock.Now().UTC()

	var welcome []*FeedMessage
	if msg, err := NewFeedMessage(FeedTypeState, s.service.Summary(), now); err == nil {
		welcome = append(welcome, msg)
	}
	if msg, err := NewFeedMessage(FeedTypeLeaderboard, s.service.Leaderboard(), now); err == nil {
		welcome = append(welcome, msg)
	}

	s.feed.HandleWS(w, r, welcome...)
}

// decodeJSON best-effort decodes a request body. Malformed or absent
// bodies leave the request zero-valued so the engine's own validation
// rejects them.
func decodeJSON(r *http.Request, v any) {
	if r.Body == nil {
		return
	}
	_ = json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
