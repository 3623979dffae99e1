package server

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/rpsarena/internal/game"
	"github.com/lox/rpsarena/internal/leaderboard"
	"github.com/lox/rpsarena/internal/player"
)

// broadcaster receives state pushed after successful mutations. The
// feed implements it; a nil broadcaster disables pushing.
type broadcaster interface {
	Broadcast(messageType string, data any)
}

// Service is the locked facade over the match engine and the player
// registry. One mutex serializes every mutation and every read used to
// build a response; the engine and registry themselves are lock-free.
type Service struct {
	mu       sync.Mutex
	registry *player.Registry
	engine   *game.Engine
	logger   *log.Logger
	clock    quartz.Clock
	metrics  *Metrics
	feed     broadcaster
	started  time.Time
}

// NewService creates a service with a fresh registry and idle engine.
func NewService(logger *log.Logger, clock quartz.Clock, metrics *Metrics) *Service {
	registry := player.NewRegistry()
	return &Service{
		registry: registry,
		engine:   game.NewEngine(registry, logger),
		logger:   logger.WithPrefix("service"),
		clock:    clock,
		metrics:  metrics,
		started:  clock.Now(),
	}
}

// SetFeed attaches a broadcast sink for state updates.
func (s *Service) SetFeed(f broadcaster) {
	s.feed = f
}

// RegisterPlayer creates a player on first reference and returns a copy
// of its stats. Registering an existing name is a no-op lookup.
func (s *Service) RegisterPlayer(name string) (player.Stats, error) {
	s.mu.Lock()
	before := s.registry.Len()
	ps, err := s.registry.Ensure(name)
	if err != nil {
		s.mu.Unlock()
		return player.Stats{}, err
	}
	created := s.registry.Len() > before
	stats := *ps
	view := leaderboard.Render(s.registry.Snapshot())
	s.mu.Unlock()

	if created {
		s.metrics.PlayersRegistered.Inc()
		s.logger.Info("Player registered", "name", stats.Name)
		s.broadcast(FeedTypeLeaderboard, view)
	}
	return stats, nil
}

// StartMatch starts a new match, applying the winner-stays-on rule.
func (s *Service) StartMatch(p1, p2 string) (game.Summary, error) {
	s.mu.Lock()
	summary, err := s.engine.StartMatch(p1, p2)
	s.mu.Unlock()
	if err != nil {
		return game.Summary{}, err
	}

	s.metrics.MatchesStarted.Inc()
	s.metrics.MatchActive.Set(1)
	s.broadcast(FeedTypeState, summary)
	return summary, nil
}

// PlayRound resolves one round of the active match.
func (s *Service) PlayRound(p1Move, p2Move string) (game.Summary, error) {
	s.mu.Lock()
	before := s.engine.Summary()
	summary, err := s.engine.PlayRound(p1Move, p2Move)
	var view leaderboard.View
	if err == nil {
		view = leaderboard.Render(s.registry.Snapshot())
	}
	s.mu.Unlock()
	if err != nil {
		return game.Summary{}, err
	}

	s.metrics.RoundsPlayed.WithLabelValues(roundOutcome(before, summary)).Inc()
	if !summary.Active {
		s.metrics.MatchesFinished.Inc()
		s.metrics.MatchActive.Set(0)
	}
	s.broadcast(FeedTypeState, summary)
	s.broadcast(FeedTypeLeaderboard, view)
	return summary, nil
}

// Summary returns the current match projection.
func (s *Service) Summary() game.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Summary()
}

// Leaderboard renders both sort orders from a registry snapshot.
func (s *Service) Leaderboard() leaderboard.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return leaderboard.Render(s.registry.Snapshot())
}

// Uptime reports how long the service has been running.
func (s *Service) Uptime() time.Duration {
	return s.clock.Now().Sub(s.started)
}

func (s *Service) broadcast(messageType string, data any) {
	if s.feed == nil {
		return
	}
	s.feed.Broadcast(messageType, data)
}

// roundOutcome labels the round just appended for metrics. The round
// winner is compared against the names as they were before the call,
// since finalization may have rewritten the p1/p2 slots.
func roundOutcome(before, after game.Summary) string {
	if len(after.RoundHistory) == 0 {
		return "tie"
	}
	rec := after.RoundHistory[len(after.RoundHistory)-1]
	switch rec.RoundWinner {
	case "":
		return "tie"
	case before.P1:
		return "p1"
	default:
		return "p2"
	}
}
