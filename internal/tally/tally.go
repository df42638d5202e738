// Package tally tracks spin/hit counts for live sessions. It is the data
// collection side of the tool: a session accumulates quick-add increments
// on the machine and snapshots to the (spins, hits) observation the
// posterior engine consumes. Sessions live in process memory only.
package tally

import (
	"sync"
	"time"

	"github.com/montanaflynn/stats"

	"settei/domain/core"
	"settei/internal/errors"
)

// Sample is one recorded increment.
type Sample struct {
	Spins int       `json:"spins"`
	Hits  int       `json:"hits"`
	At    time.Time `json:"at"`
}

// Session accumulates spins and hits for one machine sitting.
type Session struct {
	ID        core.SessionID `json:"id"`
	CreatedAt time.Time      `json:"created_at"`

	mu      sync.Mutex
	spins   int
	hits    int
	samples []Sample
}

// Add records an increment. Negative deltas undo earlier presses but never
// push a counter below zero, and hits never exceed spins.
func (s *Session) Add(spins, hits int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.spins += spins
	if s.spins < 0 {
		s.spins = 0
	}
	s.hits += hits
	if s.hits < 0 {
		s.hits = 0
	}
	if s.hits > s.spins {
		s.hits = s.spins
	}
	s.samples = append(s.samples, Sample{Spins: spins, Hits: hits, At: time.Now()})
}

// Observation returns the accumulated (spins, hits) pair.
func (s *Session) Observation() (spins, hits int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spins, s.hits
}

// Summary describes a session's accumulated state plus windowed hit-rate
// statistics across the recorded increments.
type Summary struct {
	ID         core.SessionID `json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	Spins      int            `json:"spins"`
	Hits       int            `json:"hits"`
	HitRatePct float64        `json:"hit_rate_pct"`

	Windows         int     `json:"windows"`
	WindowMeanPct   float64 `json:"window_mean_pct"`
	WindowStdDevPct float64 `json:"window_stddev_pct"`
}

// Summarize computes the session summary. Windowed statistics cover the
// increments that actually added spins; an all-zero session reports zeros.
func (s *Session) Summarize() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		Spins:     s.spins,
		Hits:      s.hits,
	}
	if s.spins > 0 {
		sum.HitRatePct = float64(s.hits) / float64(s.spins) * 100.0
	}

	var rates []float64
	for _, sample := range s.samples {
		if sample.Spins > 0 {
			rates = append(rates, float64(sample.Hits)/float64(sample.Spins)*100.0)
		}
	}
	sum.Windows = len(rates)
	if len(rates) > 0 {
		if mean, err := stats.Mean(rates); err == nil {
			sum.WindowMeanPct = mean
		}
		if sd, err := stats.StandardDeviation(rates); err == nil {
			sum.WindowStdDevPct = sd
		}
	}
	return sum
}

// Registry holds live sessions keyed by ID.
type Registry struct {
	mu       sync.RWMutex
	sessions map[core.SessionID]*Session
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[core.SessionID]*Session)}
}

// Create starts a new session.
func (r *Registry) Create() *Session {
	session := &Session{
		ID:        core.SessionID(core.NewID()),
		CreatedAt: time.Now(),
	}
	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()
	return session
}

// Get returns the session with the given ID.
func (r *Registry) Get(id core.SessionID) (*Session, error) {
	r.mu.RLock()
	session, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.NotFound("tally session")
	}
	return session, nil
}

// Delete removes a session. Deleting an unknown ID is a no-op.
func (r *Registry) Delete(id core.SessionID) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
