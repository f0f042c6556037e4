package account

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/signup/internal/cachemanager"
	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/registration"
)

// DefaultDelay is the artificial latency of the simulated backend.
const DefaultDelay = 1500 * time.Millisecond

// DefaultDuplicateWindow is how long an email stays reserved.
const DefaultDuplicateWindow = 10 * time.Minute

// ErrSimulatedFailure is returned on every FailEvery-th call.
var ErrSimulatedFailure = errors.New("simulated backend failure")

// SimulatedConfig configures a Simulated backend.
type SimulatedConfig struct {
	Delay           time.Duration
	DuplicateWindow time.Duration
	// FailEvery fails every Nth call when > 0.
	FailEvery int
}

// Simulated accepts registrations after a delay without persisting them.
// Emails are remembered for DuplicateWindow so a second registration with the
// same address is refused.
type Simulated struct {
	cfg   SimulatedConfig
	seen  cachemanager.CacheManager[string, time.Time]
	now   func() time.Time
	mu    sync.Mutex
	calls int
}

// NewSimulated returns a Simulated backend. A zero DuplicateWindow uses
// DefaultDuplicateWindow.
func NewSimulated(cfg SimulatedConfig) *Simulated {
	if cfg.DuplicateWindow <= 0 {
		cfg.DuplicateWindow = DefaultDuplicateWindow
	}
	return &Simulated{
		cfg:  cfg,
		seen: cachemanager.NewInMemoryCacheManager[string, time.Time]("registered-emails", cfg.DuplicateWindow, cachemanager.DefaultCleanupInterval),
		now:  time.Now,
	}
}

// Create waits for the configured delay and returns a fresh receipt.
func (s *Simulated) Create(ctx context.Context, in registration.Input) (Receipt, error) {
	if s.cfg.Delay > 0 {
		timer := time.NewTimer(s.cfg.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Receipt{}, ctx.Err()
		case <-timer.C:
		}
	}

	s.mu.Lock()
	s.calls++
	call := s.calls
	s.mu.Unlock()

	if s.cfg.FailEvery > 0 && call%s.cfg.FailEvery == 0 {
		log.Warn(log.CatAccount, "injected failure", "call", call)
		return Receipt{}, ErrSimulatedFailure
	}

	now := s.now()
	email := normalizeEmail(in.Email)
	if !s.seen.Add(ctx, email, now, s.cfg.DuplicateWindow) {
		log.Info(log.CatAccount, "duplicate email refused", "email", email)
		return Receipt{}, fmt.Errorf("%w: %s", ErrDuplicateEmail, email)
	}

	receipt := Receipt{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: now,
	}
	log.Info(log.CatAccount, "registration accepted", "id", receipt.ID, "record", fmt.Sprintf("%+v", in.Redacted()))
	return receipt, nil
}
