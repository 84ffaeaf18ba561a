package scheduler

import (
	"log"
	"time"

	"homehub-backend/internal/auth/usecase"
)

// BlacklistSweeper periodically purges expired token blacklist rows
type BlacklistSweeper struct {
	authUsecase usecase.AuthUsecase
	interval    time.Duration
	stopChan    chan struct{}
}

// NewBlacklistSweeper creates a new sweeper
func NewBlacklistSweeper(authUsecase usecase.AuthUsecase, interval time.Duration) *BlacklistSweeper {
	return &BlacklistSweeper{
		authUsecase: authUsecase,
		interval:    interval,
		stopChan:    make(chan struct{}),
	}
}

// Start begins the sweep loop
func (s *BlacklistSweeper) Start() {
	log.Printf("[Sweeper] Starting token blacklist sweeper (interval: %s)", s.interval)

	go func() {
		// Run immediately on start
		s.RunOnce()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.RunOnce()
			case <-s.stopChan:
				log.Println("[Sweeper] Sweeper stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the sweeper
func (s *BlacklistSweeper) Stop() {
	close(s.stopChan)
}

// RunOnce performs a single sweep. A failed sweep is logged and swallowed:
// stale rows can never cause a token to be wrongly accepted, so the next
// interval simply retries.
func (s *BlacklistSweeper) RunOnce() int64 {
	count, err := s.authUsecase.SweepExpiredTokens()
	if err != nil {
		log.Printf("[Sweeper] Error sweeping expired tokens: %v", err)
		return 0
	}
	if count > 0 {
		log.Printf("[Sweeper] Removed %d expired blacklist entries", count)
	}
	return count
}
