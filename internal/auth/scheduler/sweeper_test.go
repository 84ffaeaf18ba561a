package scheduler

import (
	"sync"
	"testing"
	"time"

	"homehub-backend/internal/auth/usecase"

	"github.com/stretchr/testify/assert"
)

type stubSweepUsecase struct {
	usecase.AuthUsecase
	mu     sync.Mutex
	counts []int64
	errs   []error
	calls  int
}

func (s *stubSweepUsecase) SweepExpiredTokens() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.calls
	s.calls++
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	var count int64
	if i < len(s.counts) {
		count = s.counts[i]
	}
	return count, err
}

func (s *stubSweepUsecase) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestRunOnce_ReportsCount(t *testing.T) {
	stub := &stubSweepUsecase{counts: []int64{3, 0}}
	sweeper := NewBlacklistSweeper(stub, time.Hour)

	assert.Equal(t, int64(3), sweeper.RunOnce())
	assert.Equal(t, int64(0), sweeper.RunOnce())
	assert.Equal(t, 2, stub.callCount())
}

func TestRunOnce_SwallowsErrors(t *testing.T) {
	stub := &stubSweepUsecase{errs: []error{assert.AnError}}
	sweeper := NewBlacklistSweeper(stub, time.Hour)

	// A failing sweep must not panic or propagate; it just reports zero.
	assert.Equal(t, int64(0), sweeper.RunOnce())
}

func TestStartStop(t *testing.T) {
	stub := &stubSweepUsecase{}
	sweeper := NewBlacklistSweeper(stub, time.Hour)

	sweeper.Start()
	// Start runs an immediate sweep before the first tick.
	assert.Eventually(t, func() bool { return stub.callCount() >= 1 }, time.Second, 10*time.Millisecond)
	sweeper.Stop()
}
