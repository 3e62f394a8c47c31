package challenge_sync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/atomic"

	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/config"
)

func TestSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

type SchedulerTestSuite struct {
	suite.Suite
}

func (s *SchedulerTestSuite) newScheduler(pollIntervalMs int64, cycle func(ctx context.Context) error) *Scheduler {
	conf := &config.Config{
		StopTimeout: time.Second * 5,
		Challenge:   config.Challenge{PollIntervalMs: pollIntervalMs},
	}
	return NewScheduler(conf).WithCycle(cycle)
}

func (s *SchedulerTestSuite) TestRunOnceRunsTheCycle() {
	cycles := atomic.NewInt64(0)
	scheduler := s.newScheduler(0, func(ctx context.Context) error {
		cycles.Inc()
		return nil
	})

	assert.True(s.T(), scheduler.RunOnce())
	assert.True(s.T(), scheduler.RunOnce())
	assert.Equal(s.T(), int64(2), cycles.Load())
}

func (s *SchedulerTestSuite) TestConcurrentFireIsSkipped() {
	started := make(chan struct{})
	release := make(chan struct{})
	scheduler := s.newScheduler(0, func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	})

	done := make(chan bool, 1)
	go func() {
		done <- scheduler.RunOnce()
	}()

	<-started
	assert.False(s.T(), scheduler.RunOnce())

	close(release)
	assert.True(s.T(), <-done)
}

func (s *SchedulerTestSuite) TestCycleErrorDoesNotPropagate() {
	scheduler := s.newScheduler(0, func(ctx context.Context) error {
		return errors.New("gateway down")
	})
	assert.True(s.T(), scheduler.RunOnce())
}

func (s *SchedulerTestSuite) TestOneShotModeFinishesAfterStartupCycle() {
	cycles := atomic.NewInt64(0)
	scheduler := s.newScheduler(0, func(ctx context.Context) error {
		cycles.Inc()
		return nil
	})

	err := scheduler.Start()
	assert.NoError(s.T(), err)

	select {
	case <-scheduler.CtxRunning.Done():
	case <-time.After(time.Second * 5):
		s.T().Fatal("scheduler did not finish in one-shot mode")
	}
	assert.Equal(s.T(), int64(1), cycles.Load())
}

func (s *SchedulerTestSuite) TestPeriodicModeKeepsCycling() {
	cycles := atomic.NewInt64(0)
	scheduler := s.newScheduler(10, func(ctx context.Context) error {
		cycles.Inc()
		return nil
	})

	err := scheduler.Start()
	assert.NoError(s.T(), err)
	defer scheduler.StopWait()

	assert.Eventually(s.T(), func() bool {
		return cycles.Load() >= 3
	}, time.Second*5, time.Millisecond*10)
}
