package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/SkillQuest_Go/internal/logger"
)

// DailyXPResetter clears learners' daily XP counters
type DailyXPResetter interface {
	ResetDailyXP(ctx context.Context) (int64, error)
}

// DailyResetWorker resets daily XP caps at midnight in the configured zone
type DailyResetWorker struct {
	resetter DailyXPResetter
	location *time.Location
	now      func() time.Time

	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewDailyResetWorker creates a new DailyResetWorker. A nil location means UTC.
func NewDailyResetWorker(resetter DailyXPResetter, location *time.Location) *DailyResetWorker {
	if location == nil {
		location = time.UTC
	}
	return &DailyResetWorker{
		resetter: resetter,
		location: location,
		now:      time.Now,
		shutdown: make(chan struct{}),
	}
}

// Start schedules the first reset
func (w *DailyResetWorker) Start() {
	w.scheduleNext()
}

// scheduleNext arms the timer for the next midnight.
// Far-off resets use a standby timer first so clock jumps cannot cause a tight loop.
func (w *DailyResetWorker) scheduleNext() {
	select {
	case <-w.shutdown:
		return
	default:
	}

	duration := timeUntilNextReset(w.now(), w.location)
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}

	if duration > standbyThreshold {
		waitDuration := duration - standbyLead
		w.timer = time.AfterFunc(waitDuration, w.scheduleNext)
		w.mu.Unlock()

		log.Info(LogMsgDailyResetStandby, "next_check_at", w.now().UTC().Add(waitDuration))
		return
	}

	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// Timers may fire early; anything under 23h remaining means midnight has not passed yet
		rem := timeUntilNextReset(w.now(), w.location)
		if rem > earlyFireTolerance && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}

		w.executeReset()
		w.scheduleNext()
	})
	w.mu.Unlock()

	log.Info(LogMsgDailyResetApproach, "next_reset_at", w.now().UTC().Add(duration))
}

// executeReset performs the reset in a tracked goroutine
func (w *DailyResetWorker) executeReset() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		_, _ = w.reset(context.Background())
	}()
}

// ResetNow runs a reset immediately and waits for it
func (w *DailyResetWorker) ResetNow(ctx context.Context) (int64, error) {
	logger.FromContext(ctx).Info(LogMsgDailyResetManualTrigger)
	w.wg.Add(1)
	defer w.wg.Done()
	return w.reset(ctx)
}

func (w *DailyResetWorker) reset(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDailyResetStarting)

	affected, err := w.resetter.ResetDailyXP(ctx)
	if err != nil {
		log.Error(LogMsgDailyResetFailed, "error", err)
		return 0, err
	}

	log.Info(LogMsgDailyResetCompleted, "records_affected", affected)
	return affected, nil
}

// Shutdown cancels the pending timer and waits for in-flight resets
func (w *DailyResetWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down daily reset worker")

	w.mu.Lock()
	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}
	if w.timer != nil {
		w.timer.Stop()
		log.Info("Cancelled pending daily reset")
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Daily reset worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Daily reset worker shutdown timeout, a reset may still be running")
		return ctx.Err()
	}
}

// timeUntilNextReset returns the duration from now until the next midnight in loc
func timeUntilNextReset(now time.Time, loc *time.Location) time.Duration {
	local := now.In(loc)
	nextReset := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	if !nextReset.After(local) {
		nextReset = nextReset.AddDate(0, 0, 1)
	}
	return nextReset.Sub(local)
}
