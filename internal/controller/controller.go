package controller

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/hoanglm/portfolio_watch_bot/config"
	"github.com/hoanglm/portfolio_watch_bot/internal/model"
	"github.com/hoanglm/portfolio_watch_bot/utils"
	"github.com/jonboulle/clockwork"
)

type CycleRunner interface {
	RunCycle(ctx context.Context, now time.Time)
}

// Controller drives the polling loop. Each iteration it reads the clock once,
// converts to the trading timezone, classifies the moment into a schedule
// state, runs the active-session cycle if due, then sleeps that state's
// delay. The loop exits only when ctx is cancelled; no data or transport
// error ever terminates it.
type Controller struct {
	cfg     *config.Config
	service CycleRunner
	clock   clockwork.Clock
	loc     *time.Location
}

func New(cfg *config.Config, service CycleRunner, loc *time.Location, clock clockwork.Clock) *Controller {
	return &Controller{
		cfg:     cfg,
		service: service,
		clock:   clock,
		loc:     loc,
	}
}

// Classify maps a moment (already in the trading timezone) to a schedule
// state. Saturday and Sunday are weekend regardless of time-of-day; session
// bounds are inclusive on both ends.
func (c *Controller) Classify(now time.Time) model.ScheduleState {
	wd := now.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return model.StateWeekend
	}

	tod := model.TimeOfDayFromTime(now)
	if c.cfg.Schedule.SessionStart <= tod && tod <= c.cfg.Schedule.SessionEnd {
		return model.StateActiveSession
	}

	return model.StateOutsideSession
}

func (c *Controller) delayFor(state model.ScheduleState) time.Duration {
	switch state {
	case model.StateActiveSession:
		return c.cfg.Schedule.PollInterval
	case model.StateWeekend:
		return c.cfg.Schedule.WeekendDelay
	default:
		return c.cfg.Schedule.IdleDelay
	}
}

func (c *Controller) Run(ctx context.Context) {
	slog.Info("controller started",
		slog.String("sessionStart", c.cfg.Schedule.SessionStart.String()),
		slog.String("sessionEnd", c.cfg.Schedule.SessionEnd.String()),
		slog.String("timezone", c.loc.String()),
	)

	for {
		delay := c.step(ctx)

		select {
		case <-ctx.Done():
			slog.Info("controller stopped")
			return
		case <-c.clock.After(delay):
		}
	}
}

// step runs one loop iteration and returns how long to sleep before the next.
func (c *Controller) step(ctx context.Context) time.Duration {
	now := c.clock.Now().In(c.loc)
	state := c.Classify(now)

	slog.Debug("schedule state evaluated", slog.String("state", state.String()), slog.Time("now", now))

	if state == model.StateActiveSession {
		c.runCycleWithRecover(utils.CreateCtxWithRqID(ctx), now)
	}

	return c.delayFor(state)
}

func (c *Controller) runCycleWithRecover(ctx context.Context, now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error(
				"panic recovered in polling cycle",
				slog.Any("panic", r),
				slog.String("stacktrace", string(debug.Stack())),
			)
		}
	}()

	c.service.RunCycle(ctx, now)
}
