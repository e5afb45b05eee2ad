package scheduler

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/hoanglm/portfolio_watch_bot/utils"
)

type taskFn func(ctx context.Context) error

// Scheduler wraps gocron for fixed-time jobs evaluated in the trading
// timezone, currently the end-of-day recap dispatch.
type Scheduler struct {
	scheduler gocron.Scheduler
}

func New(loc *time.Location) *Scheduler {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		panic(err.Error())
	}
	return &Scheduler{scheduler: scheduler}
}

func (s *Scheduler) Start() {
	s.scheduler.Start()
}

func (s *Scheduler) Stop() {
	_ = s.scheduler.Shutdown()
}

// NewCrontabJob registers fn under a crontab spec with seconds field.
func (s *Scheduler) NewCrontabJob(name string, fn taskFn, crontab string) {
	opts := []gocron.JobOption{gocron.WithSingletonMode(gocron.LimitModeReschedule)}

	_, err := s.scheduler.NewJob(
		gocron.CronJob(crontab, true),
		gocron.NewTask(s.taskWithRecover(fn, name)),
		opts...,
	)

	if err != nil {
		slog.Error("Scheduler creating job error", slog.String("jobName", name))
		panic(err.Error())
	}
}

func (s *Scheduler) taskWithRecover(fn taskFn, jobName string) func(ctx context.Context) {
	return func(ctx context.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error(
					"Panic recovered in scheduler job",
					slog.String("jobName", jobName),
					slog.Any("panic", r),
					slog.String("stacktrace", string(debug.Stack())),
				)
			}
		}()

		ctx = utils.CreateCtxWithRqID(ctx)

		slog.Info("job start", slog.String("jobName", jobName))

		err := fn(ctx)
		if err != nil {
			slog.Error("job failed", slog.String("jobName", jobName), slog.Any("error", err))
		} else {
			slog.Info("job completed", slog.String("jobName", jobName))
		}
	}
}
