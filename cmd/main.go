package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hoanglm/portfolio_watch_bot/config"
	"github.com/hoanglm/portfolio_watch_bot/internal/controller"
	"github.com/hoanglm/portfolio_watch_bot/internal/externalApi/discordApi"
	"github.com/hoanglm/portfolio_watch_bot/internal/externalApi/fmarketApi"
	"github.com/hoanglm/portfolio_watch_bot/internal/externalApi/vciApi"
	"github.com/hoanglm/portfolio_watch_bot/internal/marketdata"
	"github.com/hoanglm/portfolio_watch_bot/internal/model"
	"github.com/hoanglm/portfolio_watch_bot/internal/scheduler"
	"github.com/hoanglm/portfolio_watch_bot/internal/service/portfolioService"
	"github.com/hoanglm/portfolio_watch_bot/internal/transport/httpserver"
	"github.com/jonboulle/clockwork"
)

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	slog.Debug("config", slog.Any("cfg", cfg))

	// Invalid static configuration is the only fatal error class: the
	// scheduling loop must never start with a bad portfolio or timezone.
	loc, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		log.Fatalf("load trading timezone %q: %s", cfg.Schedule.Timezone, err)
	}

	portfolio, err := model.LoadPortfolio(cfg.HoldingsFile)
	if err != nil {
		log.Fatalf("load portfolio: %s", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	vciApiClient := vciApi.New(cfg)
	fmarketApiClient := fmarketApi.New(cfg)
	discordApiClient := discordApi.New(cfg)

	marketData := marketdata.New(vciApiClient, fmarketApiClient)

	portfolioSrv := portfolioService.New(cfg, portfolio, marketData, discordApiClient, loc)

	ctrl := controller.New(cfg, portfolioSrv, loc, clockwork.NewRealClock())
	go ctrl.Run(ctx)

	sched := scheduler.New(loc)
	sched.NewCrontabJob("daily recap", portfolioSrv.RunRecap, cfg.Schedule.RecapCrontab)
	sched.Start()
	defer sched.Stop()

	httpSrv := httpserver.New(cfg)
	httpSrv.Start()
	defer httpSrv.Stop(context.Background())

	// Waiting interruption signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-interrupt
}

func setupLogger(cfg *config.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}
