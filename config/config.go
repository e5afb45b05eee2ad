package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/hoanglm/portfolio_watch_bot/internal/model"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel     string `env:"LOG_LEVEL"`
	HoldingsFile string `env:"HOLDINGS_FILE"`
	API          API
	Discord      Discord
	Schedule     Schedule
	HTTP         HTTP
}

type API struct {
	Debug      bool          `env:"API_DEBUG"`
	Timeout    time.Duration `env:"API_TIMEOUT"`
	VciApi     VciApi
	FmarketApi FmarketApi
}

type VciApi struct {
	Url string `env:"VCI_API_URL"`
}

type FmarketApi struct {
	Url string `env:"FMARKET_API_URL"`
}

type Discord struct {
	WebhookUrl string `env:"DISCORD_WEBHOOK_URL"`
}

type Schedule struct {
	Timezone        string          `env:"TRADING_TIMEZONE" envDefault:"Asia/Ho_Chi_Minh"`
	SessionStart    model.TimeOfDay `env:"SESSION_START" envDefault:"09:00"`
	SessionEnd      model.TimeOfDay `env:"SESSION_END" envDefault:"15:00"`
	BlackoutWindows []model.Window  `env:"BLACKOUT_WINDOWS" envSeparator:"," envDefault:"11:30-13:00"`
	PollInterval    time.Duration   `env:"POLL_INTERVAL" envDefault:"1m"`
	IdleDelay       time.Duration   `env:"IDLE_DELAY" envDefault:"1m"`
	WeekendDelay    time.Duration   `env:"WEEKEND_DELAY" envDefault:"1h"`
	RecapCrontab    string          `env:"RECAP_CRONTAB" envDefault:"0 5 15 * * 1-5"`
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{}

	opts := env.Options{RequiredIfNoDef: true}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	return cfg
}
