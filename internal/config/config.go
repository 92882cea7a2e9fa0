package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	appenv "github.com/mohamadkhanafer/fitnessapp/internal/env"
)

type Config struct {
	Port string             `env:"PORT" envDefault:"8080"`
	Env  appenv.Environment `env:"ENV" envDefault:"development"`

	// WindowDays is the trailing window baselines are computed over.
	WindowDays int `env:"WINDOW_DAYS" envDefault:"28"`

	// BaselineThreshold is the minimum sample count a metric needs
	// before its baseline is reported.
	BaselineThreshold int `env:"BASELINE_THRESHOLD" envDefault:"7"`

	Database Database `envPrefix:"DB_"`
	Redis    Redis    `envPrefix:"REDIS_"`
	Bridge   Bridge   `envPrefix:"BRIDGE_"`
}

type Database struct {
	// Driver is "sqlite" or "postgres". DSN defaults to the app's
	// config-dir sqlite file when empty.
	Driver string `env:"DRIVER" envDefault:"sqlite"`
	DSN    string `env:"DSN"`
}

type Redis struct {
	// URL enables the snapshot cache when set.
	URL string `env:"URL"`
}

type Bridge struct {
	BaseURL string        `env:"BASE_URL"`
	Token   string        `env:"TOKEN"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}
