package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type DBConfig struct {
	Driver string `envconfig:"DRIVER" default:"sqlite"`
	URL    string `envconfig:"URL" default:"data/barberia.db"`
}

type ShopConfig struct {
	Timezone          string  `envconfig:"TIMEZONE" default:"America/Caracas"`
	BaseCurrency      string  `envconfig:"BASE_CURRENCY" default:"USD"`
	LocalCurrency     string  `envconfig:"LOCAL_CURRENCY" default:"VES"`
	CommissionPercent float64 `envconfig:"COMMISSION_PERCENT" default:"50"`
	WalkInClientName  string  `envconfig:"WALK_IN_CLIENT_NAME" default:"Público General"`
	PhoneRegion       string  `envconfig:"PHONE_REGION" default:"VE"`
	TopServicesLimit  int     `envconfig:"TOP_SERVICES_LIMIT" default:"5"`
}

type RateConfig struct {
	SourceURL          string        `envconfig:"SOURCE_URL" default:"https://www.bcv.org.ve/"`
	Timeout            time.Duration `envconfig:"TIMEOUT" default:"15s"`
	InsecureSkipVerify bool          `envconfig:"INSECURE_SKIP_VERIFY" default:"true"`
	RefreshSpec        string        `envconfig:"REFRESH_SPEC" default:"@every 30m"`
	StaleAfter         time.Duration `envconfig:"STALE_AFTER" default:"24h"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"ADDR"`
	Password string        `envconfig:"PASSWORD"`
	DB       int           `envconfig:"DB" default:"0"`
	LockTTL  time.Duration `envconfig:"LOCK_TTL" default:"10s"`
}

type AMQPConfig struct {
	URL      string `envconfig:"URL"`
	Exchange string `envconfig:"EXCHANGE" default:"barber-pos.events"`
}

type ArchiveConfig struct {
	Bucket    string `envconfig:"BUCKET"`
	Prefix    string `envconfig:"PREFIX" default:"closings/"`
	Region    string `envconfig:"REGION" default:"us-east-1"`
	Endpoint  string `envconfig:"ENDPOINT"`
	AccessKey string `envconfig:"ACCESS_KEY"`
	SecretKey string `envconfig:"SECRET_KEY"`
}

type LogConfig struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"text"`
}

type Config struct {
	ServerPort string        `envconfig:"SERVER_PORT" default:"8080"`
	DB         DBConfig      `envconfig:"DATABASE"`
	Shop       ShopConfig    `envconfig:"SHOP"`
	Rate       RateConfig    `envconfig:"RATE"`
	Redis      RedisConfig   `envconfig:"REDIS"`
	AMQP       AMQPConfig    `envconfig:"AMQP"`
	Archive    ArchiveConfig `envconfig:"ARCHIVE"`
	Log        LogConfig     `envconfig:"LOG"`
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Shop.CommissionPercent < 0 || cfg.Shop.CommissionPercent > 100 {
		return nil, fmt.Errorf("config: SHOP_COMMISSION_PERCENT out of range: %v", cfg.Shop.CommissionPercent)
	}
	return &cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// CommissionRate returns the commission percentage as a fraction.
func (c *Config) CommissionRate() decimal.Decimal {
	return decimal.NewFromFloat(c.Shop.CommissionPercent).Div(decimal.NewFromInt(100))
}

func (c *Config) ArchiveEnabled() bool {
	return c.Archive.Bucket != ""
}
