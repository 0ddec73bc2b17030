package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	DB        DBConfig        `mapstructure:"db"`
	Cron      CronConfig      `mapstructure:"cron"`
	Provider  ProviderConfig  `mapstructure:"provider"`
	Collector CollectorConfig `mapstructure:"collector"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

type DBConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	Timezone        string        `mapstructure:"timezone"`
}

type CronConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Collect string `mapstructure:"collect"`
}

type ProviderConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CollectorConfig drives the scheduled chain collection run. TargetTime is
// exchange wall-clock ("HH:MM" in ExchangeTimezone), not UTC.
type CollectorConfig struct {
	Tickers           []string `mapstructure:"tickers"`
	ExchangeTimezone  string   `mapstructure:"exchange_timezone"`
	TargetTime        string   `mapstructure:"target_time"`
	ToleranceMinutes  int      `mapstructure:"tolerance_minutes"`
	StoreRawSnapshots bool     `mapstructure:"store_raw_snapshots"`
	RunOnStartup      bool     `mapstructure:"run_on_startup"`
}

func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ZD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("db.conn_max_idle_time", "5m")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("cron.enabled", true)
	// Every minute on weekdays; the collection gate narrows this to the
	// tolerance window around collector.target_time.
	v.SetDefault("cron.collect", "0 * * * * MON-FRI")
	v.SetDefault("provider.base_url", "https://query2.finance.yahoo.com")
	v.SetDefault("provider.timeout", "15s")
	v.SetDefault("collector.tickers", []string{"SPY", "QQQ"})
	v.SetDefault("collector.exchange_timezone", "America/New_York")
	v.SetDefault("collector.target_time", "11:30")
	v.SetDefault("collector.tolerance_minutes", 5)
	v.SetDefault("collector.store_raw_snapshots", false)
	v.SetDefault("collector.run_on_startup", false)

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
