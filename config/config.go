package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"task-scheduler/pkg/timeblock"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Storage
	Postgres PostgresConfig
	Redis    RedisConfig

	// Integrations
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig

	// Scheduling
	Scheduler SchedulerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
	MaxKeys        int
	TTL            time.Duration
}

// PostgresConfig selects the task store. An empty DSN keeps tasks in memory.
type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig selects the lock backend. An empty Addr uses in-process locks.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	LockTTL  time.Duration
	LockWait time.Duration
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string
	// NgrokAPI is a local ngrok inspection API used to discover the public URL when WebhookURL is empty.
	NgrokAPI string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	LookaheadDays   int
}

// SchedulerConfig shapes the slot grid. Times are "15:04".
type SchedulerConfig struct {
	Timezone     string
	DayStart     string
	DayEnd       string
	GridStep     int
	FallbackTime string
	DefaultTimes []string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxKeys = viper.GetInt("rate_limit.max_keys")
	cfg.RateLimit.TTL = viper.GetDuration("rate_limit.ttl")

	// Storage
	cfg.Postgres.DSN = expandEnvVar(viper.GetString("postgres.dsn"))
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")

	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = expandEnvVar(viper.GetString("redis.password"))
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.LockTTL = viper.GetDuration("redis.lock_ttl")
	cfg.Redis.LockWait = viper.GetDuration("redis.lock_wait")

	// Integrations
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = expandEnvVar(viper.GetString("telegram.secret_token"))
	cfg.Telegram.NgrokAPI = viper.GetString("telegram.ngrok_api")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.LookaheadDays = viper.GetInt("google_calendar.lookahead_days")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Scheduling
	cfg.Scheduler.Timezone = viper.GetString("scheduler.timezone")
	cfg.Scheduler.DayStart = viper.GetString("scheduler.day_start")
	cfg.Scheduler.DayEnd = viper.GetString("scheduler.day_end")
	cfg.Scheduler.GridStep = viper.GetInt("scheduler.grid_step")
	cfg.Scheduler.FallbackTime = viper.GetString("scheduler.fallback_time")
	cfg.Scheduler.DefaultTimes = splitList(viper.GetStringSlice("scheduler.default_times"))

	if err := validateSchedulerConfig(&cfg.Scheduler); err != nil {
		return nil, fmt.Errorf("invalid scheduler config: %w", err)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)
	viper.SetDefault("rate_limit.max_keys", 1000)
	viper.SetDefault("rate_limit.ttl", "5m")

	viper.SetDefault("postgres.max_open_conns", 10)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.conn_max_lifetime", "30m")
	viper.SetDefault("redis.lock_ttl", "30s")
	viper.SetDefault("redis.lock_wait", "10s")

	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.lookahead_days", 14)

	viper.SetDefault("scheduler.timezone", "Asia/Shanghai")
	viper.SetDefault("scheduler.day_start", "07:00")
	viper.SetDefault("scheduler.day_end", "22:00")
	viper.SetDefault("scheduler.grid_step", timeblock.GridStep)
	viper.SetDefault("scheduler.fallback_time", "21:00")
	viper.SetDefault("scheduler.default_times", []string{"09:30", "14:00", "19:00"})
}

// expandEnvVar expands values written as ${VAR_NAME}.
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	envVar := value[2 : len(value)-1]
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// splitList flattens a yaml list and comma separated env values into one list.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, f := range strings.Split(item, ",") {
			if f = strings.TrimSpace(f); f != "" {
				out = append(out, f)
			}
		}
	}
	return out
}

// validateSchedulerConfig checks that every clock parses and the grid is non-empty.
func validateSchedulerConfig(cfg *SchedulerConfig) error {
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", cfg.Timezone, err)
	}

	start, err := timeblock.ParseClock(cfg.DayStart)
	if err != nil {
		return fmt.Errorf("day_start: %w", err)
	}
	end, err := timeblock.ParseClock(cfg.DayEnd)
	if err != nil {
		return fmt.Errorf("day_end: %w", err)
	}
	if start >= end {
		return fmt.Errorf("day_start %s must be before day_end %s", cfg.DayStart, cfg.DayEnd)
	}
	if cfg.GridStep <= 0 || cfg.GridStep > int(end-start) {
		return fmt.Errorf("grid_step %d out of range", cfg.GridStep)
	}
	if _, err := timeblock.ParseClock(cfg.FallbackTime); err != nil {
		return fmt.Errorf("fallback_time: %w", err)
	}
	for _, t := range cfg.DefaultTimes {
		if _, err := timeblock.ParseClock(t); err != nil {
			return fmt.Errorf("default_times: %w", err)
		}
	}
	return nil
}
