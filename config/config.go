package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

// Config holds every setting the bot needs.
type Config struct {
	Postgres      PostgresConfig      `yaml:"postgres"`
	NATS          NATSConfig          `yaml:"nats"`
	HTTP          HTTPConfig          `yaml:"http"`
	Telegram      TelegramConfig      `yaml:"telegram"`
	Bot           BotConfig           `yaml:"bot"`
	Reset         ResetConfig         `yaml:"reset"`
	Export        ExportConfig        `yaml:"export"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// NATSConfig holds NATS configuration.
type NATSConfig struct {
	URL string `yaml:"url"`
}

// HTTPConfig holds the webhook server configuration.
type HTTPConfig struct {
	ListenAddress string `yaml:"listen_address"`
}

// TelegramConfig holds the bot API credentials and webhook secret.
type TelegramConfig struct {
	BotToken      string               `yaml:"bot_token"`
	APIBaseURL    string               `yaml:"api_base_url"`
	WebhookSecret string               `yaml:"webhook_secret"`
	AdminIDs      []sharedtypes.UserID `yaml:"admin_ids"`
}

// BotConfig holds command and leaderboard behavior settings.
type BotConfig struct {
	MaxDeltaPerUpdate  int    `yaml:"max_delta_per_update"`
	MinDeltaPerUpdate  int    `yaml:"min_delta_per_update"`
	LeaderboardSize    int    `yaml:"leaderboard_size"`
	MaxLeaderboardSize int    `yaml:"max_leaderboard_size"`
	DemoUserSentinel   string `yaml:"demo_user_sentinel"`
	CommandsPerMinute  int    `yaml:"commands_per_minute"`
}

// ResetConfig schedules the daily reset (UTC).
type ResetConfig struct {
	Hour   int `yaml:"hour"`
	Minute int `yaml:"minute"`
}

// ExportConfig schedules the weekly lifetime stats export.
type ExportConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Directory string `yaml:"directory"`
	Weekday   int    `yaml:"weekday"` // 0 = Sunday
	Hour      int    `yaml:"hour"`
}

// ObservabilityConfig holds logging and metrics settings.
type ObservabilityConfig struct {
	LogLevel    string `yaml:"log_level"`
	Environment string `yaml:"environment"`
}

// LoadConfig loads configuration from a YAML file, falling back to and
// being overridden by environment variables.
func LoadConfig(filename string) (*Config, error) {
	cfg := defaults()

	if data, err := os.ReadFile(filename); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		HTTP: HTTPConfig{ListenAddress: ":8080"},
		Telegram: TelegramConfig{
			APIBaseURL: "https://api.telegram.org",
		},
		Bot: BotConfig{
			MaxDeltaPerUpdate:  1000,
			MinDeltaPerUpdate:  -1000,
			LeaderboardSize:    10,
			MaxLeaderboardSize: 20,
			DemoUserSentinel:   "Demo User",
			CommandsPerMinute:  10,
		},
		Export: ExportConfig{
			Directory: "exports",
			Weekday:   0,
			Hour:      2,
		},
		Observability: ObservabilityConfig{
			LogLevel:    "info",
			Environment: "development",
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.NATS.URL = v
	}
	if v := os.Getenv("LISTEN_ADDRESS"); v != "" {
		cfg.HTTP.ListenAddress = v
	}
	if v := os.Getenv("BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_API_BASE_URL"); v != "" {
		cfg.Telegram.APIBaseURL = v
	}
	if v := os.Getenv("SECRET_TOKEN"); v != "" {
		cfg.Telegram.WebhookSecret = v
	}
	if v := os.Getenv("ADMIN_IDS"); v != "" {
		cfg.Telegram.AdminIDs = parseAdminIDs(v)
	}
	if v := os.Getenv("RESET_HOUR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Reset.Hour = n
		}
	}
	if v := os.Getenv("RESET_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Reset.Minute = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}
}

func parseAdminIDs(raw string) []sharedtypes.UserID {
	var ids []sharedtypes.UserID
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, sharedtypes.UserID(id))
	}
	return ids
}

// Validate checks settings that would otherwise fail at runtime.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("bot token is required (BOT_TOKEN)")
	}
	if c.Postgres.DSN == "" {
		return fmt.Errorf("postgres DSN is required (DATABASE_URL)")
	}
	if c.NATS.URL == "" {
		return fmt.Errorf("NATS URL is required (NATS_URL)")
	}
	if c.Reset.Hour < 0 || c.Reset.Hour > 23 {
		return fmt.Errorf("reset hour must be between 0 and 23, got %d", c.Reset.Hour)
	}
	if c.Reset.Minute < 0 || c.Reset.Minute > 59 {
		return fmt.Errorf("reset minute must be between 0 and 59, got %d", c.Reset.Minute)
	}
	if c.Bot.LeaderboardSize <= 0 {
		return fmt.Errorf("leaderboard size must be positive, got %d", c.Bot.LeaderboardSize)
	}
	if c.Bot.MaxLeaderboardSize < c.Bot.LeaderboardSize {
		return fmt.Errorf("max leaderboard size must be >= leaderboard size")
	}
	if c.Bot.MinDeltaPerUpdate > c.Bot.MaxDeltaPerUpdate {
		return fmt.Errorf("min delta per update must be <= max delta per update")
	}
	return nil
}

// IsAdmin reports whether userID may run admin commands. An empty
// allowlist leaves admin commands open to everyone.
func (c *Config) IsAdmin(userID sharedtypes.UserID) bool {
	if len(c.Telegram.AdminIDs) == 0 {
		return true
	}
	for _, id := range c.Telegram.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}
