package config

import (
	"errors"
	"os"
	"strings"
	"time"

	model "auction-spot/internal/models"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Seed      SeedConfig      `mapstructure:"seed"`
	Auction   AuctionConfig   `mapstructure:"auction"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	Addr           string        `mapstructure:"addr"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	ShutdownGrace  time.Duration `mapstructure:"shutdown_grace"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type SchedulerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Spec    string `mapstructure:"spec"`
}

type SeedConfig struct {
	Enabled    bool  `mapstructure:"enabled"`
	Players    int   `mapstructure:"players"`
	RandomSeed int64 `mapstructure:"random_seed"`
}

type AuctionConfig struct {
	DefaultRules model.AuctionRules `mapstructure:"default_rules"`
}

// Load reads configuration from defaults, an optional config file and
// AUCTION_* environment variables, in increasing precedence. An empty path
// searches for config.yaml in the working directory and ./config.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("AUCTION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetDefault("app.env", "dev")
	v.SetDefault("server.addr", ":5000")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.shutdown_grace", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("auth.jwt_secret", "auctionspot-dev-secret")
	v.SetDefault("auth.token_ttl", "12h")
	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.spec", "@every 30s")
	v.SetDefault("seed.enabled", true)
	v.SetDefault("seed.players", 30)
	v.SetDefault("seed.random_seed", 2025)
	v.SetDefault("auction.default_rules.min_bid_increment", 5000)
	v.SetDefault("auction.default_rules.max_players_per_team", 11)
	v.SetDefault("auction.default_rules.initial_budget", 500000)
	v.SetDefault("auction.default_rules.bid_timeout", 30)
	v.SetDefault("auction.default_rules.allow_auto_bid", true)
	v.SetDefault("auction.default_rules.max_auto_bid_percentage", 40)
	v.SetDefault("auction.default_rules.league_name", "AuctionSpot Premier League")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	// PORT is honoured for platforms that only set it
	if port := os.Getenv("PORT"); port != "" && os.Getenv("AUCTION_SERVER_ADDR") == "" {
		cfg.Server.Addr = ":" + port
	}

	return cfg, nil
}
