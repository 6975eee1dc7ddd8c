package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Pricing  PricingConfig  `mapstructure:"pricing"`
	Market   MarketConfig   `mapstructure:"market"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host        string   `mapstructure:"host"`
	Port        int      `mapstructure:"port"`
	Mode        string   `mapstructure:"mode"`         // debug, release, test
	CORSOrigins []string `mapstructure:"cors_origins"` // empty allows all origins
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// ScheduleBand maps a half-open hour interval [start, end) to a price
// multiplier. The first band containing the current hour wins; hours
// outside every band fall back to multiplier 1.0.
type ScheduleBand struct {
	StartHour  int     `mapstructure:"start_hour"`
	EndHour    int     `mapstructure:"end_hour"`
	Multiplier float64 `mapstructure:"multiplier"`
}

// PricingConfig drives the virtual provider price program.
type PricingConfig struct {
	BasePriceEUR    float64        `mapstructure:"base_price_eur"` // per kWh
	Schedule        []ScheduleBand `mapstructure:"schedule"`
	SurgeEnabled    bool           `mapstructure:"surge_enabled"`
	SurgeHourMin    int            `mapstructure:"surge_hour_min"` // inclusive
	SurgeHourMax    int            `mapstructure:"surge_hour_max"` // inclusive
	SurgeMultiplier float64        `mapstructure:"surge_multiplier"`
	ProviderNames   []string       `mapstructure:"provider_names"`
	VirtualPricing  bool           `mapstructure:"virtual_pricing"` // include providers in the market feed
}

// MarketConfig drives offer listing and settlement behavior.
type MarketConfig struct {
	FeeRate            float64       `mapstructure:"fee_rate"` // platform cut of each trade
	HouseholdLimit     int           `mapstructure:"household_limit"`
	SurplusWindowHours int           `mapstructure:"surplus_window_hours"`
	SnapshotCacheTTL   time.Duration `mapstructure:"snapshot_cache_ttl"` // 0 disables the cache
	RequireTxRef       bool          `mapstructure:"require_tx_ref"`     // demand an external ref on accept
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: EMX_ (Energy
// Marketplace). Nested keys use underscore: EMX_DATABASE_HOST,
// EMX_MARKET_FEE_RATE, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors_origins", []string{})
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "energy_marketplace")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("pricing.base_price_eur", 0.25)
	v.SetDefault("pricing.schedule", []map[string]any{
		{"start_hour": 0, "end_hour": 7, "multiplier": 0.8},
		{"start_hour": 7, "end_hour": 17, "multiplier": 1.0},
		{"start_hour": 17, "end_hour": 21, "multiplier": 1.3},
		{"start_hour": 21, "end_hour": 24, "multiplier": 0.9},
	})
	v.SetDefault("pricing.surge_enabled", true)
	v.SetDefault("pricing.surge_hour_min", 17)
	v.SetDefault("pricing.surge_hour_max", 21)
	v.SetDefault("pricing.surge_multiplier", 1.8)
	v.SetDefault("pricing.provider_names", []string{"grid-east", "grid-west"})
	v.SetDefault("pricing.virtual_pricing", true)
	v.SetDefault("market.fee_rate", 0.10)
	v.SetDefault("market.household_limit", 100)
	v.SetDefault("market.surplus_window_hours", 12)
	v.SetDefault("market.snapshot_cache_ttl", "2s")
	v.SetDefault("market.require_tx_ref", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: EMX_DATABASE_HOST -> database.host
	v.SetEnvPrefix("EMX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	p := c.Pricing
	if p.BasePriceEUR <= 0 {
		return fmt.Errorf("pricing.base_price_eur must be positive")
	}
	if p.SurgeEnabled {
		if p.SurgeHourMin < 0 || p.SurgeHourMax > 23 || p.SurgeHourMin > p.SurgeHourMax {
			return fmt.Errorf("pricing surge hour range [%d, %d] is invalid", p.SurgeHourMin, p.SurgeHourMax)
		}
		if p.SurgeMultiplier <= 0 {
			return fmt.Errorf("pricing.surge_multiplier must be positive")
		}
	}
	for _, b := range p.Schedule {
		if b.StartHour < 0 || b.EndHour > 24 || b.StartHour >= b.EndHour {
			return fmt.Errorf("schedule band [%d, %d) is invalid", b.StartHour, b.EndHour)
		}
	}
	if c.Market.FeeRate < 0 || c.Market.FeeRate >= 1 {
		return fmt.Errorf("market.fee_rate must be in [0, 1)")
	}
	return nil
}
