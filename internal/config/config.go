package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-estate-ledger/internal/domain"
	"github.com/feral-file/ff-estate-ledger/internal/ledger"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug       bool   `mapstructure:"debug"`
	SentryDSN   string `mapstructure:"sentry_dsn"`
	Environment string `mapstructure:"environment"` // Reported to sentry
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration for settlement events
type NATSConfig struct {
	URL            string        `mapstructure:"url"` // Empty disables event publishing
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// SettlementConfig holds settlement policy configuration
type SettlementConfig struct {
	// StrictContexts lists the settlement contexts that abort when the ledger cannot commit.
	// All other contexts degrade to a mirror-only settlement.
	StrictContexts []string `mapstructure:"strict_contexts"`
}

// Contexts parses the configured strict contexts
func (c SettlementConfig) Contexts() ([]domain.SettlementContext, error) {
	contexts := make([]domain.SettlementContext, 0, len(c.StrictContexts))
	for _, raw := range c.StrictContexts {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		sc, err := domain.ParseSettlementContext(raw)
		if err != nil {
			return nil, fmt.Errorf("settlement.strict_contexts: %w", err)
		}
		contexts = append(contexts, sc)
	}
	return contexts, nil
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds

	// CORSAllowedOrigins restricts cross-origin requests, all origins when empty
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// ResyncConfig holds configuration for the ledger resync sweeper
type ResyncConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	Interval   time.Duration `mapstructure:"interval"`    // Pause between cycles
	MinAge     time.Duration `mapstructure:"min_age"`     // Records younger than this are left to in-flight settlements
	BatchSize  int           `mapstructure:"batch_size"`  // Maximum records per cycle
	MaxElapsed time.Duration `mapstructure:"max_elapsed"` // Retry budget per record
	Worker     WorkerConfig  `mapstructure:"worker"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Ledger     ledger.Config    `mapstructure:"ledger"`
	Settlement SettlementConfig `mapstructure:"settlement"`
	NATS       NATSConfig       `mapstructure:"nats"`
	Worker     WorkerConfig     `mapstructure:"worker"`
}

// SweeperConfig holds configuration for the resync sweeper program
type SweeperConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Ledger     ledger.Config  `mapstructure:"ledger"`
	Resync     ResyncConfig   `mapstructure:"resync"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	setLedgerDefaults(v)
	v.SetDefault("settlement.strict_contexts", []string{})
	v.SetDefault("nats.stream_name", "SETTLEMENTS")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "estate-ledger-api")
	v.SetDefault("worker.pool_size", 8)
	v.SetDefault("worker.queue_size", 256)

	if err := readInConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Ledger.Validate(); err != nil {
		return nil, err
	}
	if _, err := config.Settlement.Contexts(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadSweeperConfig loads configuration for the resync sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	setLedgerDefaults(v)
	v.SetDefault("resync.enabled", false)
	v.SetDefault("resync.interval", "1m")
	v.SetDefault("resync.min_age", "2m")
	v.SetDefault("resync.batch_size", 200)
	v.SetDefault("resync.max_elapsed", "30s")
	v.SetDefault("resync.worker.pool_size", 4)
	v.SetDefault("resync.worker.queue_size", 64)

	if err := readInConfig(v); err != nil {
		return nil, err
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}
	if cfg.Resync.Enabled && !cfg.Ledger.Enabled {
		return nil, errors.New("resync.enabled requires ledger.enabled")
	}
	if err := cfg.Ledger.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setLedgerDefaults(v *viper.Viper) {
	v.SetDefault("ledger.enabled", false)
	v.SetDefault("ledger.channel", "estate-channel")
	v.SetDefault("ledger.contract", "estate")
	v.SetDefault("ledger.wallet_path", "wallet")
	v.SetDefault("ledger.identity", "appUser")
}

// readInConfig reads the config file, falling back to environment variables when none is found
func readInConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("ESTATE_LEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// envKeys lists every config key per section. Viper only maps env vars to
// struct fields for keys it knows about, and none are known without a config file.
var envKeys = map[string][]string{
	"":           {"debug", "sentry_dsn", "environment"},
	"database":   {"host", "port", "user", "password", "dbname", "sslmode", "max_open_conns", "max_idle_conns", "conn_max_lifetime", "conn_max_idle_time"},
	"ledger":     {"enabled", "connection_profile", "channel", "contract", "wallet_path", "identity", "msp_id", "cert_path", "key_path"},
	"settlement": {"strict_contexts"},
	"nats":       {"url", "stream_name", "max_reconnects", "reconnect_wait", "connection_name"},
	"server":     {"host", "port", "read_timeout", "write_timeout", "idle_timeout", "cors_allowed_origins"},
	"worker":     {"pool_size", "queue_size"},
	"resync":     {"enabled", "interval", "min_age", "batch_size", "max_elapsed", "worker.pool_size", "worker.queue_size"},
}

func bindAllEnvVars(v *viper.Viper) {
	for section, keys := range envKeys {
		for _, key := range keys {
			if section != "" {
				key = section + "." + key
			}
			_ = v.BindEnv(key)
		}
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
