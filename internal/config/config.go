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
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
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

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// ChainConfig holds blockchain node configuration
type ChainConfig struct {
	RPCURL               string        `mapstructure:"rpc_url"`
	ChainID              int64         `mapstructure:"chain_id"`
	TxSenderKey          string        `mapstructure:"tx_sender_key"`
	BlockHeadTTL         time.Duration `mapstructure:"block_head_ttl"`
	BlockHeadStaleWindow time.Duration `mapstructure:"block_head_stale_window"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize int `mapstructure:"pool_size"`
	BatchSize      int `mapstructure:"batch_size"`
}

// SyncConfig holds UTXO sync daemon configuration
type SyncConfig struct {
	Interval    time.Duration `mapstructure:"interval"`
	MaxBlockLot uint64        `mapstructure:"max_block_lot"`
	Timezone    string        `mapstructure:"timezone"`
}

// UTXOSyncConfig holds configuration for utxo-syncd
type UTXOSyncConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Chain      ChainConfig    `mapstructure:"chain"`
	Sync       SyncConfig     `mapstructure:"sync"`
}

// ScheduledEventConfig holds configuration for scheduled-eventd
type ScheduledEventConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Chain      ChainConfig    `mapstructure:"chain"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Worker     WorkerConfig   `mapstructure:"worker"`
	Interval   time.Duration  `mapstructure:"interval"`
}

// PersonalInfoConfig holds configuration for personal-infod
type PersonalInfoConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Chain      ChainConfig    `mapstructure:"chain"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Worker     WorkerConfig   `mapstructure:"worker"`
	Interval   time.Duration  `mapstructure:"interval"`
}

// LoadUTXOSyncConfig loads configuration for utxo-syncd
func LoadUTXOSyncConfig(configFile string, envPath string) (*UTXOSyncConfig, error) {
	v := configureViper("utxo-syncd", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("chain.block_head_ttl", "1s")
	v.SetDefault("chain.block_head_stale_window", "30s")
	v.SetDefault("sync.interval", "10s")
	v.SetDefault("sync.max_block_lot", 1_000_000)
	v.SetDefault("sync.timezone", "Asia/Tokyo")

	if err := readInConfig(v); err != nil {
		return nil, err
	}

	var config UTXOSyncConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadScheduledEventConfig loads configuration for scheduled-eventd
func LoadScheduledEventConfig(configFile string, envPath string) (*ScheduledEventConfig, error) {
	v := configureViper("scheduled-eventd", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "scheduled-eventd")
	v.SetDefault("worker.pool_size", 5)
	v.SetDefault("interval", "60s")

	if err := readInConfig(v); err != nil {
		return nil, err
	}

	var config ScheduledEventConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadPersonalInfoConfig loads configuration for personal-infod
func LoadPersonalInfoConfig(configFile string, envPath string) (*PersonalInfoConfig, error) {
	v := configureViper("personal-infod", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "personal-infod")
	v.SetDefault("worker.pool_size", 5)
	v.SetDefault("worker.batch_size", 100)
	v.SetDefault("interval", "60s")

	if err := readInConfig(v); err != nil {
		return nil, err
	}

	var config PersonalInfoConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// readInConfig reads the config file, tolerating its absence so pure
// environment-variable deployments keep working
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
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/utxo-syncd/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("LEDGERD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Chain
		"chain.rpc_url",
		"chain.chain_id",
		"chain.tx_sender_key",
		"chain.block_head_ttl",
		"chain.block_head_stale_window",
		// Sync
		"sync.interval",
		"sync.max_block_lot",
		"sync.timezone",
		// Worker
		"worker.pool_size",
		"worker.batch_size",
		"interval",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
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
