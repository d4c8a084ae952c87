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

	"github.com/feral-file/persona-indexer/internal/domain"
)

// EnvPrefix prefixes every environment variable read by the binaries
const EnvPrefix = "PERSONA_INDEXER"

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or sqlite
	Path            string        `mapstructure:"path"`   // sqlite database file
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadHost        string        `mapstructure:"read_host"`
	ReadPort        int           `mapstructure:"read_port"`
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
	URL             string        `mapstructure:"url"`
	StreamName      string        `mapstructure:"stream_name"`
	ConsumerName    string        `mapstructure:"consumer_name"`
	MaxReconnects   int           `mapstructure:"max_reconnects"`
	ReconnectWait   time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName  string        `mapstructure:"connection_name"`
	AckWait         time.Duration `mapstructure:"ack_wait"`
	DuplicateWindow time.Duration `mapstructure:"duplicate_window"`
}

// ChainConfig holds the node endpoints and contract of one layer
type ChainConfig struct {
	ChainID              domain.Chain  `mapstructure:"chain_id"`
	WebSocketURL         string        `mapstructure:"websocket_url"`
	RPCURL               string        `mapstructure:"rpc_url"`
	ContractAddress      string        `mapstructure:"contract_address"`
	StartBlock           uint64        `mapstructure:"start_block"` // contract deployment block
	BlockHeadTTL         time.Duration `mapstructure:"block_head_ttl"`
	BlockHeadStaleWindow time.Duration `mapstructure:"block_head_stale_window"`
	MaxCachedBlocks      int           `mapstructure:"max_cached_blocks"`
}

// EmitterConfig holds the cursor persistence settings of an emitter
type EmitterConfig struct {
	CursorSaveFreq  uint64        `mapstructure:"cursor_save_freq"`
	CursorSaveDelay time.Duration `mapstructure:"cursor_save_delay"`
}

// SubscriptionConfig holds the resubscription backoff of the log subscriber
type SubscriptionConfig struct {
	InitialRetryInterval time.Duration `mapstructure:"initial_retry_interval"`
	MaxRetryInterval     time.Duration `mapstructure:"max_retry_interval"`
	MaxElapsedTime       time.Duration `mapstructure:"max_elapsed_time"` // 0 retries forever
}

// ProjectionConfig holds the projector behavior switches
type ProjectionConfig struct {
	TolerateURIFailure  bool   `mapstructure:"tolerate_uri_failure"`
	FirstPersonaID      uint64 `mapstructure:"first_persona_id"`
	BackfillConcurrency int    `mapstructure:"backfill_concurrency"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	ReadTimeout    int      `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout   int      `mapstructure:"write_timeout"` // in seconds
	IdleTimeout    int      `mapstructure:"idle_timeout"`  // in seconds
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EventEmitterConfig holds configuration for persona-event-emitter
type EventEmitterConfig struct {
	BaseConfig   `mapstructure:",squash"`
	Database     DatabaseConfig     `mapstructure:"database"`
	NATS         NATSConfig         `mapstructure:"nats"`
	Emitter      EmitterConfig      `mapstructure:"emitter"`
	Subscription SubscriptionConfig `mapstructure:"subscription"`
	L1           ChainConfig        `mapstructure:"l1"`
	L2           ChainConfig        `mapstructure:"l2"`
}

// ProjectorConfig holds configuration for persona-projector.
// Emitter, Subscription and L2 are only read in direct mode.
type ProjectorConfig struct {
	BaseConfig   `mapstructure:",squash"`
	Database     DatabaseConfig     `mapstructure:"database"`
	NATS         NATSConfig         `mapstructure:"nats"`
	Projection   ProjectionConfig   `mapstructure:"projection"`
	Emitter      EmitterConfig      `mapstructure:"emitter"`
	Subscription SubscriptionConfig `mapstructure:"subscription"`
	L1           ChainConfig        `mapstructure:"l1"`
	L2           ChainConfig        `mapstructure:"l2"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
}

// Chain returns the chain configuration of a layer
func (c *EventEmitterConfig) Chain(layer domain.Layer) (ChainConfig, error) {
	return chainFor(layer, c.L1, c.L2)
}

// Chain returns the chain configuration of a layer
func (c *ProjectorConfig) Chain(layer domain.Layer) (ChainConfig, error) {
	return chainFor(layer, c.L1, c.L2)
}

func chainFor(layer domain.Layer, l1, l2 ChainConfig) (ChainConfig, error) {
	var chain ChainConfig
	switch layer {
	case domain.LayerL1:
		chain = l1
	case domain.LayerL2:
		chain = l2
	default:
		return ChainConfig{}, fmt.Errorf("unknown layer %q", layer)
	}

	if chain.WebSocketURL == "" || chain.ContractAddress == "" {
		return ChainConfig{}, fmt.Errorf("%s: websocket_url and contract_address are required", layer)
	}
	return chain, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.path", "persona-indexer.db")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
}

func setNATSDefaults(v *viper.Viper) {
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "PERSONA_EVENTS")
	v.SetDefault("nats.consumer_name", "persona-projector")
	v.SetDefault("nats.ack_wait", "1m")
	v.SetDefault("nats.duplicate_window", "10m")
}

func setChainDefaults(v *viper.Viper) {
	v.SetDefault("l1.chain_id", string(domain.ChainEthereumMainnet))
	v.SetDefault("l2.chain_id", string(domain.ChainGnosis))
	for _, layer := range []string{"l1", "l2"} {
		v.SetDefault(layer+".block_head_ttl", "12s")
		v.SetDefault(layer+".block_head_stale_window", "1m")
		v.SetDefault(layer+".max_cached_blocks", 1024)
	}
}

func setEmitterDefaults(v *viper.Viper) {
	v.SetDefault("emitter.cursor_save_freq", 2)
	v.SetDefault("emitter.cursor_save_delay", "30s")
	v.SetDefault("subscription.initial_retry_interval", "1s")
	v.SetDefault("subscription.max_retry_interval", "1m")
	v.SetDefault("subscription.max_elapsed_time", "15m")
}

// LoadEventEmitterConfig loads configuration for persona-event-emitter
func LoadEventEmitterConfig(configFile string, envPath string) (*EventEmitterConfig, error) {
	v := configureViper("persona-event-emitter", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	setNATSDefaults(v)
	setChainDefaults(v)
	setEmitterDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config EventEmitterConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadProjectorConfig loads configuration for persona-projector
func LoadProjectorConfig(configFile string, envPath string) (*ProjectorConfig, error) {
	v := configureViper("persona-projector", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	setNATSDefaults(v)
	setChainDefaults(v)
	setEmitterDefaults(v)
	v.SetDefault("projection.tolerate_uri_failure", false)
	v.SetDefault("projection.first_persona_id", domain.DEFAULT_FIRST_PERSONA_ID)
	v.SetDefault("projection.backfill_concurrency", 8)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config ProjectorConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("server.allowed_origins", []string{"*"})

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// readConfig reads the config file; a missing file leaves defaults and environment variables
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
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
		// 2. Service-specific directory (e.g., cmd/persona-projector/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.driver",
		"database.path",
		"database.host",
		"database.port",
		"database.read_host",
		"database.read_port",
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
		"nats.stream_name",
		"nats.consumer_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.ack_wait",
		"nats.duplicate_window",
		// Emitter
		"emitter.cursor_save_freq",
		"emitter.cursor_save_delay",
		"subscription.initial_retry_interval",
		"subscription.max_retry_interval",
		"subscription.max_elapsed_time",
		// Projection
		"projection.tolerate_uri_failure",
		"projection.first_persona_id",
		"projection.backfill_concurrency",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
	}
	for _, layer := range []string{"l1", "l2"} {
		for _, key := range []string{
			"chain_id",
			"websocket_url",
			"rpc_url",
			"contract_address",
			"start_block",
			"block_head_ttl",
			"block_head_stale_window",
			"max_cached_blocks",
		} {
			keys = append(keys, layer+"."+key)
		}
	}

	for _, key := range keys {
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

// DSN returns the database connection string, or the database file for sqlite
func (c *DatabaseConfig) DSN() string {
	if c.Driver == "sqlite" {
		return c.Path
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ReadDSN returns the read-replica database connection string.
// Without a read host it is the primary DSN; if ReadPort is not configured, it falls back to Port.
func (c *DatabaseConfig) ReadDSN() string {
	if c.Driver == "sqlite" || c.ReadHost == "" {
		return c.DSN()
	}

	port := c.ReadPort
	if port == 0 {
		port = c.Port
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.ReadHost, port, c.User, c.Password, c.DBName, c.SSLMode)
}
