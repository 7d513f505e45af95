package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Backend  BackendConfig  `mapstructure:"backend"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	S3       S3Config       `mapstructure:"s3"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// BackendConfig selects the gateway implementation the stores run on.
// Mode "mock" serves canned data behind simulated latency; "mongo" talks to
// a real database.
type BackendConfig struct {
	Mode       string        `mapstructure:"mode"`        // "mock" or "mongo"
	MinLatency time.Duration `mapstructure:"min_latency"` // mock only
	MaxLatency time.Duration `mapstructure:"max_latency"` // mock only
	// Directory selects how the mock member directory treats admin
	// mutations: "static" (fire-and-forget, the legacy behavior) or
	// "mutable" (changes survive a refetch).
	Directory string `mapstructure:"directory"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// RedisConfig configures the snapshot persistence provider. An empty address
// keeps snapshots in process memory.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variable handling: backend.mode -> BACKEND_MODE, etc.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("backend.mode", "mock")
	viper.SetDefault("backend.min_latency", "500ms")
	viper.SetDefault("backend.max_latency", "1500ms")
	viper.SetDefault("backend.directory", "static")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "rapid_club")
	viper.SetDefault("redis.address", "")
	viper.SetDefault("s3.use_ssl", true)
	viper.SetDefault("jwt.expiration", "1h")

	err = viper.ReadInConfig()
	// Config file is optional; env vars and defaults may carry everything.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}

// Validate rejects configurations the server must not start with. There is
// deliberately no default for jwt.secret: an unset secret would sign tokens
// with the empty string.
func (c Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("jwt.secret is not set")
	}
	switch c.Backend.Mode {
	case "mock", "mongo":
	default:
		return fmt.Errorf("unknown backend mode %q", c.Backend.Mode)
	}
	return nil
}
