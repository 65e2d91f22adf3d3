package config

import (
	"errors"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	StoreBackend      string `mapstructure:"STORE_BACKEND"`
	// TrustedProxies is a comma-separated list of proxy IPs/CIDRs whose
	// X-Forwarded-For headers are honoured. Empty trusts none.
	TrustedProxies string `mapstructure:"TRUSTED_PROXIES"`

	// MongoDB configuration.
	MongoConnectionString string `mapstructure:"MONGO_CON_STR"`
	MongoDatabaseName     string `mapstructure:"MONGO_DB_NAME"`

	// JWT configuration.
	JWTKey               string `mapstructure:"JWT_KEY"`
	JWTIssuer            string `mapstructure:"JWT_ISSUER"`
	JWTAudience          string `mapstructure:"JWT_AUDIENCE"`
	JWTTokenValidityMins int    `mapstructure:"JWT_TOKEN_VALIDITY_MINS"`

	// Cloudinary configuration.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
	CloudinaryFolder    string `mapstructure:"CLOUDINARY_FOLDER"`

	// Redis configuration. An empty address keeps revocations in process
	// and deletes images inline instead of through the queue.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	BookingRejectOverlaps bool `mapstructure:"BOOKING_REJECT_OVERLAPS"`
}

// Load reads .env (if present), config.yaml (if present) and the process
// environment, in increasing order of precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables only")
	}
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("STORE_BACKEND", BackendMongo)
	v.SetDefault("TRUSTED_PROXIES", "")
	v.SetDefault("MONGO_CON_STR", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB_NAME", "resourcebooking")
	v.SetDefault("JWT_KEY", "")
	v.SetDefault("JWT_ISSUER", "resourcebooking")
	v.SetDefault("JWT_AUDIENCE", "resourcebooking-clients")
	v.SetDefault("JWT_TOKEN_VALIDITY_MINS", 60)
	v.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	v.SetDefault("CLOUDINARY_API_KEY", "")
	v.SetDefault("CLOUDINARY_API_SECRET", "")
	v.SetDefault("CLOUDINARY_FOLDER", "resourcebooking")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_AUTH_DB", 1)
	v.SetDefault("REDIS_QUEUE_DB", 2)
	v.SetDefault("BOOKING_REJECT_OVERLAPS", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.JWTKey == "" {
		return errors.New("JWT_KEY is required")
	}
	if c.JWTTokenValidityMins <= 0 {
		return errors.New("JWT_TOKEN_VALIDITY_MINS must be positive")
	}
	switch c.StoreBackend {
	case BackendMongo:
		if c.MongoConnectionString == "" || c.MongoDatabaseName == "" {
			return errors.New("MONGO_CON_STR and MONGO_DB_NAME are required for the mongo backend")
		}
	case BackendMemory:
	default:
		return errors.New("STORE_BACKEND must be mongo or memory")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

func (c *Config) CloudinaryEnabled() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

// TrustedProxyList splits TrustedProxies; nil means no proxy is trusted.
func (c *Config) TrustedProxyList() []string {
	var out []string
	for _, p := range strings.Split(c.TrustedProxies, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
