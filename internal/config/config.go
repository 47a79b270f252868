package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	Payroll  PayrollConfig
}

type AppConfig struct {
	Env          string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool
	MaxRetries  int
}

type RedisConfig struct {
	Addr       string
	MaxRetries int
}

type KafkaConfig struct {
	Broker         string
	ConsumerGroup  string
	OutboxInterval time.Duration
}

type JWTConfig struct {
	Secret string
}

// PayrollConfig points at an optional YAML file with dated deduction rules.
type PayrollConfig struct {
	RulesFile string
}

// Load reads the environment, optionally seeded from a .env file.
func Load() (*Config, error) {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg := &Config{}

	readTimeout, err := getDuration("HTTP_READ_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	writeTimeout, err := getDuration("HTTP_WRITE_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	idleTimeout, err := getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, err
	}

	cfg.App = AppConfig{
		Env:          getEnv("APP_ENV", "development"),
		Port:         getEnv("PORT", "3000"),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	dbRetries, err := getInt("DB_MAX_RETRIES", 5)
	if err != nil {
		return nil, err
	}

	cfg.Database = DatabaseConfig{
		Host:        getEnv("DB_HOST", "localhost"),
		Port:        getEnv("DB_PORT", "5432"),
		User:        getEnv("DB_USER", "postgres"),
		Password:    getEnv("DB_PASSWORD", ""),
		Name:        getEnv("DB_NAME", "hris_payroll"),
		SSLMode:     getEnv("DB_SSLMODE", "disable"),
		AutoMigrate: getBool("DB_AUTO_MIGRATE"),
		MaxRetries:  dbRetries,
	}

	cfg.Redis = RedisConfig{
		Addr:       getEnv("REDIS_ADDR", "localhost:6379"),
		MaxRetries: 5,
	}

	outboxInterval, err := getDuration("OUTBOX_INTERVAL", 3*time.Second)
	if err != nil {
		return nil, err
	}

	cfg.Kafka = KafkaConfig{
		Broker:         getEnv("KAFKA_BROKER", ""),
		ConsumerGroup:  getEnv("KAFKA_CONSUMER_GROUP", "hris-payroll"),
		OutboxInterval: outboxInterval,
	}

	cfg.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET", ""),
	}

	cfg.Payroll = PayrollConfig{
		RulesFile: getEnv("PAYROLL_RULES_FILE", ""),
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, "production")
}

// ValidateHTTP checks the settings the API process cannot run without.
func (c *Config) ValidateHTTP() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

// ValidateKafka checks the settings the worker and consumer need.
func (c *Config) ValidateKafka() error {
	if c.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getBool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
