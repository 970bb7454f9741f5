package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Booking  BookingConfig  `yaml:"booking"`
	Worker   WorkerConfig   `yaml:"worker"`
	Log      LogConfig      `yaml:"log"`
}

type HTTPConfig struct {
	Address                string   `yaml:"address"`
	SwaggerDir             string   `yaml:"swagger_dir"`
	AllowedOrigins         []string `yaml:"allowed_origins"`
	ShutdownTimeoutSeconds int      `yaml:"shutdown_timeout_seconds"`
}

func (h HTTPConfig) ShutdownTimeout() time.Duration {
	return time.Duration(h.ShutdownTimeoutSeconds) * time.Second
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	// EnsureSchema applies the embedded schema on startup.
	EnsureSchema bool `yaml:"ensure_schema"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	ReservationTopic   string   `yaml:"reservation_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
	PublishRetries     int      `yaml:"publish_retries"`
}

type BookingConfig struct {
	RoomsCacheTTL int    `yaml:"rooms_cache_ttl_seconds"`
	Timezone      string `yaml:"timezone"`
}

func (b BookingConfig) RoomsCacheTTLDuration() time.Duration {
	return time.Duration(b.RoomsCacheTTL) * time.Second
}

// Location resolves Timezone, falling back to UTC when it is empty or unknown.
func (b BookingConfig) Location() *time.Location {
	if b.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type WorkerConfig struct {
	CompletionSweepMinutes int `yaml:"completion_sweep_minutes"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:                ":3000",
			AllowedOrigins:         []string{"*"},
			ShutdownTimeoutSeconds: 10,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Name:     "hotel",
			SSLMode:  "disable",
			MaxConns: 10,
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Kafka: KafkaConfig{
			ReservationTopic:   "reservations",
			NotificationsTopic: "notifications",
			GroupID:            "hotel-worker",
			PublishRetries:     3,
		},
		Booking: BookingConfig{RoomsCacheTTL: 60, Timezone: "UTC"},
		Worker:  WorkerConfig{CompletionSweepMinutes: 60},
		Log:     LogConfig{Level: "info"},
	}
}

// LoadConfig reads the YAML file at path on top of Default and then applies
// environment overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if cfg.Database.MaxConns <= 0 {
		cfg.Database.MaxConns = 10
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")
	setString(&cfg.Database.SSLMode, "DB_SSL_MODE")
	if err := setInt(&cfg.Database.Port, "DB_PORT"); err != nil {
		return err
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.HTTP.Address = ":" + port
	}
	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.Kafka.Brokers = splitList(brokers)
	}
	setString(&cfg.Log.Level, "LOG_LEVEL")
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
