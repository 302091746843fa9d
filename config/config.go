package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type Config struct {
	DataDir       string
	HTTPAddr      string
	QRBaseURL     string
	RedisHost     string
	RedisPort     string
	CacheTTL      time.Duration
	KafkaBroker   string
	KafkaTopic    string
	KafkaGroupID  string
	AdminID       int
	AdminPassword string
	SeedDemo      bool
	LogLevel      string
}

// Load reads .env files when present, then the process environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && len(files) > 0 {
		return nil, fmt.Errorf("failed to load env files: %w", err)
	}

	cfg := &Config{
		DataDir:       getEnv("DATA_DIR", "data"),
		HTTPAddr:      getEnv("HTTP_ADDR", ":8081"),
		QRBaseURL:     getEnv("QR_BASE_URL", "http://localhost:8081"),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "order-events"),
		KafkaGroupID:  getEnv("KAFKA_GROUP_ID", "order-stats"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.CacheTTL, err = time.ParseDuration(getEnv("CACHE_TTL", "5m")); err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	if cfg.AdminID, err = strconv.Atoi(getEnv("ADMIN_ID", "300")); err != nil {
		return nil, fmt.Errorf("invalid ADMIN_ID: %w", err)
	}
	if cfg.SeedDemo, err = strconv.ParseBool(getEnv("SEED_DEMO", "true")); err != nil {
		return nil, fmt.Errorf("invalid SEED_DEMO: %w", err)
	}
	return cfg, nil
}

func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

func (c *Config) KafkaEnabled() bool {
	return c.KafkaBroker != ""
}

func InitRedis(ctx context.Context, cfg *Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisHost + ":" + cfg.RedisPort,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

func NewKafkaReader(cfg *Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   cfg.KafkaTopic,
		GroupID: cfg.KafkaGroupID,
	})
}

func NewKafkaWriter(cfg *Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBroker),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
