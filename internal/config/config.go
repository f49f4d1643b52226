package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTP        HTTPConfig
	DB          DBConfig
	KafkaConfig KafkaConfig
	Redis       RedisConfig
	Client      ClientConfig
}

type HTTPConfig struct {
	Addr string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type RedisConfig struct {
	Addr string
}

// ClientConfig holds settings for the cashier-side API client.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

func LoadConfig() *Config {
	dbconfig := DBConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "user"),
		Password: getEnv("DB_PASSWORD", "pass"),
		DBName:   getEnv("DB_NAME", "mbg_db"),
	}

	kafkaConf := KafkaConfig{
		Brokers: []string{getEnv("KAFKA_BROKER", "localhost:9092")},
		Topic:   getEnv("KAFKA_TOPIC", "mbg-activity"),
	}

	return &Config{
		HTTP:        HTTPConfig{Addr: getEnv("HTTP_ADDR", ":8080")},
		DB:          dbconfig,
		KafkaConfig: kafkaConf,
		Redis:       RedisConfig{Addr: getEnv("REDIS_ADDR", "localhost:6379")},
		Client: ClientConfig{
			BaseURL: getEnv("BACKEND_URL", "http://localhost:8080"),
			Timeout: getEnvSeconds("CLIENT_TIMEOUT_SECONDS", 10),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func getEnvSeconds(key string, defaultValue int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return time.Duration(n) * time.Second
		}
	}

	return time.Duration(defaultValue) * time.Second
}
