package config

import (
	"fmt"
	"os"
	"strconv"
)

// RedisConfig holds quote cache settings. An empty Addr selects the
// in-process cache instead.
type RedisConfig struct {
	Addr string
}

// KafkaConfig holds event stream settings. Empty Brokers select the noop
// publisher instead.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Config is the process configuration, loaded from the environment with
// development defaults.
type Config struct {
	HTTPPort    int
	LogLevel    string
	LogFormat   string
	Redis       RedisConfig
	Kafka       KafkaConfig
	ServiceName string
}

// Load reads configuration from the environment.
func Load() Config {
	var brokers []string
	if b := os.Getenv("KAFKA_BROKERS"); b != "" {
		brokers = []string{b}
	}

	return Config{
		HTTPPort:  getEnvInt("HTTP_PORT", 8080),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		Redis: RedisConfig{
			Addr: os.Getenv("REDIS_ADDR"),
		},
		Kafka: KafkaConfig{
			Brokers: brokers,
			Topic:   getEnv("EVENTS_TOPIC", "carfin-events"),
		},
		ServiceName: "carfin",
	}
}

// HTTPAddr returns the listen address.
func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
