package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// CommonConfig содержит общую конфигурацию сервиса
type CommonConfig struct {
	App      AppConfig
	HTTP     HTTPConfig
	Postgres PostgresConfig
	RabbitMQ RabbitMQConfig
}

// AppConfig содержит общие параметры приложения
type AppConfig struct {
	Name  string
	Debug bool
}

// HTTPConfig содержит настройки HTTP сервера
type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PostgresConfig содержит настройки базы данных PostgreSQL
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RabbitMQConfig содержит настройки RabbitMQ
type RabbitMQConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	VHost    string
}

// LoadCommonConfig загружает общую конфигурацию из переменных окружения
func LoadCommonConfig(appName string, dbName string, port string) *CommonConfig {
	// Загружаем переменные окружения из .env файла, если он существует
	godotenv.Load()

	return &CommonConfig{
		App: AppConfig{
			Name:  GetEnv("APP_NAME", appName),
			Debug: GetEnvAsBool("DEBUG", true),
		},
		HTTP: HTTPConfig{
			Port:         GetEnv("HTTP_PORT", port),
			ReadTimeout:  GetEnvAsDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: GetEnvAsDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:     GetEnvAny([]string{"POSTGRES_HOST", "DB_HOST"}, "localhost"),
			Port:     GetEnvAny([]string{"POSTGRES_PORT", "DB_PORT"}, "5432"),
			User:     GetEnvAny([]string{"POSTGRES_USER", "DB_USER"}, "postgres"),
			Password: GetEnvAny([]string{"POSTGRES_PASSWORD", "DB_PASSWORD"}, "postgres"),
			DBName:   GetEnvAny([]string{"POSTGRES_DB", "DB_NAME"}, dbName),
			SSLMode:  GetEnv("POSTGRES_SSLMODE", "disable"),

			MaxOpenConns:    GetEnvAsInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    GetEnvAsInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: GetEnvAsDuration("POSTGRES_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:  GetEnvAsBool("RABBITMQ_ENABLED", false),
			Host:     GetEnv("RABBITMQ_HOST", "localhost"),
			Port:     GetEnv("RABBITMQ_PORT", "5672"),
			User:     GetEnv("RABBITMQ_USER", "guest"),
			Password: GetEnv("RABBITMQ_PASSWORD", "guest"),
			VHost:    GetEnv("RABBITMQ_VHOST", "/"),
		},
	}
}

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAny возвращает значение первой заданной переменной из списка
func GetEnvAny(keys []string, defaultValue string) string {
	for _, key := range keys {
		if value, exists := os.LookupEnv(key); exists {
			return value
		}
	}
	return defaultValue
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := strings.TrimSpace(GetEnv(key, ""))
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
