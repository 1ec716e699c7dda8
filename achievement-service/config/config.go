package config

import (
	"fmt"
	"time"

	"github.com/director74/achievements/pkg/config"
)

// Config содержит конфигурацию сервиса достижений
type Config struct {
	App      config.AppConfig
	HTTP     config.HTTPConfig
	Postgres config.PostgresConfig
	RabbitMQ config.RabbitMQConfig
	Stats    StatsConfig
	Events   EventsConfig
}

// StatsConfig параметры расчета статистики
type StatsConfig struct {
	// Location часовой пояс, в котором считаются календарные дни серий
	Location *time.Location
}

// EventsConfig параметры публикации событий
type EventsConfig struct {
	Exchange string
}

func NewConfig() (*Config, error) {
	// Загружаем общую конфигурацию
	commonConfig := config.LoadCommonConfig("Achievements API", "achievements", "8000")

	timezone := config.GetEnv("STATS_TIMEZONE", "Local")
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("некорректный STATS_TIMEZONE %q: %w", timezone, err)
	}

	return &Config{
		App:      commonConfig.App,
		HTTP:     commonConfig.HTTP,
		Postgres: commonConfig.Postgres,
		RabbitMQ: commonConfig.RabbitMQ,
		Stats: StatsConfig{
			Location: location,
		},
		Events: EventsConfig{
			Exchange: config.GetEnv("EVENTS_EXCHANGE", "achievement_events"),
		},
	}, nil
}
