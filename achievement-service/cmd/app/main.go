package main

import (
	"github.com/sirupsen/logrus"

	"github.com/director74/achievements/achievement-service/config"
	"github.com/director74/achievements/achievement-service/internal/app"
	"github.com/director74/achievements/pkg/logger"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Ошибка при загрузке конфигурации: %v", err)
	}

	logger.Setup(cfg.App.Name, cfg.App.Debug)

	achievementsApp, err := app.NewApp(cfg)
	if err != nil {
		logrus.Fatalf("Ошибка при создании приложения: %v", err)
	}

	// Запускаем приложение
	if err := achievementsApp.Run(); err != nil {
		logrus.Fatalf("Ошибка при запуске приложения: %v", err)
	}
}
