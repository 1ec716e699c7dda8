package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/director74/achievements/achievement-service/config"
	httpController "github.com/director74/achievements/achievement-service/internal/controller/http"
	"github.com/director74/achievements/achievement-service/internal/repo"
	"github.com/director74/achievements/achievement-service/internal/usecase"
	"github.com/director74/achievements/pkg/database"
	"github.com/director74/achievements/pkg/errors"
	"github.com/director74/achievements/pkg/messaging"
	"github.com/director74/achievements/pkg/metrics"
	"github.com/director74/achievements/pkg/middleware"
	"github.com/director74/achievements/pkg/rabbitmq"
)

// App представляет приложение
type App struct {
	config     *config.Config
	httpServer *http.Server
	db         *gorm.DB
	rabbitMQ   *rabbitmq.RabbitMQ
}

func NewApp(config *config.Config) (*App, error) {
	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(config.Postgres, config.App.Debug)
	if err != nil {
		return nil, errors.AppendPrefix(err, "не удалось подключиться к базе данных")
	}

	if err := repo.Migrate(db); err != nil {
		return nil, errors.AppendPrefix(err, "не удалось выполнить миграцию")
	}

	// Брокер необязателен: без него достижения выдаются, но события не публикуются
	var publisher messaging.MessagePublisher
	rmq := connectRabbitMQ(config)
	if rmq != nil {
		publisher = rmq
	}

	appMetrics := metrics.New(true)

	// Создаем репозитории
	userRepo := repo.NewUserRepository(db)
	achievementRepo := repo.NewAchievementRepository(db)
	awardRepo := repo.NewAwardRepository(db)
	statsRepo := repo.NewStatsRepository(db)

	// Создаем use cases
	userUseCase := usecase.NewUserUseCase(userRepo)
	achievementUseCase := usecase.NewAchievementUseCase(achievementRepo)
	awardUseCase := usecase.NewAwardUseCase(userRepo, achievementRepo, awardRepo, publisher, config.Events.Exchange, appMetrics)
	statsUseCase := usecase.NewStatsUseCase(statsRepo, config.Stats.Location, appMetrics)

	// Создаем HTTP контроллеры
	serviceHandler := httpController.NewServiceHandler(config.App.Name)
	userHandler := httpController.NewUserHandler(userUseCase, awardUseCase)
	achievementHandler := httpController.NewAchievementHandler(achievementUseCase, awardUseCase)
	statsHandler := httpController.NewStatsHandler(statsUseCase)

	if !config.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Инициализируем Gin роутер
	router := gin.New()
	router.Use(middleware.RequestLogger(logrus.StandardLogger()))
	router.Use(errors.RecoveryMiddleware())
	router.Use(middleware.CORS(middleware.NewCORSConfig()))
	router.Use(appMetrics.GinMiddleware())

	// Настраиваем обработчики для 404 и 405 ошибок
	router.HandleMethodNotAllowed = true
	router.NoRoute(errors.NotFoundHandler())
	router.NoMethod(errors.MethodNotAllowedHandler())

	// Регистрируем эндпоинты
	serviceHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router)
	achievementHandler.RegisterRoutes(router)
	statsHandler.RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(appMetrics.Handler()))

	// Настраиваем HTTP сервер
	httpServer := &http.Server{
		Addr:         ":" + config.HTTP.Port,
		Handler:      router,
		ReadTimeout:  config.HTTP.ReadTimeout,
		WriteTimeout: config.HTTP.WriteTimeout,
	}

	return &App{
		config:     config,
		httpServer: httpServer,
		db:         db,
		rabbitMQ:   rmq,
	}, nil
}

// connectRabbitMQ подключается к брокеру и объявляет exchange событий.
// Возвращает nil, если брокер выключен или недоступен.
func connectRabbitMQ(cfg *config.Config) *rabbitmq.RabbitMQ {
	if !cfg.RabbitMQ.Enabled {
		logrus.Info("RabbitMQ отключен, события о выдаче достижений публиковаться не будут")
		return nil
	}

	rmq, err := messaging.InitRabbitMQ(cfg.RabbitMQ)
	if err != nil {
		logrus.WithError(err).Warn("Не удалось подключиться к RabbitMQ, события отключены")
		return nil
	}

	exchanges := map[string]string{
		cfg.Events.Exchange: "topic",
	}
	if err := messaging.SetupExchanges(rmq, exchanges); err != nil {
		logrus.WithError(err).Warn("Ошибка при настройке RabbitMQ, события отключены")
		rmq.Close()
		return nil
	}

	return rmq
}

// Run запускает приложение
func (a *App) Run() error {
	// Запускаем HTTP сервер в горутине
	serverErr := make(chan error, 1)
	go func() {
		logrus.Infof("%s: HTTP сервер запущен на порту %s", a.config.App.Name, a.config.HTTP.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logrus.Info("Получен сигнал завершения, закрываем приложение...")
	case err := <-serverErr:
		logrus.WithError(err).Error("Ошибка HTTP сервера")
		a.Shutdown()
		return errors.AppendPrefix(err, "ошибка запуска HTTP сервера")
	}

	return a.Shutdown()
}

// Shutdown корректно завершает работу приложения
func (a *App) Shutdown() error {
	errGroup := errors.NewErrorGroup()

	// Закрываем HTTP сервер
	if a.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := a.httpServer.Shutdown(ctx); err != nil {
			errGroup.AddPrefix(err, "ошибка при закрытии HTTP сервера")
		}
	}

	// Закрываем RabbitMQ
	if a.rabbitMQ != nil {
		if err := a.rabbitMQ.Close(); err != nil {
			errGroup.AddPrefix(err, "ошибка при закрытии RabbitMQ")
		}
	}

	// Закрываем соединение с базой данных
	if a.db != nil {
		if err := database.CloseDB(a.db); err != nil {
			errGroup.AddPrefix(err, "ошибка при закрытии соединения с базой данных")
		}
	}

	if errGroup.HasErrors() {
		errors.LogError(errGroup, "Shutdown")
		return errGroup
	}

	logrus.Info("Приложение успешно завершено")
	return nil
}
