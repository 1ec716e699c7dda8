package messaging

import (
	"github.com/sirupsen/logrus"

	"github.com/director74/achievements/pkg/config"
	"github.com/director74/achievements/pkg/rabbitmq"
)

// MessagePublisher интерфейс для публикации сообщений
type MessagePublisher interface {
	PublishMessage(exchange, routingKey string, message interface{}) error
}

// ExchangeDeclarer объявляет exchanges брокера
type ExchangeDeclarer interface {
	DeclareExchange(name string, kind string) error
}

// InitRabbitMQ инициализирует подключение к RabbitMQ с общими параметрами
func InitRabbitMQ(cfg config.RabbitMQConfig) (*rabbitmq.RabbitMQ, error) {
	rmqCfg := rabbitmq.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		User:     cfg.User,
		Password: cfg.Password,
		VHost:    cfg.VHost,
	}

	return rabbitmq.NewRabbitMQ(rmqCfg)
}

// PublishWithLogging публикует сообщение с логированием успеха/ошибки
func PublishWithLogging(publisher MessagePublisher, exchange, routingKey string, message interface{}) error {
	err := publisher.PublishMessage(exchange, routingKey, message)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"exchange":    exchange,
			"routing_key": routingKey,
		}).Error("Ошибка при публикации сообщения")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"exchange":    exchange,
		"routing_key": routingKey,
	}).Debug("Сообщение опубликовано")
	return nil
}

// SetupExchanges объявляет exchanges сервиса (имя -> тип)
func SetupExchanges(broker ExchangeDeclarer, exchanges map[string]string) error {
	for name, kind := range exchanges {
		if err := broker.DeclareExchange(name, kind); err != nil {
			return err
		}
	}
	return nil
}
