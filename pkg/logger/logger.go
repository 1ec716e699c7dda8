// Package logger настраивает общий логгер logrus для сервиса.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Setup настраивает стандартный логгер logrus.
// В режиме отладки пишет читаемый текст с уровнем Debug, иначе JSON с уровнем Info.
func Setup(appName string, debug bool) {
	configure(logrus.StandardLogger(), os.Stdout, debug)
	logrus.WithFields(logrus.Fields{
		"app":   appName,
		"debug": debug,
	}).Info("Логгер настроен")
}

func configure(l *logrus.Logger, out io.Writer, debug bool) {
	l.SetOutput(out)
	if debug {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return
	}
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.JSONFormatter{})
}
