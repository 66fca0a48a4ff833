package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New инициализирует общий логгер маркетплейса. Его получают HTTP-middleware,
// сервис передачи NFT и фоновые воркеры уведомлений.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)
	l.SetFormatter(new(logrus.JSONFormatter))
	l.SetLevel(logrus.InfoLevel)

	// вне продакшна (по GIN_MODE) читаемый текстовый вывод и Debug уровень
	if os.Getenv("GIN_MODE") != "release" {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(new(logrus.TextFormatter))
	}

	return l
}
