package logger

import (
	"github.com/sirupsen/logrus"
)

// Log — общий логгер приложения. Заполняется в Init при старте.
var Log *logrus.Logger

// Init создаёт логгер с заданным уровнем. Нераспознанный уровень
// молча понижается до info.
func Init(level string) {
	Log = logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	// По умолчанию JSON: production логи уходят в коллектор.
	Log.SetFormatter(&logrus.JSONFormatter{})
}

// SetTextFormatter переключает вывод на читаемый текст для
// локальной разработки.
func SetTextFormatter() {
	if Log != nil {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}
