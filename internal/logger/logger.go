package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	Info  *logrus.Logger
	Error *logrus.Logger
)

func Init() {
	Info = logrus.New()
	Error = logrus.New()

	Info.SetOutput(os.Stdout)
	Info.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	Info.SetLevel(logrus.InfoLevel)

	Error.SetOutput(os.Stderr)
	Error.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	Error.SetLevel(logrus.ErrorLevel)
}
