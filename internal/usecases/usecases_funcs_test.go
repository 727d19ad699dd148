package usecases

import (
	"io"

	"github.com/sirupsen/logrus"
)

func newDiscardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
