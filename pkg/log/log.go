package log

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger sends logrus output to a rotated file at path, or to stderr when
// path is empty. Stdout is reserved for command and plugin output.
func InitLogger(path string) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if path == "" {
		logrus.SetOutput(os.Stderr)
		return
	}
	logrus.SetOutput(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	})
}

func SetLevel(level string) error {
	if level == "" {
		return nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	logrus.SetLevel(lvl)
	return nil
}
