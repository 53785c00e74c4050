package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var Log = newLogger(os.Stderr, logrus.WarnLevel)

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(level)
	return log
}

// Init replaces the package logger. Unknown levels fall back to warn.
func Init(level string, out io.Writer) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.WarnLevel
	}
	Log = newLogger(out, parsed)
	if err != nil {
		Log.Warnf("unknown log level %q, using %s", level, parsed)
	}
}

func WithField(key string, value interface{}) *logrus.Entry {
	return Log.WithField(key, value)
}

func Debugf(format string, v ...interface{}) {
	Log.Debugf(format, v...)
}

func Info(v ...interface{}) {
	Log.Info(v...)
}

func Infof(format string, v ...interface{}) {
	Log.Infof(format, v...)
}

func Warnf(format string, v ...interface{}) {
	Log.Warnf(format, v...)
}

func Error(v ...interface{}) {
	Log.Error(v...)
}

func Errorf(format string, v ...interface{}) {
	Log.Errorf(format, v...)
}
