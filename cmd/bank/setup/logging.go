package setup

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ConfigureLogging sets the logrus level and installs a zap global logger at
// the same level for the library packages.
func ConfigureLogging(level string) (func(), error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logrus.SetLevel(lvl)

	zapLevel := zapcore.ErrorLevel
	switch lvl {
	case logrus.TraceLevel, logrus.DebugLevel:
		zapLevel = zapcore.DebugLevel
	case logrus.InfoLevel:
		zapLevel = zapcore.InfoLevel
	case logrus.WarnLevel:
		zapLevel = zapcore.WarnLevel
	}
	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	zapConfig.DisableStacktrace = true
	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}
	undo := zap.ReplaceGlobals(logger)
	return func() {
		_ = logger.Sync()
		undo()
	}, nil
}
