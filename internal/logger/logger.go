package logger

import "go.uber.org/zap"

var log *zap.Logger

func Init(isDev bool) error {
	var err error
	if isDev {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	return err
}

func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}

func L() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
