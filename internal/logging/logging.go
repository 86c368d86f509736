package logging

import "go.uber.org/zap"

// Log is the process-wide logger. Init replaces it once in main; the
// default no-op keeps tests quiet.
var Log *zap.Logger = zap.NewNop()

func Init(diagnostics bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if diagnostics {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	Log = l
	return nil
}

func Sync() {
	_ = Log.Sync()
}
