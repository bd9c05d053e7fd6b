package logging

// Tee returns a Logger that forwards every message to each of loggers.
func Tee(loggers ...Logger) Logger {
	return tee(loggers)
}

type tee []Logger

func (t tee) Debugf(format string, args ...any) {
	for _, l := range t {
		l.Debugf(format, args...)
	}
}

func (t tee) Infof(format string, args ...any) {
	for _, l := range t {
		l.Infof(format, args...)
	}
}

func (t tee) Warnf(format string, args ...any) {
	for _, l := range t {
		l.Warnf(format, args...)
	}
}

func (t tee) Errorf(format string, args ...any) {
	for _, l := range t {
		l.Errorf(format, args...)
	}
}
