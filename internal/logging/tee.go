package logging

// Tee fans every call out to all loggers. Each keeps its own level and format.
func Tee(loggers ...Logger) Logger {
	return tee(loggers)
}

type tee []Logger

func (t tee) Debug(msg string, args ...any) {
	for _, l := range t {
		l.Debug(msg, args...)
	}
}

func (t tee) Info(msg string, args ...any) {
	for _, l := range t {
		l.Info(msg, args...)
	}
}

func (t tee) Warn(msg string, args ...any) {
	for _, l := range t {
		l.Warn(msg, args...)
	}
}

func (t tee) Error(msg string, args ...any) {
	for _, l := range t {
		l.Error(msg, args...)
	}
}

func (t tee) With(args ...any) Logger {
	out := make(tee, len(t))
	for i, l := range t {
		out[i] = l.With(args...)
	}
	return out
}
