package logger

import (
	"ecertify/pkg/utilities/timeutil"

	"github.com/rs/zerolog"
)

func AddSinkToLoggerInstance(loggerInstance *Logger, sinkFunction func(string, zerolog.Level, timeutil.TimeUTC)) {
	loggerInstance.sink = sinkFunction
}

func (l *Logger) activateSink(msg string, level zerolog.Level) {
	if l.sink == nil || level < l.zl.GetLevel() {
		return
	}
	l.sink(msg, level, timeutil.NowUTC())
}

// WithoutSink returns a copy of l whose lines are never forwarded to the sink.
func (l *Logger) WithoutSink() *Logger {
	return &Logger{zl: l.zl}
}
