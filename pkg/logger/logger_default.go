package logger

import "sync"

type LoggerArg struct {
	Key   string
	Value string
}

type GlobalLoggerConfig struct {
	Args []LoggerArg
}

var (
	defaultLogger *Logger
	onceLogger    sync.Once
	defaultMu     sync.RWMutex
)

func InitDefaultLogger(config GlobalLoggerConfig) {
	onceLogger.Do(func() {
		l := New()
		ctx := l.zl.With()
		for _, arg := range config.Args {
			ctx = ctx.Str(arg.Key, arg.Value)
		}
		l.zl = ctx.Logger()

		defaultMu.Lock()
		defaultLogger = l
		defaultMu.Unlock()
	})
}

// ApplyConfig adjusts the level of the default logger once the config file is read.
func ApplyConfig(cfg LoggerConfig) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger != nil {
		defaultLogger.zl = defaultLogger.zl.Level(cfg.LogLevel)
	}
}

func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	if defaultLogger == nil {
		panic("Default logger not initialized: call InitDefaultLogger() first")
	}
	return defaultLogger
}
