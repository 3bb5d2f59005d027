package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger es la interfaz de logging usada por toda la aplicación
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// ZerologLogger implementa Logger sobre zerolog
type ZerologLogger struct {
	log zerolog.Logger
}

// NewLogger crea una nueva instancia de Logger. El nivel se controla con la
// variable de entorno LOG_LEVEL (debug, info, warn, error; por defecto info).
func NewLogger() Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zl := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	return &ZerologLogger{log: zl}
}

// Info registra un mensaje informativo
func (l *ZerologLogger) Info(msg string, keysAndValues ...interface{}) {
	l.event(l.log.Info(), msg, keysAndValues)
}

// Error registra un mensaje de error
func (l *ZerologLogger) Error(msg string, keysAndValues ...interface{}) {
	l.event(l.log.Error(), msg, keysAndValues)
}

// Debug registra un mensaje de depuración
func (l *ZerologLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.event(l.log.Debug(), msg, keysAndValues)
}

// Warn registra un mensaje de advertencia
func (l *ZerologLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.event(l.log.Warn(), msg, keysAndValues)
}

func (l *ZerologLogger) event(e *zerolog.Event, msg string, keysAndValues []interface{}) {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, keysAndValues[i+1])
	}
	e.Msg(msg)
}
