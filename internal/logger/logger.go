package logger

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/santiagopugliese/personal-finances/config"
)

var (
	log  zerolog.Logger
	once sync.Once
)

func init() {
	// Logger por defecto hasta que Init sea llamado con la config real.
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// Init configures the global logger from the application config.
// In development the output is the zerolog console writer; everywhere
// else it is plain JSON on stdout.
func Init(cfg *config.Config) {
	once.Do(func() {
		level, err := zerolog.ParseLevel(cfg.App.LogLevel)
		if err != nil {
			level = zerolog.InfoLevel
		}

		if cfg.App.Environment == "development" {
			output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
			log = zerolog.New(output).Level(level).With().Timestamp().Logger()
			return
		}

		log = zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	})
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
