package logger

import (
	"io"
	"os"
	"time"

	"lodgehub/config"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const envLocal = "local"

// InitLogger installs a human readable console logger at trace level. Configure
// narrows it once the configuration is known.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// Configure applies LOG_LEVEL and, outside local runs, switches to JSON lines
// tagged with the service name and environment.
func Configure(cfg *config.Config) {
	Setup(cfg, os.Stdout)
}

// Setup is Configure with an explicit writer.
func Setup(cfg *config.Config, out io.Writer) {
	env := cfg.Server.Env
	if env == "" {
		env = envLocal
	}

	if env != envLocal {
		zerolog.TimeFieldFormat = time.RFC3339
		log.Logger = zerolog.New(out).With().
			Timestamp().
			Str("service", cfg.App.Name).
			Str("env", env).
			Logger()
	}

	SetLogLevel(cfg)
}

// SetLogLevel parses LOG_LEVEL, falling back to trace when it is invalid.
func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
