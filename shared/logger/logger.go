package logger

import (
	"context"
	"io"
	"os"
	"sharedhouse/config"
	"sharedhouse/shared/constant"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global zerolog logger. Development builds get a
// human readable console writer, everything else logs JSON lines.
func InitLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var output io.Writer = os.Stdout
	if cfg == nil || cfg.IsDevelopment() {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	log.Logger = zerolog.New(output).With().Timestamp().Logger()
	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}

// ctxFields are the identity values the auth middleware stores on a request.
var ctxFields = map[any]string{
	constant.ContextKeyUserID:     "userId",
	constant.ContextKeyUsername:   "username",
	constant.ContextKeyRoomNumber: "roomNumber",
	constant.ContextKeyTokenID:    "tokenId",
}

// Ctx returns the global logger enriched with the request scoped fields found in ctx.
func Ctx(ctx context.Context) *zerolog.Logger {
	lc := log.Logger.With()

	if requestID, ok := ctx.Value(constant.ContextKeyRequestID).(string); ok && requestID != "" {
		lc = lc.Str("requestId", requestID)
	}

	for key, field := range ctxFields {
		if value, ok := ctx.Value(key).(string); ok && value != "" {
			lc = lc.Str(field, value)
		}
	}

	l := lc.Logger()

	return &l
}
