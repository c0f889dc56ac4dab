package launcher

import (
	"io"

	"github.com/ethereum/go-ethereum/log"
	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
)

// verbosity 0..5 maps onto fatal..trace
var logrusLevels = []logrus.Level{
	logrus.FatalLevel,
	logrus.ErrorLevel,
	logrus.WarnLevel,
	logrus.InfoLevel,
	logrus.DebugLevel,
	logrus.TraceLevel,
}

// setupLogging builds the command logger and routes the library's go-ethereum style log
// records to the same writer at the same verbosity.
func setupLogging(cfg Config, w io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(logrusLevels[cfg.Logging.Verbosity])

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   cfg.Logging.Color,
			DisableColors: !cfg.Logging.Color,
		})
	}

	if cfg.Sentry.DSN != "" {
		hook, err := logrus_sentry.NewSentryHook(cfg.Sentry.DSN, []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		})
		if err != nil {
			return nil, err
		}
		logger.AddHook(hook)
	}

	log.Root().SetHandler(log.LvlFilterHandler(
		log.Lvl(cfg.Logging.Verbosity),
		log.StreamHandler(w, log.TerminalFormat(cfg.Logging.Color)),
	))

	return logger, nil
}
