// Package logger builds *slog.Logger values with functional options and
// transparent injection of values stored in context.Context.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and wraps it in LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks on every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("mailer"),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//	mailer := goodmail.NewMailer(goodmail.WithLogger(log))
//
// Level and format can come from the environment through Config
// (LOG_LEVEL, LOG_FORMAT) and WithConfig.
//
// Attribute helpers (Error, Subject, Recipients and friends) keep key names
// consistent. Error returns an empty Attr for a nil error, so
//
//	log.Info("rendered", logger.Error(err))
//
// needs no nil check. Nop returns a logger that drops everything; it is the
// default for a Mailer without WithLogger.
package logger
