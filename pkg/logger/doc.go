// Package logger builds *slog.Logger instances from functional options and
// keeps attribute names consistent across the service.
//
// New picks a JSON or text handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs ContextExtractor callbacks on
// every record so that request scoped values (request id, client IP,
// environment) appear without being passed explicitly.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.AppName),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
//	log.WarnContext(ctx, "input rejected",
//		logger.Category("xss"),
//		logger.Rule("xss.script_tag"),
//		logger.InputLength(n),
//	)
//
// Attribute helpers such as Error, RequestID and Rule return an empty
// slog.Attr for zero values, so callers can pass them unconditionally.
// Untrusted input is never logged; use InputLength instead.
//
// Nop returns a logger that discards everything and serves as the default
// for packages that accept an optional logger.
package logger
