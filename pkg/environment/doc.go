// Package environment names the deployment environment (development, staging,
// production) and carries it through context.Context and log records.
//
// Parse normalises the configured APP_ENV value. Middleware stores the
// environment on every request context and LoggerExtractor copies it onto
// log records written with that context.
//
//	env := environment.Parse(cfg.Env)
//	r.Use(environment.Middleware(env))
package environment
