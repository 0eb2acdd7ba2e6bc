package httpserver

import "errors"

var (
	// ErrStart wraps listen and serve failures from Run.
	ErrStart = errors.New("httpserver: start")
	// ErrShutdown wraps failures from Shutdown.
	ErrShutdown = errors.New("httpserver: graceful shutdown")
	// ErrAlreadyRunning is joined with ErrStart when Run is called twice.
	ErrAlreadyRunning = errors.New("httpserver: already running")
)
