// Package server provides the HTTP server for search-task-gang.
//
// The server uses the Gin web framework and serves the API over plain HTTP.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                     HTTP Server :8000                         │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Logger (request/response logging)                      │  │
//	│  │  Recovery (panic recovery with zap logging)             │  │
//	│  │  RateLimit (optional, golang.org/x/time/rate)           │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Router (/api/v1)                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Handlers (registered via callback)                     │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Modes
//
// Development Mode (ServerMode = "dev"): Gin runs in debug mode.
//
// Production Mode (ServerMode = "prod"): Gin runs in release mode.
//
// Unknown routes under /api/v1 return a JSON 404.
//
// # Server Lifecycle
//
//	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
//	    v1.RegisterHandlers(router, handler)
//	})
//
//	go func() {
//	    if err := srv.Start(ctx); !errors.Is(err, http.ErrServerClosed) {
//	        log.Errorw("server error", "error", err)
//	    }
//	}()
//
//	<-ctx.Done()
//	srv.Stop(shutdownCtx)
//
// Stop performs a graceful shutdown, waiting for in-flight searches to
// complete.
//
// # Middleware
//
// Logger Middleware (middlewares.Logger):
//   - Logs request start at debug level: method, path, query, IP, user-agent, timestamp
//   - Logs request end: all above + status code, latency
//   - Errors logged separately if present
//   - Uses zap structured logging with "http" logger name
//
// Rate Limit Middleware (middlewares.RateLimit):
//   - Enabled when RequestsLimit > 0
//   - Token bucket of RequestsLimit tokens refilled at RequestsLimit per second
//   - Returns 429 Too Many Requests when empty
//
// Recovery Middleware (ginzap.RecoveryWithZap):
//   - Recovers from panics in handlers
//   - Logs panic details with stack trace
//   - Returns 500 Internal Server Error
package server
