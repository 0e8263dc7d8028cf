// Package middleware provides HTTP middleware for the phonebook API.
//
// # Available Middleware
//
//   - RequestID: assigns or propagates X-Request-ID
//   - Logger: one structured slog line per request
//   - Recovery: turns panics into 500 {"error":"internal server error"}
//   - CORS: cross-origin headers and preflight handling
//
// Chain composes them, outermost first:
//
//	wrapped := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	    middleware.CORS(cfg.Server.AllowedOrigins),
//	)
//
// # Context Values
//
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
