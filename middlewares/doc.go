// Package middlewares provides HTTP middleware for portfolio applications.
//
// # Request ID
//
// RequestID assigns each request an ID, reusing a well-formed upstream ID
// (X-Request-ID, X-Amzn-Trace-Id, ...) or generating a ULID. Pair it with
// RequestIDExtractor so every log entry carries request_id:
//
//	app := portfolio.New(
//	    portfolio.WithLogger("web", middlewares.RequestIDExtractor()),
//	    portfolio.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover
//
// Recover turns panics into *PanicError values for the ErrorHandler.
//
// # Timeout
//
// Timeout puts a deadline on the request context. Because Context
// implements context.Context, passing c to outbound calls is enough for
// them to be cancelled at the deadline. A handler that overruns without
// writing produces a *TimeoutError.
//
// # CORS
//
// CORS answers preflight requests and decorates responses. WithStaticOrigin
// switches to fixed headers on every response, the contract of the contact API:
//
//	middlewares.CORS(
//	    middlewares.WithStaticOrigin("https://charlieallen.dev"),
//	    middlewares.WithAllowMethods("POST", "OPTIONS"),
//	    middlewares.WithAllowHeaders("Content-Type"),
//	    middlewares.WithPreflightStatus(http.StatusOK),
//	)
//
// # Rate limiting
//
// RateLimit counts requests per client IP in fixed windows through a
// ratelimit.Limiter and rejects the excess with 429 and Retry-After.
package middlewares
