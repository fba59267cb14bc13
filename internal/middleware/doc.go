// Package middleware provides HTTP middleware for the users API.
//
// # Outer Chain
//
// Applied around the whole router with Chain, outermost first:
//
//	handler := middleware.Chain(router,
//	    middleware.RequestID,
//	    middleware.Logger(logger),
//	    middleware.Recovery(logger),
//	    middleware.CORS(corsCfg),
//	    middleware.Compress,
//	)
//
// RequestID runs first so every later log line carries the id. Logger sits
// outside Recovery so a recovered panic is still logged with its 500.
//
// # Router Middleware
//
// Metrics and Tracing read the matched chi route pattern after the request
// is served, so they are installed with chi's Use inside the router rather
// than in the outer chain.
package middleware
