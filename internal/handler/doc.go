// Package handler implements the HTTP boundary of the users API.
//
// # Routes
//
//	GET    /                          welcome text
//	GET    /metrics                   Prometheus exposition (when enabled)
//	GET    /api/v1/health             liveness
//	GET    /api/v1/users              list (limit, offset)
//	POST   /api/v1/users              create
//	GET    /api/v1/users/{id}         read
//	PUT    /api/v1/users/{id}         partial update
//	DELETE /api/v1/users/{id}         delete
//	GET    /api/v1/users/{id}/profile profile view
//
// # Response Format
//
// Successful responses are wrapped as {"data": ..., "timestamp": ...}.
// Failures are {"error": {"code", "message", "timestamp"}}; MapError is the
// single place where error kinds become status codes.
package handler
