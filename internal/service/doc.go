// Package service implements the business logic for the users API.
//
// UserService sits between the HTTP handlers and the repository. Each
// operation validates its input, normalizes it, calls the repository and
// maps the result to a response DTO. Errors from validation and storage are
// returned unchanged; translating them to HTTP status codes is the
// handler package's job.
//
// # Dependencies
//
// Services are built from a config struct so optional collaborators can be
// left out in tests:
//
//	svc := service.NewUserService(service.UserServiceConfig{
//	    Repo:    repo,
//	    Logger:  logger,
//	    Metrics: m,
//	})
//
// A nil Logger falls back to slog.Default and a nil Metrics records nothing.
// Every operation opens an OpenTelemetry span; with no tracer provider
// installed these are no-ops.
package service
