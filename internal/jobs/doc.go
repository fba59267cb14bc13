// Package jobs holds background work that runs beside the HTTP server.
//
// UserCountReporter samples the store size on a fixed interval and publishes
// it as the users_stored gauge:
//
//	reporter := jobs.NewUserCountReporter(svc, m, logger, 30*time.Second)
//	reporter.Start()
//	defer reporter.Stop()
package jobs
