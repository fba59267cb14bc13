// Package repository implements the data access layer for the users API.
//
// # Storage
//
// UserRepository keeps users in a map keyed by id behind a single mutex.
// Every method holds the lock for its whole duration, so the email
// uniqueness check in Create and Update cannot interleave with another
// write. Values are returned by copy; callers never share the stored
// record.
//
// # Ordering
//
// FindAll sorts by name, then creation time, then id. Pagination in the
// service layer relies on this order being stable between calls.
//
// # Seeding
//
// Seed loads SampleUsers (or any caller-supplied list) through the normal
// validation and create path when sample data is enabled in config.
package repository
