// Package fixtures provides test data factories for the users API.
//
// # Factory Functions
//
//	u := fixtures.User()                          // Default user, unique email
//	u := fixtures.User(fixtures.WithAge(17))      // Minor
//	page := fixtures.Users(25)                    // Member 01 .. Member 25
//	req := fixtures.CreateRequest(fixtures.WithName("Zed"))
//
// # Determinism
//
// Names are sequential and CreatedAt is fixed to Epoch, so ordering
// assertions do not depend on wall-clock time.
package fixtures
