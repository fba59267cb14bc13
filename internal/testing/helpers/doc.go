// Package helpers provides test utility functions for the users API.
//
// # Pointer Helpers
//
// Create pointers to literal values for partial updates and queries:
//
//	name := helpers.StringPtr("Jane")
//	limit := helpers.IntPtr(25)
//
// # Request Helpers
//
// Build and serve requests against a handler:
//
//	rr := helpers.NewRequest(t, http.MethodPost, "/api/v1/users").
//	    WithBody(model.CreateUserRequest{Name: "Jane", Email: "jane@example.com", Age: 30}).
//	    Do(router)
//
// # Response Helpers
//
//	user := helpers.DecodeData[model.UserResponse](t, rr)
//	helpers.AssertErrorCode(t, rr, http.StatusNotFound, "USER_NOT_FOUND")
package helpers
