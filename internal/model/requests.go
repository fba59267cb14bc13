package model

// CreateUserRequest is the payload for creating a user
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// UpdateUserRequest is a partial update; nil fields are left unchanged
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Age   *int    `json:"age,omitempty"`
}

// HasUpdates returns true if at least one field is set
func (r UpdateUserRequest) HasUpdates() bool {
	return r.Name != nil || r.Email != nil || r.Age != nil
}

// Apply copies the set fields onto u, normalizing name and email.
func (r UpdateUserRequest) Apply(u User) User {
	if r.Name != nil {
		u.Name = NormalizeName(*r.Name)
	}
	if r.Email != nil {
		u.Email = NormalizeEmail(*r.Email)
	}
	if r.Age != nil {
		u.Age = *r.Age
	}
	return u
}

// ListUsersQuery holds offset/limit pagination parameters
type ListUsersQuery struct {
	Limit  *int `json:"limit,omitempty"`
	Offset *int `json:"offset,omitempty"`
}

// EffectiveLimit returns the page size, defaulted and clamped to MaxListLimit
func (q ListUsersQuery) EffectiveLimit() int {
	limit := DefaultListLimit
	if q.Limit != nil {
		limit = *q.Limit
	}
	return min(limit, MaxListLimit)
}

// EffectiveOffset returns the number of users to skip
func (q ListUsersQuery) EffectiveOffset() int {
	if q.Offset == nil || *q.Offset < 0 {
		return 0
	}
	return *q.Offset
}
