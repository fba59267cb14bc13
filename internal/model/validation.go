package model

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validation limits
const (
	MaxNameLength    = 100
	MinEmailLength   = 5
	MaxEmailLength   = 255
	MaxAge           = 150
	DefaultListLimit = 10
	MaxListLimit     = 100
)

// Validate checks the create payload. The first failing rule is reported.
func (r CreateUserRequest) Validate() error {
	if reason := checkName(r.Name); reason != "" {
		return InvalidInput(reason)
	}
	if reason := checkEmail(r.Email); reason != "" {
		return InvalidInput(reason)
	}
	if reason := checkAge(r.Age); reason != "" {
		return InvalidInput(reason)
	}
	return nil
}

// Validate checks the fields that are present, then rejects an empty update.
func (r UpdateUserRequest) Validate() error {
	if r.Name != nil {
		if reason := checkName(*r.Name); reason != "" {
			return InvalidInput(reason)
		}
	}
	if r.Email != nil {
		if reason := checkEmail(*r.Email); reason != "" {
			return InvalidInput(reason)
		}
	}
	if r.Age != nil {
		if reason := checkAge(*r.Age); reason != "" {
			return InvalidInput(reason)
		}
	}
	if !r.HasUpdates() {
		return InvalidInput("No updates provided")
	}
	return nil
}

// Validate checks the pagination parameters. Offset has no upper bound.
func (q ListUsersQuery) Validate() error {
	if q.Limit != nil && (*q.Limit < 1 || *q.Limit > MaxListLimit) {
		return InvalidInput(fmt.Sprintf("Limit must be between 1 and %d", MaxListLimit))
	}
	if q.Offset != nil && *q.Offset < 0 {
		return InvalidInput("Offset cannot be negative")
	}
	return nil
}

func checkName(name string) string {
	name = NormalizeName(name)
	if name == "" {
		return "Name cannot be empty"
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return fmt.Sprintf("Name cannot exceed %d characters", MaxNameLength)
	}
	return ""
}

func checkEmail(email string) string {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") || utf8.RuneCountInString(email) < MinEmailLength {
		return "Invalid email format"
	}
	if utf8.RuneCountInString(email) > MaxEmailLength {
		return fmt.Sprintf("Email cannot exceed %d characters", MaxEmailLength)
	}
	return ""
}

func checkAge(age int) string {
	if age < 0 {
		return "Age cannot be negative"
	}
	if age > MaxAge {
		return "Age must be realistic"
	}
	return ""
}
