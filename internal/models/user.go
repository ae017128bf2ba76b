package models

import "fmt"

// User represents a chat user known to PayLash.
type User struct {
	// ID is assigned by the front end (e.g. the chat platform's numeric user id).
	ID string

	// FirstName is the user's display name, if the platform provides one.
	FirstName string

	// Username is the platform handle, if any.
	Username string

	// Alias is the user's active shareable identifier, normalized to lower case.
	// Other users can refer to this user by alias instead of by ID.
	Alias string

	// CreatedAt is the Unix timestamp when the user was first registered.
	CreatedAt int64
}

// DisplayName returns the first known name of the user:
// first name, then username, then a "User <id>" placeholder.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.FirstName != "" {
		return u.FirstName
	}
	if u.Username != "" {
		return u.Username
	}
	return PlaceholderName(u.ID)
}

// PlaceholderName is the name shown for a user id with no known profile.
func PlaceholderName(userID string) string {
	return fmt.Sprintf("User %s", userID)
}
