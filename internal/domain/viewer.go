package domain

import "strings"

type User struct {
	Name string
}

// Viewer is the authentication state supplied by the auth collaborator.
type Viewer struct {
	Authenticated bool
	User          *User
}

// FirstName returns the first whitespace-separated token of the user's name, or "".
func (v Viewer) FirstName() string {
	if v.User == nil {
		return ""
	}
	parts := strings.Fields(v.User.Name)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}
