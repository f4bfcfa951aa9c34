package user

import "time"

// Profile holds the descriptive data associated 1:1 with a user.
type Profile struct {
	UserID    ID
	FirstName string
	LastName  string
	BirthDate time.Time
}
