package model

import "time"

// User is a registered account. PasswordHash holds a bcrypt hash; the
// plaintext password never leaves the registration and login flows.
type User struct {
	CreatedAt        time.Time
	Username         string
	FirstName        string
	LastName         string
	Phone            string
	PasswordHash     string
	City             string
	Email            string
	Birthdate        string // ISO calendar date
	SecurityQuestion string
	SecurityAnswer   string
}
