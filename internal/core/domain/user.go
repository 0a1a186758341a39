package domain

import "time"

// User models a registered account. PasswordHash is a bcrypt hash; the
// plaintext password is never stored or logged.
type User struct {
	ID           int64      `json:"id"`
	UserName     string     `json:"user_name"`
	FullName     string     `json:"full_name"`
	Nickname     string     `json:"nickname,omitempty"`
	PasswordHash string     `json:"-"`
	DateCreated  time.Time  `json:"date_created"`
	DateModified *time.Time `json:"date_modified,omitempty"`
}

// Principal is the verified identity attached to a request after a
// successful authentication. It lives only for the duration of the request.
type Principal struct {
	Subject string
	UserID  int64
}
