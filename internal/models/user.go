package models

import "time"

const DefaultProfilePicture = "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcRseRj5MjxLYtgPrmGHS01YBytPjIkGKk8Zaw&s"

type User struct {
	ID             string    `json:"_id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"` // Don't expose in JSON
	ProfilePicture string    `json:"profilePicture"`
	IsAdmin        bool      `json:"isAdmin"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Identity is the authenticated caller as resolved by the session middleware.
type Identity struct {
	ID      string
	IsAdmin bool
}

type NewUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserPatch carries an update payload. A nil field was not supplied.
type UserPatch struct {
	Username       *string `json:"username,omitempty"`
	Email          *string `json:"email,omitempty"`
	Password       *string `json:"password,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

// UserChanges is a validated UserPatch. Password is still plaintext here
// and must be hashed before it reaches the store.
type UserChanges struct {
	Username       *string
	Email          *string
	Password       *string
	ProfilePicture *string
}

func (c UserChanges) Empty() bool {
	return c.Username == nil && c.Email == nil && c.Password == nil && c.ProfilePicture == nil
}

type UserList struct {
	Users          []User `json:"users"`
	TotalUsers     int    `json:"totalUsers"`
	LastMonthUsers int    `json:"lastMonthUsers"`
}
