// Package models holds the server-side domain records.
package models

// User is the stored identity record. PasswordHash never leaves the server:
// it is excluded from JSON and from View.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}

// UserView is the public-safe projection of a User. It is exactly what gets
// signed into a token and returned to callers.
type UserView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// View strips the password hash.
func (u *User) View() UserView {
	return UserView{ID: u.ID, Email: u.Email, Name: u.Name}
}

// AuthResult is returned by register, login and verify.
type AuthResult struct {
	User  UserView `json:"user"`
	Token string   `json:"token"`
}
