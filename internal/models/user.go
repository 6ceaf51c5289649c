// Package models defines the entities stored inside the embedded database
// and the record exchanged with the cloud relay.
package models

// Role of a user account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// User is an account that can sign in to the application. Usernames are
// unique case-insensitively. Credentials are stored as an argon2id salt
// and verifier, never as plaintext.
type User struct {
	ID       string
	Username string
	Salt     []byte
	Verifier []byte
	Name     string
	Role     Role
}
