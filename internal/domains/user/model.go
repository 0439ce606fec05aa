package user

import "time"

// User is the credential-store record. The password hash never leaves the
// backend: it is excluded from JSON and from every DTO.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Profile is the public shape returned by GET /me.
type Profile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ToProfile strips the user down to its public fields.
func (u *User) ToProfile() Profile {
	return Profile{ID: u.ID, Name: u.Name, Email: u.Email}
}
