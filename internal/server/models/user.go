package models

import "time"

// User is a credential-store record. PasswordHash is opaque to everything
// except the password verifier. Roles is a set carried as a slice; the
// comma-delimited storage form never leaves the repository layer.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the user-facing projection of a User. It never carries the
// password hash.
type Profile struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
}

// Profile returns the user-facing view of u. The role slice is copied so the
// caller cannot mutate the stored record.
func (u *User) Profile() *Profile {
	roles := make([]string, len(u.Roles))
	copy(roles, u.Roles)
	return &Profile{
		ID:        u.ID,
		Email:     u.Email,
		Roles:     roles,
		CreatedAt: u.CreatedAt,
	}
}
