package auth

import "time"

// Trainee is a credential record as stored by the trainee store.
type Trainee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Timezone     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the trainee as exposed on the wire, without the credential hash.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Timezone  *string   `json:"timezone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Profile strips the password hash from the record.
func (t *Trainee) Profile() Profile {
	return Profile{
		ID:        t.ID,
		Name:      t.Name,
		Email:     t.Email,
		Timezone:  t.Timezone,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
