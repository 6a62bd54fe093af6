package trainees

import "time"

// Trainee is a gym member account as exposed on the wire. The credential
// hash stays inside the repository and the auth module.
type Trainee struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Timezone  *string   `json:"timezone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateTrainee carries the validated signup fields. Password is the raw
// secret; the service hashes it before it reaches the store.
type CreateTrainee struct {
	Name     string
	Email    string
	Password string
	Timezone string
}

// Patch has one optional slot per mutable attribute so that only supplied
// fields change. Nil means "leave as is"; an empty Timezone clears the
// column.
type Patch struct {
	Name     *string
	Email    *string
	Password *string
	Timezone *string
}

func (p Patch) isEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Password == nil && p.Timezone == nil
}
