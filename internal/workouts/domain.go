package workouts

import "time"

// Workout is a class type offered by the gym.
type Workout struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Duration    int       `json:"duration"`
	Description *string   `json:"description"`
	Color       *string   `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateWorkout carries the validated creation fields. Duration is in
// minutes; empty description or color stores as null.
type CreateWorkout struct {
	Name        string
	Duration    int
	Description string
	Color       string
}

// Patch has one optional slot per mutable attribute. An empty Description
// or Color clears the column.
type Patch struct {
	Name        *string
	Duration    *int
	Description *string
	Color       *string
}

func (p Patch) isEmpty() bool {
	return p.Name == nil && p.Duration == nil && p.Description == nil && p.Color == nil
}
