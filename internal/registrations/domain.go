package registrations

import "time"

// StatusScheduled is the default status for a fresh registration.
const StatusScheduled = "scheduled"

// TraineeSummary is the embedded owner reference on registration responses.
type TraineeSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Registration books a trainee into a workout event. EventID is stored
// opaque; the booking system that mints it lives outside this service.
type Registration struct {
	ID           string         `json:"id"`
	EventID      string         `json:"eventId"`
	TraineeID    string         `json:"userId"`
	InviteeEmail string         `json:"inviteeEmail"`
	StartTime    time.Time      `json:"startTime"`
	EndTime      *time.Time     `json:"endTime"`
	Status       string         `json:"status"`
	Trainee      TraineeSummary `json:"trainee"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// CreateRegistration carries the validated creation fields.
type CreateRegistration struct {
	EventID      string
	TraineeID    string
	InviteeEmail string
	StartTime    time.Time
	EndTime      *time.Time
	Status       string
}

// Patch has one optional slot per mutable attribute.
type Patch struct {
	EventID      *string
	TraineeID    *string
	InviteeEmail *string
	StartTime    *time.Time
	EndTime      *time.Time
	Status       *string
}

func (p Patch) isEmpty() bool {
	return p.EventID == nil && p.TraineeID == nil && p.InviteeEmail == nil &&
		p.StartTime == nil && p.EndTime == nil && p.Status == nil
}
