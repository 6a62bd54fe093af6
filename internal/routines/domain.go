package routines

import (
	"encoding/json"
	"time"
)

// TraineeSummary is the embedded owner reference on routine responses.
type TraineeSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Routine is a trainee's weekly availability plan. Availability is an
// opaque JSON document owned by the client.
type Routine struct {
	ID           string          `json:"id"`
	TraineeID    string          `json:"userId"`
	Availability json.RawMessage `json:"availability"`
	Trainee      TraineeSummary  `json:"trainee"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
