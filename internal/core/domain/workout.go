package domain

import "time"

// Workout is a logged training session.
type Workout struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	UserID         string    `json:"user_id" bson:"user_id"`
	Type           string    `json:"type" bson:"type"`
	DurationMin    int       `json:"duration_min" bson:"duration_min"`
	CaloriesBurned float64   `json:"calories_burned,omitempty" bson:"calories_burned,omitempty"`
	Notes          string    `json:"notes,omitempty" bson:"notes,omitempty"`
	PerformedAt    time.Time `json:"performed_at" bson:"performed_at"`
}
