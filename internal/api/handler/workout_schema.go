package handler

import "time"

type logWorkoutRequest struct {
	Type           string    `json:"type"            validate:"required"`
	DurationMin    int       `json:"duration_min"    validate:"required,gt=0,max=1440"`
	CaloriesBurned float64   `json:"calories_burned" validate:"gte=0"`
	Notes          string    `json:"notes"`
	PerformedAt    time.Time `json:"performed_at"`
}

type workoutResponse struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	DurationMin    int       `json:"duration_min"`
	CaloriesBurned float64   `json:"calories_burned,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	PerformedAt    time.Time `json:"performed_at"`
}

type workoutListResponse struct {
	Data []workoutResponse `json:"data"`
}
