package handler

import "time"

type logWaterRequest struct {
	AmountML int       `json:"amount_ml" validate:"required,gt=0,max=5000"`
	LoggedAt time.Time `json:"logged_at"`
}

type waterLogResponse struct {
	ID       string    `json:"id"`
	AmountML int       `json:"amount_ml"`
	Source   string    `json:"source,omitempty"`
	LoggedAt time.Time `json:"logged_at"`
}

type dailyTotalResponse struct {
	Date    string `json:"date"`
	TotalML int    `json:"total_ml"`
	Entries int    `json:"entries"`
}

// intakeEventRequest is one hydration event in an offline sync batch.
type intakeEventRequest struct {
	AmountML int       `json:"amount_ml" validate:"required,gt=0,max=5000"`
	LoggedAt time.Time `json:"logged_at" validate:"required"`
	Source   string    `json:"source"` // empty defaults to "sync"
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}
