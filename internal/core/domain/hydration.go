package domain

import (
	"errors"
	"time"
)

var ErrInvalidAmount = errors.New("amount must be between 1 and 5000 ml")

// WaterLog is a single water intake entry.
type WaterLog struct {
	ID       string    `json:"id" bson:"_id,omitempty"`
	UserID   string    `json:"user_id" bson:"user_id"`
	AmountML int       `json:"amount_ml" bson:"amount_ml"`
	Source   string    `json:"source,omitempty" bson:"source,omitempty"`
	LoggedAt time.Time `json:"logged_at" bson:"logged_at"`
}
