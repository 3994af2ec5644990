package domain

import (
	"errors"
	"time"
)

var ErrMealNotFound = errors.New("meal not found")
var ErrDuplicateMeal = errors.New("meal already captured for this idempotency key")

// Macros is the nutritional snapshot captured with a meal.
type Macros struct {
	Calories float64 `json:"calories" bson:"calories"`
	ProteinG float64 `json:"protein_g" bson:"protein_g"`
	CarbsG   float64 `json:"carbs_g" bson:"carbs_g"`
	FatG     float64 `json:"fat_g" bson:"fat_g"`
}

// Meal is a captured meal with its macro snapshot.
type Meal struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	UserID         string    `json:"user_id" bson:"user_id"`
	Name           string    `json:"name" bson:"name"`
	Description    string    `json:"description,omitempty" bson:"description,omitempty"`
	Macros         Macros    `json:"macros" bson:"macros"`
	ConsumedAt     time.Time `json:"consumed_at" bson:"consumed_at"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	IdempotencyKey string    `json:"idempotency_key,omitempty" bson:"idempotency_key,omitempty"`
}
