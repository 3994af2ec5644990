package handler

import "time"

type macrosRequest struct {
	Calories float64 `json:"calories"  validate:"required,gte=0"`
	ProteinG float64 `json:"protein_g" validate:"gte=0"`
	CarbsG   float64 `json:"carbs_g"   validate:"gte=0"`
	FatG     float64 `json:"fat_g"     validate:"gte=0"`
}

type captureMealRequest struct {
	Name        string        `json:"name"        validate:"required"`
	Description string        `json:"description"`
	Macros      macrosRequest `json:"macros"      validate:"required"`
	ConsumedAt  time.Time     `json:"consumed_at"`
}

type macrosResponse struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

type mealResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Macros      macrosResponse `json:"macros"`
	ConsumedAt  time.Time      `json:"consumed_at"`
	CreatedAt   time.Time      `json:"created_at"`
}

type mealListResponse struct {
	Data []mealResponse `json:"data"`
}
