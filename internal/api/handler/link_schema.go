package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type requestLinkRequest struct {
	NutritionistID string `json:"nutritionist_id" validate:"required"`
}

// linkResponse is the link record exposed to both parties.
// responded_at is present only for accepted/rejected links, ended_at only
// for ended ones; the JSON contract mirrors the lifecycle.
type linkResponse struct {
	ID             string     `json:"id"`
	ClientID       string     `json:"client_id"`
	NutritionistID string     `json:"nutritionist_id"`
	Status         string     `json:"status"`
	RequestedAt    time.Time  `json:"requested_at"`
	RespondedAt    *time.Time `json:"responded_at,omitempty"`
	EndedAt        *time.Time `json:"ended_at,omitempty"`
}

type linkListResponse struct {
	Data []linkResponse `json:"data"`
}

// linkedClientResponse is one entry in the nutritionist's client listing.
type linkedClientResponse struct {
	UserID   string    `json:"user_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	LinkedAt time.Time `json:"linked_at"`
}

type linkedClientListResponse struct {
	Data []linkedClientResponse `json:"data"`
}

type counterpartResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
