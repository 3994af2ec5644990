package handler

import (
	"time"

	"github.com/nutrilink/nutrition-system/internal/core/ports"
)

func toLinkResponse(r *ports.LinkResult) linkResponse {
	return linkResponse{
		ID:             r.ID,
		ClientID:       r.ClientID,
		NutritionistID: r.NutritionistID,
		Status:         r.Status,
		RequestedAt:    r.RequestedAt.UTC(),
		RespondedAt:    utcPtr(r.RespondedAt),
		EndedAt:        utcPtr(r.EndedAt),
	}
}

func toLinkListResponse(results []ports.LinkResult) linkListResponse {
	items := make([]linkResponse, len(results))
	for i := range results {
		items[i] = toLinkResponse(&results[i])
	}
	return linkListResponse{Data: items}
}

func toLinkedClientListResponse(clients []ports.LinkedClient) linkedClientListResponse {
	items := make([]linkedClientResponse, len(clients))
	for i, cl := range clients {
		items[i] = linkedClientResponse{
			UserID:   cl.UserID,
			Name:     cl.Name,
			Email:    cl.Email,
			LinkedAt: cl.LinkedAt.UTC(),
		}
	}
	return linkedClientListResponse{Data: items}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
